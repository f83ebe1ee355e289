// Package scene generates and animates the sprite scenes drawn by the
// sprite commands.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/gogpu/sprite"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// maxConfigSize bounds config files read from disk.
const maxConfigSize = 1 << 20

// Config describes a generated scene.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Sprites is the number of sprites drawn each frame.
	Sprites int `yaml:"sprites"`

	// Sort is the batcher sort mode.
	Sort sprite.SortMode `yaml:"sort"`

	// Seed makes scene generation reproducible.
	Seed uint64 `yaml:"seed"`

	// Background is an SVG color name.
	Background string `yaml:"background"`

	// MaxBatchSize limits quads per chunk; 0 keeps the batcher default.
	MaxBatchSize int `yaml:"max_batch_size"`

	Textures []TextureConfig `yaml:"textures"`
}

// TextureConfig describes one generated sprite texture.
type TextureConfig struct {
	Name string `yaml:"name"`

	// Size is the texture edge length in pixels.
	Size int `yaml:"size"`

	// Color is an SVG color name.
	Color string `yaml:"color"`
}

// DefaultConfig returns a 640×480 scene of 2000 sprites using 4 textures.
func DefaultConfig() Config {
	return Config{
		Width:      640,
		Height:     480,
		Sprites:    2000,
		Sort:       sprite.SortTexture,
		Seed:       1,
		Background: "midnightblue",
		Textures: []TextureConfig{
			{Name: "coin", Size: 16, Color: "gold"},
			{Name: "gem", Size: 12, Color: "crimson"},
			{Name: "leaf", Size: 20, Color: "forestgreen"},
			{Name: "drop", Size: 8, Color: "deepskyblue"},
		},
	}
}

// ParseConfig decodes a YAML config. Fields missing from data keep their
// DefaultConfig values; unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("scene: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML config at path.
func LoadConfig(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("scene: config %s too large (%d bytes)", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("scene: invalid size %dx%d", c.Width, c.Height)
	case c.Sprites < 0:
		return fmt.Errorf("scene: negative sprite count %d", c.Sprites)
	case c.MaxBatchSize < 0 || c.MaxBatchSize > sprite.MaxBatchSize:
		return fmt.Errorf("scene: max_batch_size %d outside [0, %d]", c.MaxBatchSize, sprite.MaxBatchSize)
	case len(c.Textures) == 0:
		return fmt.Errorf("scene: no textures")
	}
	if _, err := namedColor(c.Background); err != nil {
		return err
	}
	for i, t := range c.Textures {
		if t.Size <= 0 {
			return fmt.Errorf("scene: texture %d (%s): invalid size %d", i, t.Name, t.Size)
		}
		if _, err := namedColor(t.Color); err != nil {
			return fmt.Errorf("scene: texture %d (%s): %w", i, t.Name, err)
		}
	}
	return nil
}

// BackgroundColor returns the parsed background color.
func (c Config) BackgroundColor() color.RGBA {
	bg, _ := namedColor(c.Background)
	return bg
}

// BatchOptions returns the batcher options the config asks for.
func (c Config) BatchOptions() []sprite.Option {
	opts := []sprite.Option{sprite.WithInitialBatchSize(min(max(c.Sprites, 1), sprite.MaxBatchSize))}
	if c.MaxBatchSize > 0 {
		opts = append(opts, sprite.WithMaxBatchSize(c.MaxBatchSize))
	}
	return opts
}

func namedColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("scene: unknown color %q", name)
	}
	return c, nil
}
