// Command spriteview animates a generated sprite scene in an Ebitengine
// window.
//
// Usage:
//
//	spriteview [-config scene.yaml] [-sort texture]
//
// Press S to cycle the sort mode.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/backend/ebitengine"
	"github.com/gogpu/sprite/internal/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func main() {
	configPath := flag.String("config", "", "YAML scene config (defaults are used when empty)")
	verbose := flag.Bool("v", false, "log batcher activity to stderr")
	cfg := scene.DefaultConfig()
	sortMode := cfg.Sort
	flag.TextVar(&sortMode, "sort", cfg.Sort, "initial sort mode")
	flag.Parse()

	if *configPath != "" {
		loaded, err := scene.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spriteview: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "sort" {
			cfg.Sort = sortMode
		}
	})
	if *verbose {
		sprite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	g, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spriteview: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("spriteview")
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "spriteview: %v\n", err)
		os.Exit(1)
	}
}

type game struct {
	scene    *scene.Scene
	device   *ebitengine.Device
	batch    *sprite.SpriteBatch
	state    *ebitengine.RenderState
	textures []sprite.TextureID
	sort     sprite.SortMode
	stats    sprite.Stats
}

func newGame(cfg scene.Config) (*game, error) {
	sc, err := scene.New(cfg)
	if err != nil {
		return nil, err
	}
	dev := ebitengine.NewDevice()
	images := sc.Images()
	textures := make([]sprite.TextureID, len(images))
	for i, img := range images {
		textures[i] = dev.RegisterImage(ebiten.NewImageFromImage(img))
	}
	return &game{
		scene:    sc,
		device:   dev,
		batch:    sprite.NewSpriteBatch(dev, cfg.BatchOptions()...),
		state:    ebitengine.NewRenderState(nil),
		textures: textures,
		sort:     cfg.Sort,
	}, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sort = (g.sort + 1) % (sprite.SortBackToFront + 1)
	}
	g.scene.Step(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.scene.Config().BackgroundColor())
	g.state.Target = screen
	if err := g.batch.Begin(g.sort, g.state); err != nil {
		slog.Error("begin batch", slog.Any("error", err))
		return
	}
	if err := g.scene.Draw(g.batch, g.textures); err != nil {
		slog.Error("queue sprites", slog.Any("error", err))
	}
	if err := g.batch.End(); err != nil {
		slog.Error("draw batch", slog.Any("error", err))
	}
	g.stats = g.batch.Batcher().Stats()

	ebitenutil.DebugPrint(screen, fmt.Sprintf("sort: %s (S)\nsprites: %d\nflushes: %d\nfps: %.1f",
		g.sort, g.stats.Items, g.stats.Flushes, ebiten.ActualFPS()))
}

func (g *game) Layout(int, int) (int, int) {
	cfg := g.scene.Config()
	return cfg.Width, cfg.Height
}
