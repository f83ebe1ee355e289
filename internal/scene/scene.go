package scene

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/gogpu/sprite"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
)

// Sprite is one moving sprite.
type Sprite struct {
	Texture  int
	Pos, Vel f32.Vec2
	Size     float32
	Depth    float32
	Tint     f32.Vec4
}

// Scene is a set of sprites bouncing inside the target bounds.
type Scene struct {
	cfg     Config
	sprites []Sprite
}

// New generates a scene from cfg. The same config always produces the
// same scene.
func New(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	w, h := float32(cfg.Width), float32(cfg.Height)

	s := &Scene{cfg: cfg, sprites: make([]Sprite, cfg.Sprites)}
	for i := range s.sprites {
		tex := rng.IntN(len(cfg.Textures))
		size := float32(cfg.Textures[tex].Size) * (0.75 + rng.Float32())
		angle := rng.Float32() * 2 * math32.Pi
		speed := 20 + rng.Float32()*100
		alpha := 0.5 + rng.Float32()*0.5
		s.sprites[i] = Sprite{
			Texture: tex,
			Pos:     f32.Vec2{rng.Float32() * (w - size), rng.Float32() * (h - size)},
			Vel:     f32.Vec2{math32.Cos(angle) * speed, math32.Sin(angle) * speed},
			Size:    size,
			Depth:   rng.Float32(),
			Tint:    f32.Vec4{alpha, alpha, alpha, alpha},
		}
	}
	return s, nil
}

// Config returns the scene's config.
func (s *Scene) Config() Config { return s.cfg }

// Sprites returns the scene's sprites. The slice is shared.
func (s *Scene) Sprites() []Sprite { return s.sprites }

// Images returns one generated image per configured texture: a filled
// square with a darker one-pixel border.
func (s *Scene) Images() []image.Image {
	images := make([]image.Image, len(s.cfg.Textures))
	for i, t := range s.cfg.Textures {
		fill, _ := namedColor(t.Color)
		border := color.RGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: fill.A}

		img := image.NewRGBA(image.Rect(0, 0, t.Size, t.Size))
		xdraw.Draw(img, img.Bounds(), image.NewUniform(border), image.Point{}, xdraw.Src)
		if t.Size > 2 {
			xdraw.Draw(img, img.Bounds().Inset(1), image.NewUniform(fill), image.Point{}, xdraw.Src)
		}
		images[i] = img
	}
	return images
}

// Step advances the animation by dt seconds, reflecting sprites off the
// target edges.
func (s *Scene) Step(dt float32) {
	w, h := float32(s.cfg.Width), float32(s.cfg.Height)
	for i := range s.sprites {
		sp := &s.sprites[i]
		sp.Pos[0] += sp.Vel[0] * dt
		sp.Pos[1] += sp.Vel[1] * dt
		bounce(&sp.Pos[0], &sp.Vel[0], w-sp.Size)
		bounce(&sp.Pos[1], &sp.Vel[1], h-sp.Size)
	}
}

func bounce(pos, vel *float32, limit float32) {
	limit = math32.Max(limit, 0)
	switch {
	case *pos < 0:
		*pos = math32.Min(-*pos, limit)
		*vel = math32.Abs(*vel)
	case *pos > limit:
		*pos = math32.Max(2*limit-*pos, 0)
		*vel = -math32.Abs(*vel)
	}
}

// Draw queues every sprite on sb. textures maps config texture indices to
// registered handles.
func (s *Scene) Draw(sb *sprite.SpriteBatch, textures []sprite.TextureID) error {
	for i := range s.sprites {
		sp := &s.sprites[i]
		dst := sprite.RectXYWH(sp.Pos[0], sp.Pos[1], sp.Size, sp.Size)
		if err := sb.Draw(textures[sp.Texture], dst, sprite.FullTexture, sp.Tint, sp.Depth); err != nil {
			return err
		}
	}
	return nil
}
