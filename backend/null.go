package backend

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/sprite"
)

// NullBackend creates renderers that count submissions and draw nothing.
// It measures the cost of batching alone.
type NullBackend struct {
	initialized bool
}

func init() {
	Register(BackendNull, func() RenderBackend {
		return &NullBackend{}
	})
}

// Name returns the backend identifier.
func (b *NullBackend) Name() string { return BackendNull }

// Init initializes the backend.
func (b *NullBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *NullBackend) Close() { b.initialized = false }

// NewRenderer creates a renderer reporting a blank width×height image.
func (b *NullBackend) NewRenderer(width, height int) (Renderer, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("backend: invalid target size %dx%d", width, height)
	}
	return &nullRenderer{bounds: image.Rect(0, 0, width, height)}, nil
}

// nullRenderer validates texture handles like a real device so misuse
// surfaces the same way.
type nullRenderer struct {
	bounds    image.Rectangle
	textures  sprite.TextureRegistry[image.Rectangle]
	drawCalls int
}

func (r *nullRenderer) Draw(vertices []sprite.Vertex, indices []uint16, state sprite.RenderState) error {
	if tb, ok := state.(*sprite.TextureBinding); ok && tb.Texture().Valid() {
		r.textures.MustLookup(tb.Texture())
	}
	r.drawCalls++
	return nil
}

func (r *nullRenderer) RegisterImage(img image.Image) (sprite.TextureID, error) {
	if img == nil {
		return sprite.NoTexture, fmt.Errorf("backend: RegisterImage with nil image")
	}
	return r.textures.Register(img.Bounds()), nil
}

func (r *nullRenderer) NewRenderState() sprite.RenderState { return &sprite.TextureBinding{} }

func (r *nullRenderer) Clear(color.Color) {}

func (r *nullRenderer) Image() image.Image { return image.NewRGBA(r.bounds) }

func (r *nullRenderer) DrawCalls() int { return r.drawCalls }
