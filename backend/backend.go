package backend

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/sprite"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Renderer is a sprite.Device that owns its render target.
type Renderer interface {
	sprite.Device

	// RegisterImage makes img drawable and returns its handle.
	RegisterImage(img image.Image) (sprite.TextureID, error)

	// NewRenderState returns a render state accepted by Draw.
	NewRenderState() sprite.RenderState

	// Clear fills the render target with c.
	Clear(c color.Color)

	// Image returns the render target. Renderers without readback
	// return a blank image of the target size.
	Image() image.Image

	// DrawCalls returns the number of Draw calls so far.
	DrawCalls() int
}

// RenderBackend creates offscreen sprite renderers.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "software", "null").
	Name() string

	// Init initializes the backend.
	// This should be called before any rendering operations.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewRenderer creates a renderer with a width×height target.
	NewRenderer(width, height int) (Renderer, error)
}
