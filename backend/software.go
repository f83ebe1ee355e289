package backend

import (
	"fmt"
	"image"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/backend/software"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU rasterizing backend.
	BackendSoftware = "software"
	// BackendNull is the name of the backend that discards all geometry.
	BackendNull = "null"
)

// SoftwareBackend creates renderers backed by software.Device.
type SoftwareBackend struct {
	initialized bool
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// NewRenderer creates a renderer drawing into a new width×height RGBA image.
func (b *SoftwareBackend) NewRenderer(width, height int) (Renderer, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("backend: invalid target size %dx%d", width, height)
	}
	target := image.NewRGBA(image.Rect(0, 0, width, height))
	return &softwareRenderer{Device: software.NewDevice(target)}, nil
}

type softwareRenderer struct {
	*software.Device
}

func (r *softwareRenderer) RegisterImage(img image.Image) (sprite.TextureID, error) {
	if img == nil {
		return sprite.NoTexture, fmt.Errorf("backend: RegisterImage with nil image")
	}
	return r.Device.RegisterImage(img), nil
}

func (r *softwareRenderer) NewRenderState() sprite.RenderState { return software.NewRenderState() }

func (r *softwareRenderer) Image() image.Image { return r.Target() }
