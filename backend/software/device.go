// Package software implements a sprite.Device that rasterizes quads on the
// CPU into an *image.RGBA.
//
// Vertex positions are interpreted as target pixel coordinates; depth is
// ignored. Texels are sampled nearest-neighbor with clamped coordinates and
// multiplied by the interpolated vertex color. Drawing with NoTexture bound
// samples opaque white, so quads become solid colored rectangles.
package software

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/parallel"
	xdraw "golang.org/x/image/draw"
)

// BlendMode selects how fragments combine with the target.
type BlendMode int

const (
	// BlendSourceOver composites premultiplied fragments over the target.
	BlendSourceOver BlendMode = iota

	// BlendAdditive adds fragments to the target, saturating at 1.
	BlendAdditive
)

// RenderState is the software backend's render state.
type RenderState struct {
	sprite.TextureBinding

	// Blend is applied to every fragment drawn through this state.
	Blend BlendMode
}

// NewRenderState returns a source-over render state with no texture bound.
func NewRenderState() *RenderState {
	return &RenderState{}
}

// Device rasterizes sprite batches into a target image.
// A Device is not safe for concurrent use.
type Device struct {
	target    *image.RGBA
	textures  sprite.TextureRegistry[*image.RGBA]
	pool      *parallel.Pool
	tasks     []func()
	drawCalls int
	triangles int
}

// minParallelTriangles is the smallest draw split across workers.
const minParallelTriangles = 64

// Option configures a Device.
type Option func(*Device)

// WithWorkers rasterizes large draws in n horizontal bands on a worker
// pool. Every pixel still receives its fragments in submission order, so
// the output matches serial drawing. Values below 2 draw on the calling
// goroutine.
func WithWorkers(n int) Option {
	return func(d *Device) {
		if n >= 2 {
			d.pool = parallel.NewPool(n)
		}
	}
}

// NewDevice creates a device drawing into target.
func NewDevice(target *image.RGBA, opts ...Option) *Device {
	if target == nil {
		panic("software: NewDevice with nil target")
	}
	d := &Device{target: target}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Close stops the device's workers, if any. The device keeps drawing
// serially afterwards.
func (d *Device) Close() {
	if d.pool != nil {
		d.pool.Close()
		d.pool = nil
	}
}

// Target returns the image being drawn into.
func (d *Device) Target() *image.RGBA { return d.target }

// SetTarget redirects subsequent draws to target.
func (d *Device) SetTarget(target *image.RGBA) {
	if target == nil {
		panic("software: SetTarget with nil target")
	}
	d.target = target
}

// Clear fills the whole target with c.
func (d *Device) Clear(c color.Color) {
	xdraw.Draw(d.target, d.target.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

// RegisterImage makes img available for drawing. Images that are not an
// *image.RGBA anchored at the origin are copied once into one.
func (d *Device) RegisterImage(img image.Image) sprite.TextureID {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	}
	return d.textures.Register(rgba)
}

// ReleaseTexture unregisters tex. Drawing with it afterwards panics.
func (d *Device) ReleaseTexture(tex sprite.TextureID) bool {
	_, ok := d.textures.Release(tex)
	return ok
}

// Textures returns the number of registered textures.
func (d *Device) Textures() int { return d.textures.Len() }

// DrawCalls returns the number of Draw calls since creation or ResetStats.
func (d *Device) DrawCalls() int { return d.drawCalls }

// Triangles returns the number of triangles submitted since creation or
// ResetStats.
func (d *Device) Triangles() int { return d.triangles }

// ResetStats zeroes the draw counters.
func (d *Device) ResetStats() {
	d.drawCalls = 0
	d.triangles = 0
}

// boundTexture is satisfied by *RenderState and *sprite.TextureBinding.
type boundTexture interface {
	Texture() sprite.TextureID
}

// Draw implements sprite.Device.
func (d *Device) Draw(vertices []sprite.Vertex, indices []uint16, state sprite.RenderState) error {
	bt, ok := state.(boundTexture)
	if !ok {
		panic(fmt.Sprintf("software: render state %T does not expose its texture", state))
	}
	blend := BlendSourceOver
	if rs, ok := state.(*RenderState); ok {
		blend = rs.Blend
	}

	var tex *image.RGBA
	if id := bt.Texture(); id.Valid() {
		tex = d.textures.MustLookup(id)
	}

	d.drawCalls++
	d.triangles += len(indices) / 3

	clip := d.target.Rect
	if d.pool == nil || len(indices)/3 < minParallelTriangles || clip.Dy() < 2*d.pool.Workers() {
		d.drawTriangles(vertices, indices, tex, blend, clip)
		return nil
	}

	bands := d.pool.Workers()
	d.tasks = d.tasks[:0]
	for i := range bands {
		band := image.Rect(clip.Min.X, clip.Min.Y+clip.Dy()*i/bands, clip.Max.X, clip.Min.Y+clip.Dy()*(i+1)/bands)
		d.tasks = append(d.tasks, func() { d.drawTriangles(vertices, indices, tex, blend, band) })
	}
	d.pool.Run(d.tasks)
	return nil
}

func (d *Device) drawTriangles(vertices []sprite.Vertex, indices []uint16, tex *image.RGBA, blend BlendMode, clip image.Rectangle) {
	for i := 0; i+2 < len(indices); i += 3 {
		d.drawTriangle(vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]], tex, blend, clip)
	}
}

var _ sprite.Device = (*Device)(nil)
