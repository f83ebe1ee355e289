// Package ebitengine implements a sprite.Device that draws through
// Ebitengine's DrawTriangles.
//
// Vertex positions are destination pixels of the render state's target
// image. Texture coordinates are normalized and scaled to the bound
// image's bounds. Vertex colors are premultiplied, matching the batcher's
// convention.
//
// Ebitengine images can only be drawn from inside the game loop, so
// Draw must be called from Game.Draw or Game.Update.
package ebitengine

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/sprite"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderState carries the destination image and draw options.
type RenderState struct {
	sprite.TextureBinding

	// Target receives the triangles. It must not be nil when drawing.
	Target *ebiten.Image

	// Filter is the texture filter. The zero value is FilterNearest.
	Filter ebiten.Filter

	// Blend is the blending mode. The zero value is source-over.
	Blend ebiten.Blend
}

// NewRenderState returns a render state drawing into target.
func NewRenderState(target *ebiten.Image) *RenderState {
	return &RenderState{Target: target}
}

// Device draws sprite batches onto Ebitengine images.
// A Device is not safe for concurrent use.
type Device struct {
	textures  sprite.TextureRegistry[*ebiten.Image]
	white     *ebiten.Image
	vertices  []ebiten.Vertex
	drawCalls int
}

// NewDevice creates an Ebitengine device.
func NewDevice() *Device {
	return &Device{}
}

// RegisterImage makes img available for drawing. Sub-images are sampled
// within their own bounds.
func (d *Device) RegisterImage(img *ebiten.Image) sprite.TextureID {
	if img == nil {
		panic("ebitengine: RegisterImage with nil image")
	}
	return d.textures.Register(img)
}

// ReleaseTexture unregisters tex and returns its image, which the caller
// may deallocate.
func (d *Device) ReleaseTexture(tex sprite.TextureID) (*ebiten.Image, bool) {
	return d.textures.Release(tex)
}

// DrawCalls returns the number of DrawTriangles calls issued.
func (d *Device) DrawCalls() int { return d.drawCalls }

// Draw implements sprite.Device.
func (d *Device) Draw(vertices []sprite.Vertex, indices []uint16, state sprite.RenderState) error {
	rs, ok := state.(*RenderState)
	if !ok {
		panic(fmt.Sprintf("ebitengine: render state %T is not *ebitengine.RenderState", state))
	}
	if rs.Target == nil {
		return fmt.Errorf("ebitengine: render state has no target image")
	}

	src := d.whiteImage()
	if tex := rs.Texture(); tex.Valid() {
		src = d.textures.MustLookup(tex)
	}

	d.vertices = appendVertices(d.vertices[:0], vertices, src.Bounds())
	rs.Target.DrawTriangles(d.vertices, indices, src, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		Filter:         rs.Filter,
		Blend:          rs.Blend,
	})
	d.drawCalls++
	return nil
}

// whiteImage lazily creates the 1×1 image sampled by untextured quads.
func (d *Device) whiteImage() *ebiten.Image {
	if d.white == nil {
		d.white = ebiten.NewImage(1, 1)
		d.white.Fill(color.White)
	}
	return d.white
}

// appendVertices converts batch vertices to Ebitengine vertices sampling
// the source region b.
func appendVertices(dst []ebiten.Vertex, vertices []sprite.Vertex, b image.Rectangle) []ebiten.Vertex {
	x0, y0 := float32(b.Min.X), float32(b.Min.Y)
	w, h := float32(b.Dx()), float32(b.Dy())
	for _, v := range vertices {
		dst = append(dst, ebiten.Vertex{
			DstX:   v.Position[0],
			DstY:   v.Position[1],
			SrcX:   x0 + v.TexCoord[0]*w,
			SrcY:   y0 + v.TexCoord[1]*h,
			ColorR: v.Color[0],
			ColorG: v.Color[1],
			ColorB: v.Color[2],
			ColorA: v.Color[3],
		})
	}
	return dst
}

var _ sprite.Device = (*Device)(nil)
