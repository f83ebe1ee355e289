package sprite

import (
	"image/color"

	"golang.org/x/image/math/f32"
)

// Vertex is one corner of a quad. Positions arrive already transformed;
// the batcher copies them to the device untouched.
type Vertex struct {
	// Position is x, y and depth in the device's output space.
	Position f32.Vec3

	// Color is premultiplied RGBA in [0, 1], multiplied with the texel.
	Color f32.Vec4

	// TexCoord is the normalized texture coordinate.
	TexCoord f32.Vec2
}

// White is opaque white, the identity tint.
var White = f32.Vec4{1, 1, 1, 1}

// ColorOf converts c to premultiplied float RGBA.
func ColorOf(c color.Color) f32.Vec4 {
	if c == nil {
		return White
	}
	r, g, b, a := c.RGBA()
	const m = 0xffff
	return f32.Vec4{float32(r) / m, float32(g) / m, float32(b) / m, float32(a) / m}
}

// Rect is an axis-aligned rectangle given by its top-left and
// bottom-right corners.
type Rect struct {
	Min, Max f32.Vec2
}

// RectXYWH returns the rectangle at (x, y) with size w×h.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Min: f32.Vec2{x, y}, Max: f32.Vec2{x + w, y + h}}
}

// FullTexture covers the whole texture in normalized coordinates.
var FullTexture = Rect{Min: f32.Vec2{0, 0}, Max: f32.Vec2{1, 1}}
