package software

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/gogpu/sprite"
)

// edge is the signed area of the parallelogram spanned by a->b and a->p.
// It is positive when p lies to the right of a->b in y-down coordinates.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// ownsEdge applies the top-left fill rule to the edge a->b of a positively
// wound triangle, so pixels centered exactly on a shared edge are drawn
// by one triangle only.
func ownsEdge(ax, ay, bx, by float32) bool {
	dy := by - ay
	return dy < 0 || (dy == 0 && bx > ax)
}

// drawTriangle rasterizes the part of one triangle inside clip with affine
// attribute interpolation. tex may be nil, which samples opaque white.
func (d *Device) drawTriangle(v0, v1, v2 sprite.Vertex, tex *image.RGBA, blend BlendMode, clip image.Rectangle) {
	x0, y0 := v0.Position[0], v0.Position[1]
	x1, y1 := v1.Position[0], v1.Position[1]
	x2, y2 := v2.Position[0], v2.Position[1]

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		x1, y1, x2, y2 = x2, y2, x1, y1
		area = -area
	}

	minX := max(int(math32.Floor(min(x0, x1, x2))), clip.Min.X)
	minY := max(int(math32.Floor(min(y0, y1, y2))), clip.Min.Y)
	maxX := min(int(math32.Ceil(max(x0, x1, x2))), clip.Max.X)
	maxY := min(int(math32.Ceil(max(y0, y1, y2))), clip.Max.Y)
	if minX >= maxX || minY >= maxY {
		return
	}

	own0 := ownsEdge(x1, y1, x2, y2)
	own1 := ownsEdge(x2, y2, x0, y0)
	own2 := ownsEdge(x0, y0, x1, y1)
	inv := 1 / area

	for py := minY; py < maxY; py++ {
		cy := float32(py) + 0.5
		for px := minX; px < maxX; px++ {
			cx := float32(px) + 0.5

			w0 := edge(x1, y1, x2, y2, cx, cy)
			w1 := edge(x2, y2, x0, y0, cx, cy)
			w2 := edge(x0, y0, x1, y1, cx, cy)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			if (w0 == 0 && !own0) || (w1 == 0 && !own1) || (w2 == 0 && !own2) {
				continue
			}

			l0, l1, l2 := w0*inv, w1*inv, w2*inv
			u := l0*v0.TexCoord[0] + l1*v1.TexCoord[0] + l2*v2.TexCoord[0]
			v := l0*v0.TexCoord[1] + l1*v1.TexCoord[1] + l2*v2.TexCoord[1]

			var src [4]float32
			texel := sample(tex, u, v)
			for c := 0; c < 4; c++ {
				tint := l0*v0.Color[c] + l1*v1.Color[c] + l2*v2.Color[c]
				src[c] = texel[c] * tint
			}
			d.blendPixel(px, py, src, blend)
		}
	}
}

// sample returns the premultiplied texel nearest to (u, v).
func sample(tex *image.RGBA, u, v float32) [4]float32 {
	if tex == nil {
		return [4]float32{1, 1, 1, 1}
	}
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	tx := min(max(int(math32.Floor(u*float32(w))), 0), w-1)
	ty := min(max(int(math32.Floor(v*float32(h))), 0), h-1)
	i := tex.PixOffset(tx+tex.Rect.Min.X, ty+tex.Rect.Min.Y)
	p := tex.Pix[i : i+4 : i+4]
	const k = 1.0 / 255
	return [4]float32{float32(p[0]) * k, float32(p[1]) * k, float32(p[2]) * k, float32(p[3]) * k}
}

func (d *Device) blendPixel(x, y int, src [4]float32, blend BlendMode) {
	i := d.target.PixOffset(x, y)
	p := d.target.Pix[i : i+4 : i+4]
	for c := 0; c < 4; c++ {
		dst := float32(p[c]) / 255
		var out float32
		switch blend {
		case BlendAdditive:
			out = src[c] + dst
		default:
			out = src[c] + dst*(1-src[3])
		}
		p[c] = toByte(out)
	}
}

func toByte(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
