package sprite

import "golang.org/x/image/math/f32"

// BatchItem is one pending quad draw request.
//
//	TL    TR
//	 0----1
//	 |   /|
//	 |  / |
//	 | /  |
//	 |/   |
//	 2----3
//	BL    BR
//
// Items live in the Batcher's pool. A *BatchItem returned by
// CreateBatchItem is valid only until the next CreateBatchItem or
// DrawBatch call, since either may move the pool's storage.
type BatchItem struct {
	// SortKey orders items under SortFrontToBack and SortBackToFront.
	SortKey float32

	// Texture is borrowed for the current draw call and reset to
	// NoTexture once the item has been staged.
	Texture TextureID

	TopLeft     Vertex
	TopRight    Vertex
	BottomLeft  Vertex
	BottomRight Vertex
}

// Set overwrites every field of the item.
func (it *BatchItem) Set(tex TextureID, depth float32, tl, tr, bl, br Vertex) {
	it.SortKey = depth
	it.Texture = tex
	it.TopLeft = tl
	it.TopRight = tr
	it.BottomLeft = bl
	it.BottomRight = br
}

// SetRect fills the item with an axis-aligned quad covering dst, sampling
// src (normalized) and tinted by color. The depth doubles as the sort key
// and the z coordinate of each vertex.
func (it *BatchItem) SetRect(tex TextureID, dst, src Rect, color f32.Vec4, depth float32) {
	it.SortKey = depth
	it.Texture = tex
	it.TopLeft = Vertex{
		Position: f32.Vec3{dst.Min[0], dst.Min[1], depth},
		Color:    color,
		TexCoord: f32.Vec2{src.Min[0], src.Min[1]},
	}
	it.TopRight = Vertex{
		Position: f32.Vec3{dst.Max[0], dst.Min[1], depth},
		Color:    color,
		TexCoord: f32.Vec2{src.Max[0], src.Min[1]},
	}
	it.BottomLeft = Vertex{
		Position: f32.Vec3{dst.Min[0], dst.Max[1], depth},
		Color:    color,
		TexCoord: f32.Vec2{src.Min[0], src.Max[1]},
	}
	it.BottomRight = Vertex{
		Position: f32.Vec3{dst.Max[0], dst.Max[1], depth},
		Color:    color,
		TexCoord: f32.Vec2{src.Max[0], src.Max[1]},
	}
}
