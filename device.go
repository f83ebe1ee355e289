package sprite

// Device submits staged geometry for rasterization. Backends implement it
// for a concrete graphics API.
//
// Draw receives one contiguous range of quads: 4 vertices per quad and 6
// indices per quad, with index values relative to the start of vertices.
// The slices alias the Batcher's staging buffers and are only valid for the
// duration of the call.
type Device interface {
	Draw(vertices []Vertex, indices []uint16, state RenderState) error
}

// RenderState is the mutable pipeline state a Device draws with. The
// batcher only ever binds textures on it.
type RenderState interface {
	// SetTexture binds tex for subsequent draws. NoTexture unbinds.
	SetTexture(tex TextureID)
}

// TextureBinding is a RenderState that remembers the bound texture.
// Backends embed it in their own render state types.
type TextureBinding struct {
	texture TextureID
}

// SetTexture implements RenderState.
func (b *TextureBinding) SetTexture(tex TextureID) { b.texture = tex }

// Texture returns the bound texture.
func (b *TextureBinding) Texture() TextureID { return b.texture }

var _ RenderState = (*TextureBinding)(nil)
