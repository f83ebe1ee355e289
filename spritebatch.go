package sprite

import "golang.org/x/image/math/f32"

// SpriteBatch is the Begin/Draw/End front end over a Batcher.
//
// Example:
//
//	sb := sprite.NewSpriteBatch(dev)
//	_ = sb.Begin(sprite.SortTexture, state)
//	_ = sb.Draw(tex, sprite.RectXYWH(10, 10, 32, 32), sprite.FullTexture, sprite.White, 0)
//	err := sb.End()
type SpriteBatch struct {
	batcher *Batcher
	mode    SortMode
	state   RenderState
	begun   bool
}

// NewSpriteBatch creates a sprite batch drawing to device.
func NewSpriteBatch(device Device, opts ...Option) *SpriteBatch {
	return &SpriteBatch{batcher: NewBatcher(device, opts...)}
}

// Batcher returns the underlying batcher.
func (sb *SpriteBatch) Batcher() *Batcher { return sb.batcher }

// Begin starts a batch drawn with mode into state when End is called.
func (sb *SpriteBatch) Begin(mode SortMode, state RenderState) error {
	if sb.begun {
		return ErrBeginCalledTwice
	}
	if state == nil {
		return ErrNilRenderState
	}
	sb.mode = mode
	sb.state = state
	sb.begun = true
	return nil
}

// Draw queues an axis-aligned sprite covering dst that samples the
// normalized src region of tex, tinted by color (premultiplied).
func (sb *SpriteBatch) Draw(tex TextureID, dst, src Rect, color f32.Vec4, depth float32) error {
	if !sb.begun {
		return ErrBeginNotCalled
	}
	sb.batcher.CreateBatchItem().SetRect(tex, dst, src, color, depth)
	return nil
}

// DrawQuad queues a quad with explicit corner vertices.
func (sb *SpriteBatch) DrawQuad(tex TextureID, tl, tr, bl, br Vertex, depth float32) error {
	if !sb.begun {
		return ErrBeginNotCalled
	}
	sb.batcher.CreateBatchItem().Set(tex, depth, tl, tr, bl, br)
	return nil
}

// End draws everything queued since Begin and releases the render state.
func (sb *SpriteBatch) End() error {
	if !sb.begun {
		return ErrBeginNotCalled
	}
	state := sb.state
	sb.state = nil
	sb.begun = false
	return sb.batcher.DrawBatch(sb.mode, state)
}
