package sprite

import (
	"errors"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestSpriteBatchStateErrors(t *testing.T) {
	sb := NewSpriteBatch(&recordingDevice{})
	tex := newTextures(1)[0]

	if err := sb.Draw(tex, RectXYWH(0, 0, 1, 1), FullTexture, White, 0); !errors.Is(err, ErrBeginNotCalled) {
		t.Errorf("Draw before Begin = %v, want %v", err, ErrBeginNotCalled)
	}
	if err := sb.End(); !errors.Is(err, ErrBeginNotCalled) {
		t.Errorf("End before Begin = %v, want %v", err, ErrBeginNotCalled)
	}
	if err := sb.Begin(SortDeferred, nil); !errors.Is(err, ErrNilRenderState) {
		t.Errorf("Begin(nil) = %v, want %v", err, ErrNilRenderState)
	}
	if err := sb.Begin(SortDeferred, &TextureBinding{}); err != nil {
		t.Fatalf("Begin() = %v", err)
	}
	if err := sb.Begin(SortDeferred, &TextureBinding{}); !errors.Is(err, ErrBeginCalledTwice) {
		t.Errorf("second Begin = %v, want %v", err, ErrBeginCalledTwice)
	}
	if err := sb.End(); err != nil {
		t.Errorf("End() = %v", err)
	}
}

func TestSpriteBatchDraw(t *testing.T) {
	tex := newTextures(2)
	dev := &recordingDevice{}
	sb := NewSpriteBatch(dev)
	red := f32.Vec4{1, 0, 0, 1}

	if err := sb.Begin(SortTexture, &TextureBinding{}); err != nil {
		t.Fatalf("Begin() = %v", err)
	}
	_ = sb.Draw(tex[1], RectXYWH(10, 20, 30, 40), FullTexture, red, 0.5)
	_ = sb.Draw(tex[0], RectXYWH(0, 0, 8, 8), FullTexture, White, 0)
	_ = sb.Draw(tex[1], RectXYWH(1, 1, 2, 2), FullTexture, White, 0)
	if sb.Batcher().Pending() != 3 {
		t.Errorf("Pending() = %d, want 3", sb.Batcher().Pending())
	}
	if err := sb.End(); err != nil {
		t.Fatalf("End() = %v", err)
	}

	if len(dev.calls) != 2 {
		t.Fatalf("flushes = %d, want 2", len(dev.calls))
	}
	if dev.calls[0].texture != tex[0] || dev.calls[1].texture != tex[1] {
		t.Errorf("flush textures = %v", dev.textures())
	}

	quad := dev.calls[1].vertices[:4]
	want := []Vertex{
		{Position: f32.Vec3{10, 20, 0.5}, Color: red, TexCoord: f32.Vec2{0, 0}},
		{Position: f32.Vec3{40, 20, 0.5}, Color: red, TexCoord: f32.Vec2{1, 0}},
		{Position: f32.Vec3{10, 60, 0.5}, Color: red, TexCoord: f32.Vec2{0, 1}},
		{Position: f32.Vec3{40, 60, 0.5}, Color: red, TexCoord: f32.Vec2{1, 1}},
	}
	for i := range want {
		if quad[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, quad[i], want[i])
		}
	}

	// A finished batch can begin again.
	if err := sb.Begin(SortDeferred, &TextureBinding{}); err != nil {
		t.Errorf("Begin after End = %v", err)
	}
}

func TestSpriteBatchDrawQuad(t *testing.T) {
	tex := newTextures(1)[0]
	dev := &recordingDevice{}
	sb := NewSpriteBatch(dev)
	_ = sb.Begin(SortFrontToBack, &TextureBinding{})

	v := func(x float32) Vertex { return Vertex{Position: f32.Vec3{x, 0, 0}} }
	if err := sb.DrawQuad(tex, v(1), v(2), v(3), v(4), 1); err != nil {
		t.Fatalf("DrawQuad() = %v", err)
	}
	if err := sb.End(); err != nil {
		t.Fatalf("End() = %v", err)
	}
	got := dev.calls[0].vertices
	for i, x := range []float32{1, 2, 3, 4} {
		if got[i].Position[0] != x {
			t.Errorf("vertex %d x = %v, want %v", i, got[i].Position[0], x)
		}
	}
}
