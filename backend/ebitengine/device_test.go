package ebitengine

import (
	"image"
	"testing"

	"github.com/gogpu/sprite"
	"golang.org/x/image/math/f32"
)

func TestAppendVertices(t *testing.T) {
	in := []sprite.Vertex{
		{Position: f32.Vec3{10, 20, 0}, Color: f32.Vec4{0.5, 0.25, 0, 0.5}, TexCoord: f32.Vec2{0, 0}},
		{Position: f32.Vec3{42, 52, 0}, Color: sprite.White, TexCoord: f32.Vec2{1, 1}},
	}
	// A 32×16 sub-image starting at (64, 8).
	got := appendVertices(nil, in, image.Rect(64, 8, 96, 24))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	v := got[0]
	if v.DstX != 10 || v.DstY != 20 || v.SrcX != 64 || v.SrcY != 8 {
		t.Errorf("vertex 0 = %+v", v)
	}
	if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
		t.Errorf("vertex 0 color = %v %v %v %v", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
	if v := got[1]; v.SrcX != 96 || v.SrcY != 24 || v.DstX != 42 || v.DstY != 52 {
		t.Errorf("vertex 1 = %+v", v)
	}
}

func TestAppendVerticesReusesBuffer(t *testing.T) {
	in := make([]sprite.Vertex, 4)
	buf := appendVertices(nil, in, image.Rect(0, 0, 1, 1))
	again := appendVertices(buf[:0], in, image.Rect(0, 0, 1, 1))
	if &again[0] != &buf[0] {
		t.Error("appendVertices reallocated a large enough buffer")
	}
}

func TestRegisterNilImagePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RegisterImage(nil) did not panic")
		}
	}()
	NewDevice().RegisterImage(nil)
}
