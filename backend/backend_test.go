package backend

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/sprite"
)

func TestSoftwareBackendName(t *testing.T) {
	b := NewSoftwareBackend()
	if b.Name() != "software" {
		t.Errorf("Name() = %q, want %q", b.Name(), "software")
	}
}

func TestSoftwareBackendNotInitialized(t *testing.T) {
	b := NewSoftwareBackend()
	if _, err := b.NewRenderer(10, 10); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("NewRenderer() before Init = %v, want %v", err, ErrNotInitialized)
	}
}

func TestSoftwareBackendInvalidSize(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()
	if _, err := b.NewRenderer(0, 10); err == nil {
		t.Error("NewRenderer(0, 10) returned no error")
	}
}

func TestSoftwareRendererDraws(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	r, err := b.NewRenderer(16, 16)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	r.Clear(color.Black)

	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	tex, err := r.RegisterImage(src)
	if err != nil {
		t.Fatalf("RegisterImage() error = %v", err)
	}

	sb := sprite.NewSpriteBatch(r)
	if err := sb.Begin(sprite.SortTexture, r.NewRenderState()); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	_ = sb.Draw(tex, sprite.RectXYWH(4, 4, 8, 8), sprite.FullTexture, sprite.White, 0)
	if err := sb.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	img := r.Image()
	if got := color.RGBAModel.Convert(img.At(8, 8)).(color.RGBA); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel inside sprite = %v, want red", got)
	}
	if got := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel outside sprite = %v, want black", got)
	}
	if r.DrawCalls() != 1 {
		t.Errorf("DrawCalls() = %d, want 1", r.DrawCalls())
	}
}

func TestRendererRegisterNilImage(t *testing.T) {
	for _, name := range []string{BackendSoftware, BackendNull} {
		b, err := Open(name)
		if err != nil {
			t.Fatalf("Open(%q) error = %v", name, err)
		}
		r, err := b.NewRenderer(4, 4)
		if err != nil {
			t.Fatalf("%s: NewRenderer() error = %v", name, err)
		}
		if _, err := r.RegisterImage(nil); err == nil {
			t.Errorf("%s: RegisterImage(nil) returned no error", name)
		}
		b.Close()
	}
}

func TestNullRendererCountsDraws(t *testing.T) {
	b, err := Open(BackendNull)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer b.Close()

	r, err := b.NewRenderer(32, 32)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	a, _ := r.RegisterImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	c, _ := r.RegisterImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))

	batcher := sprite.NewBatcher(r)
	for _, tex := range []sprite.TextureID{a, c, a, c} {
		batcher.CreateBatchItem().SetRect(tex, sprite.RectXYWH(0, 0, 1, 1), sprite.FullTexture, sprite.White, 0)
	}
	if err := batcher.DrawBatch(sprite.SortTexture, r.NewRenderState()); err != nil {
		t.Fatalf("DrawBatch() error = %v", err)
	}
	if r.DrawCalls() != 2 {
		t.Errorf("DrawCalls() = %d, want 2", r.DrawCalls())
	}
	if r.Image().Bounds() != image.Rect(0, 0, 32, 32) {
		t.Errorf("Image().Bounds() = %v", r.Image().Bounds())
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Software backend is auto-registered via init()
	if !IsRegistered("software") {
		t.Error("software backend should be auto-registered")
	}

	b := Get("software")
	if b == nil {
		t.Fatal("Get(software) returned nil")
	}
	if b.Name() != "software" {
		t.Errorf("Get(software).Name() = %q, want %q", b.Name(), "software")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if b := Get("nonexistent"); b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
	if _, err := Open("nonexistent"); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Open(nonexistent) = %v, want %v", err, ErrBackendNotAvailable)
	}
}

func TestRegistryAvailable(t *testing.T) {
	available := Available()
	if !slices.Contains(available, "software") || !slices.Contains(available, "null") {
		t.Errorf("Available() = %v, want software and null", available)
	}
	if !slices.IsSorted(available) {
		t.Errorf("Available() = %v, want sorted", available)
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	if b.Name() != "software" {
		t.Errorf("Default() = %q, want %q", b.Name(), "software")
	}

	opened, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") error = %v", err)
	}
	defer opened.Close()
	if opened.Name() != "software" {
		t.Errorf("Open(\"\") = %q, want %q", opened.Name(), "software")
	}
}

func TestRegistryMustDefault(t *testing.T) {
	// Should not panic when software backend is available
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if b := MustDefault(); b == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-backend", func() RenderBackend {
		return &NullBackend{}
	})

	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	Unregister("test-backend")

	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}
