package sprite

import (
	"image/color"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	b := NewBatcher(&recordingDevice{})
	if b.Capacity() != DefaultInitialBatchSize {
		t.Errorf("Capacity() = %d, want %d", b.Capacity(), DefaultInitialBatchSize)
	}
	if len(b.pool.items) != DefaultInitialBatchSize {
		t.Errorf("pool size = %d, want %d", len(b.pool.items), DefaultInitialBatchSize)
	}
	if b.MaxBatchSize() != MaxBatchSize {
		t.Errorf("MaxBatchSize() = %d, want %d", b.MaxBatchSize(), MaxBatchSize)
	}
}

func TestWithInitialBatchSize(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{64, 64},
		{0, DefaultInitialBatchSize},
		{-5, DefaultInitialBatchSize},
	}
	for _, tt := range tests {
		b := NewBatcher(&recordingDevice{}, WithInitialBatchSize(tt.n))
		if len(b.pool.items) != tt.want {
			t.Errorf("WithInitialBatchSize(%d): pool size = %d, want %d", tt.n, len(b.pool.items), tt.want)
		}
	}
}

func TestWithMaxBatchSizeClamps(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{100, 100},
		{0, 1},
		{-1, 1},
		{MaxBatchSize + 1, MaxBatchSize},
	}
	for _, tt := range tests {
		b := NewBatcher(&recordingDevice{}, WithMaxBatchSize(tt.n))
		if b.MaxBatchSize() != tt.want {
			t.Errorf("WithMaxBatchSize(%d) = %d, want %d", tt.n, b.MaxBatchSize(), tt.want)
		}
	}
}

func TestInitialCapacityLimitedByMaxBatchSize(t *testing.T) {
	b := NewBatcher(&recordingDevice{}, WithInitialBatchSize(512), WithMaxBatchSize(8))
	if b.Capacity() != 8 {
		t.Errorf("Capacity() = %d, want 8", b.Capacity())
	}
	if len(b.pool.items) != 512 {
		t.Errorf("pool size = %d, want 512", len(b.pool.items))
	}
}

func TestColorOf(t *testing.T) {
	got := ColorOf(color.NRGBA{R: 255, A: 128})
	// Premultiplied: red scaled by alpha.
	if got[0] < 0.49 || got[0] > 0.51 || got[1] != 0 || got[2] != 0 || got[3] < 0.49 || got[3] > 0.51 {
		t.Errorf("ColorOf(half red) = %v", got)
	}
	if ColorOf(nil) != White {
		t.Errorf("ColorOf(nil) = %v, want White", ColorOf(nil))
	}
	if ColorOf(color.White) != White {
		t.Errorf("ColorOf(color.White) = %v, want White", ColorOf(color.White))
	}
}
