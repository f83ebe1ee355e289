package sprite

import (
	"slices"
	"testing"
)

// quadIndices is the expected index data for n quads.
func quadIndices(n int) []uint16 {
	out := make([]uint16, 0, 6*n)
	for i := 0; i < n; i++ {
		v := uint16(4 * i)
		out = append(out, v, v+1, v+2, v+1, v+3, v+2)
	}
	return out
}

func TestEnsureIndexPattern(t *testing.T) {
	var s stagingBuffers
	s.ensure(4)
	want := []uint16{
		0, 1, 2, 1, 3, 2,
		4, 5, 6, 5, 7, 6,
		8, 9, 10, 9, 11, 10,
		12, 13, 14, 13, 15, 14,
	}
	if !slices.Equal(s.indices, want) {
		t.Errorf("indices = %v, want %v", s.indices, want)
	}
}

func TestEnsureIncrementalMatchesOneShot(t *testing.T) {
	var inc stagingBuffers
	for _, n := range []int{1, 3, 3, 2, 7, 10} {
		inc.ensure(n)
	}

	var once stagingBuffers
	once.ensure(10)

	if !slices.Equal(inc.indices, once.indices) {
		t.Error("incremental growth produced different indices than one-shot growth")
	}
	if !slices.Equal(once.indices, quadIndices(10)) {
		t.Error("one-shot indices do not follow the quad pattern")
	}
}

func TestEnsureIdempotentAndMonotonic(t *testing.T) {
	var s stagingBuffers
	if !s.ensure(8) {
		t.Fatal("ensure(8) on empty buffers should grow")
	}
	before := slices.Clone(s.indices)
	vertsBefore := len(s.vertices)

	for _, n := range []int{8, 5, 1, 0} {
		if s.ensure(n) {
			t.Errorf("ensure(%d) grew covered buffers", n)
		}
	}
	if !slices.Equal(s.indices, before) {
		t.Error("indices changed by a no-op ensure")
	}
	if len(s.vertices) != vertsBefore {
		t.Errorf("vertices = %d, want %d", len(s.vertices), vertsBefore)
	}

	s.ensure(20)
	if !slices.Equal(s.indices[:len(before)], before) {
		t.Error("growth rewrote indices of previously covered quads")
	}
}

func TestEnsureSizes(t *testing.T) {
	tests := []struct {
		quads int
	}{
		{1}, {256}, {300}, {MaxBatchSize},
	}
	for _, tt := range tests {
		var s stagingBuffers
		s.ensure(tt.quads)
		if s.quads() != tt.quads {
			t.Errorf("quads() = %d, want %d", s.quads(), tt.quads)
		}
		if len(s.indices) != 6*tt.quads {
			t.Errorf("indices = %d, want %d", len(s.indices), 6*tt.quads)
		}
		if len(s.vertices) != 4*tt.quads {
			t.Errorf("vertices = %d, want %d", len(s.vertices), 4*tt.quads)
		}
	}
}

func TestEnsureMaxBatchSizeFitsIndexType(t *testing.T) {
	var s stagingBuffers
	s.ensure(MaxBatchSize)
	last := s.indices[len(s.indices)-2]
	if want := uint16(4*(MaxBatchSize-1) + 3); last != want {
		t.Errorf("last quad BR index = %d, want %d", last, want)
	}
	if got := slices.Max(s.indices); int(got) != 4*MaxBatchSize-1 {
		t.Errorf("max index = %d, want %d", got, 4*MaxBatchSize-1)
	}
}

func TestEnsureBeyondMaxBatchSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ensure(MaxBatchSize+1) should panic")
		}
	}()
	var s stagingBuffers
	s.ensure(MaxBatchSize + 1)
}

func TestBatcherEnsureArrayCapacity(t *testing.T) {
	b := NewBatcher(&recordingDevice{}, WithInitialBatchSize(16))
	if b.Capacity() != 16 {
		t.Fatalf("Capacity() = %d, want 16", b.Capacity())
	}
	b.EnsureArrayCapacity(8)
	if b.Capacity() != 16 {
		t.Errorf("Capacity() = %d after smaller request, want 16", b.Capacity())
	}
	b.EnsureArrayCapacity(64)
	if b.Capacity() != 64 {
		t.Errorf("Capacity() = %d, want 64", b.Capacity())
	}
	if !slices.Equal(b.staging.indices, quadIndices(64)) {
		t.Error("indices do not follow the quad pattern after growth")
	}
}
