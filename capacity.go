package sprite

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
)

const (
	// MaxIndexValue is the largest value an index buffer element can hold.
	MaxIndexValue = math.MaxUint16

	// MaxBatchSize is the largest number of quads staged per chunk.
	// Each quad takes 6 index entries, so a chunk never overflows the
	// index element type.
	MaxBatchSize = MaxIndexValue / 6

	// DefaultInitialBatchSize is the number of items and quads of staging
	// capacity a Batcher starts with.
	DefaultInitialBatchSize = 256
)

// stagingBuffers holds the index and vertex arrays shared by all flushes.
//
// indices only ever grows; entries written for a quad never change.
// vertices tracks 4 slots per covered quad and is rewritten before every
// flush, so its prior contents are not preserved across growth.
type stagingBuffers struct {
	indices  []uint16
	vertices []Vertex
}

// quads returns the number of quads the buffers cover.
func (s *stagingBuffers) quads() int { return len(s.indices) / 6 }

// ensure grows the buffers to cover n quads and reports whether it grew.
func (s *stagingBuffers) ensure(n int) bool {
	if n > MaxBatchSize {
		panic(fmt.Sprintf("sprite: capacity for %d quads exceeds MaxBatchSize (%d)", n, MaxBatchSize))
	}
	covered := s.quads()
	if n <= covered {
		return false
	}

	s.indices = slices.Grow(s.indices, 6*(n-covered))
	for i := covered; i < n; i++ {
		v := uint16(4 * i) //nolint:gosec // n <= MaxBatchSize keeps 4i+3 within uint16
		// Two triangles sharing the TR-BL diagonal.
		s.indices = append(s.indices,
			v, v+1, v+2,
			v+1, v+3, v+2,
		)
	}

	if cap(s.vertices) >= 4*n {
		s.vertices = s.vertices[:4*n]
	} else {
		s.vertices = make([]Vertex, 4*n)
	}

	if l := Logger(); debugEnabled(l) {
		l.Debug("sprite: staging buffers grown",
			slog.Int("from_quads", covered),
			slog.Int("to_quads", n),
			slog.Int("indices", len(s.indices)))
	}
	return true
}
