package sprite

import (
	"cmp"
	"fmt"
)

// TextureID is an opaque handle to a texture resource owned by a backend.
// Two handles refer to the same texture only if they are equal; the
// contents of the texture are never inspected by the batcher.
//
// The zero value is NoTexture.
type TextureID struct {
	index uint32
	gen   uint32
}

// NoTexture is the "none" sentinel. Batch items hold it once drawn, and a
// render state bound to it draws untextured.
var NoTexture TextureID

// Valid reports whether id was issued by a registry. It does not report
// whether the texture is still registered.
func (id TextureID) Valid() bool { return id.gen != 0 }

// String returns a debug representation such as "tex(3#2)".
func (id TextureID) String() string {
	if !id.Valid() {
		return "tex(none)"
	}
	return fmt.Sprintf("tex(%d#%d)", id.index, id.gen)
}

// compareTextures orders handles by slot, then generation.
// NoTexture sorts first.
func compareTextures(a, b TextureID) int {
	if c := cmp.Compare(a.index, b.index); c != 0 {
		return c
	}
	return cmp.Compare(a.gen, b.gen)
}

type textureSlot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// TextureRegistry maps TextureIDs to backend resources.
//
// Slots are reused after Release, but each reuse bumps the slot's
// generation, so a released handle never resolves to a newer texture.
// A TextureRegistry is not safe for concurrent use.
type TextureRegistry[T any] struct {
	slots []textureSlot[T]
	free  []uint32
	live  int
}

// Register stores v and returns a fresh handle for it.
func (r *TextureRegistry[T]) Register(v T) TextureID {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots)) //nolint:gosec // slot count bounded by memory
		r.slots = append(r.slots, textureSlot[T]{})
	}

	s := &r.slots[idx]
	s.gen++
	if s.gen == 0 {
		// Generation 0 is reserved for NoTexture.
		s.gen = 1
	}
	s.value = v
	s.live = true
	r.live++

	return TextureID{index: idx, gen: s.gen}
}

// Lookup returns the resource registered under id.
func (r *TextureRegistry[T]) Lookup(id TextureID) (T, bool) {
	s := r.slot(id)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.value, true
}

// MustLookup is like Lookup but panics if id is stale or unknown.
// Backends use it while binding, where a dead handle is a caller bug.
func (r *TextureRegistry[T]) MustLookup(id TextureID) T {
	s := r.slot(id)
	if s == nil {
		panic(fmt.Sprintf("sprite: %v is not a registered texture", id))
	}
	return s.value
}

// Release unregisters id and returns the resource it referred to so the
// caller can destroy it. Releasing a stale handle is a no-op.
func (r *TextureRegistry[T]) Release(id TextureID) (T, bool) {
	s := r.slot(id)
	if s == nil {
		var zero T
		return zero, false
	}
	v := s.value
	var zero T
	s.value = zero
	s.live = false
	r.free = append(r.free, id.index)
	r.live--
	return v, true
}

// Len returns the number of registered textures.
func (r *TextureRegistry[T]) Len() int { return r.live }

func (r *TextureRegistry[T]) slot(id TextureID) *textureSlot[T] {
	if !id.Valid() || int(id.index) >= len(r.slots) {
		return nil
	}
	s := &r.slots[id.index]
	if !s.live || s.gen != id.gen {
		return nil
	}
	return s
}
