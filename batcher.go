package sprite

import (
	"fmt"
	"log/slog"
)

// Stats describes the work done by the most recent DrawBatch call.
type Stats struct {
	// Items is the number of batch items drawn.
	Items int

	// Chunks is the number of index-range chunks the items were split into.
	Chunks int

	// Flushes is the number of Device.Draw submissions.
	Flushes int
}

// Batcher aggregates quad draw requests into as few device submissions as
// possible. Items are recorded with CreateBatchItem and submitted with
// DrawBatch, which sorts them, stages their vertices and flushes whenever
// the bound texture changes or a chunk of MaxBatchSize quads is full.
//
// A Batcher is not safe for concurrent use. Callers serialize
// CreateBatchItem/DrawBatch sequences externally.
type Batcher struct {
	device       Device
	pool         itemPool
	staging      stagingBuffers
	maxBatchSize int
	stats        Stats
}

// NewBatcher creates a batcher that submits to device.
func NewBatcher(device Device, opts ...Option) *Batcher {
	if device == nil {
		panic("sprite: NewBatcher with nil device")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Batcher{
		device:       device,
		pool:         newItemPool(o.initialBatchSize),
		maxBatchSize: o.maxBatchSize,
	}
	b.staging.ensure(min(o.initialBatchSize, o.maxBatchSize))
	return b
}

// CreateBatchItem returns the next pool slot for the caller to fill.
// The pointer must not be kept across another CreateBatchItem or DrawBatch
// call.
func (b *Batcher) CreateBatchItem() *BatchItem {
	return b.pool.next()
}

// Pending returns the number of items recorded since the last DrawBatch.
func (b *Batcher) Pending() int { return b.pool.count }

// Capacity returns the number of quads the staging buffers cover.
func (b *Batcher) Capacity() int { return b.staging.quads() }

// MaxBatchSize returns the chunk size limit in quads.
func (b *Batcher) MaxBatchSize() int { return b.maxBatchSize }

// Stats returns the statistics of the most recent non-empty DrawBatch.
func (b *Batcher) Stats() Stats { return b.stats }

// EnsureArrayCapacity grows the staging buffers to cover n quads. It is a
// no-op when they already do. Indices written for already covered quads
// are never changed. It panics if n exceeds MaxBatchSize.
func (b *Batcher) EnsureArrayCapacity(n int) {
	b.staging.ensure(n)
}

// DrawBatch draws every pending item through state and returns the items
// to the pool. With no pending items it does nothing.
//
// A Device error stops the remaining flushes and is returned; the pending
// items are released either way.
func (b *Batcher) DrawBatch(mode SortMode, state RenderState) error {
	if b.pool.count == 0 {
		return nil
	}

	items := b.pool.pending()
	done := false
	defer func() {
		if !done {
			// Items not yet staged still borrow their textures.
			for i := range items {
				items[i].Texture = NoTexture
			}
		}
		b.pool.reset()
	}()

	sortItems(items, mode)

	b.stats = Stats{Items: len(items)}
	for remaining := items; len(remaining) > 0; {
		n := min(len(remaining), b.maxBatchSize)
		if err := b.drawChunk(remaining[:n], state); err != nil {
			Logger().Warn("sprite: draw batch aborted", slog.String("err", err.Error()))
			return err
		}
		remaining = remaining[n:]
	}
	done = true

	if l := Logger(); debugEnabled(l) {
		l.Debug("sprite: batch drawn",
			slog.String("mode", mode.String()),
			slog.Int("items", b.stats.Items),
			slog.Int("chunks", b.stats.Chunks),
			slog.Int("flushes", b.stats.Flushes))
	}
	return nil
}

// drawChunk stages items, flushing each run of equal textures, and flushes
// the tail. A chunk always ends with a flush, even if the next chunk starts
// with the same texture.
func (b *Batcher) drawChunk(items []BatchItem, state RenderState) error {
	b.staging.ensure(len(items))
	b.stats.Chunks++

	tex := NoTexture
	start, cur := 0, 0
	verts := b.staging.vertices
	for i := range items {
		it := &items[i]
		if it.Texture != tex {
			if err := b.flush(start, cur, tex, state); err != nil {
				return err
			}
			tex = it.Texture
			start = cur
		}

		v := verts[4*cur : 4*cur+4 : 4*cur+4]
		v[0] = it.TopLeft
		v[1] = it.TopRight
		v[2] = it.BottomLeft
		v[3] = it.BottomRight
		cur++

		it.Texture = NoTexture
	}
	return b.flush(start, cur, tex, state)
}

// flush submits the staged quads [start, end) bound to tex. It is the only
// place that talks to the device and never touches batch items.
func (b *Batcher) flush(start, end int, tex TextureID, state RenderState) error {
	if start == end {
		return nil
	}
	state.SetTexture(tex)
	b.stats.Flushes++

	vertices := b.staging.vertices[4*start : 4*end : 4*end]
	indices := b.staging.indices[: 6*(end-start) : 6*(end-start)]
	if err := b.device.Draw(vertices, indices, state); err != nil {
		return fmt.Errorf("sprite: flush %d quads with %v: %w", end-start, tex, err)
	}
	return nil
}
