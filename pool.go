package sprite

import "log/slog"

// itemPool is an index-addressed arena of batch items. The first count
// slots are pending; the rest are stale slack kept for reuse.
//
// Items are never freed individually. reset returns every slot at once.
type itemPool struct {
	items []BatchItem
	count int
}

func newItemPool(size int) itemPool {
	return itemPool{items: make([]BatchItem, max(size, 1))}
}

// next hands out the next free slot, doubling the backing store when it is
// exhausted. Growth moves every item, invalidating earlier pointers.
func (p *itemPool) next() *BatchItem {
	if p.count == len(p.items) {
		grown := make([]BatchItem, 2*len(p.items))
		copy(grown, p.items)
		if l := Logger(); debugEnabled(l) {
			l.Debug("sprite: batch item pool grown",
				slog.Int("from", len(p.items)), slog.Int("to", len(grown)))
		}
		p.items = grown
	}
	it := &p.items[p.count]
	p.count++
	return it
}

// pending returns the valid leading slots.
func (p *itemPool) pending() []BatchItem { return p.items[:p.count] }

// reset recycles every slot for the next draw call.
func (p *itemPool) reset() { p.count = 0 }
