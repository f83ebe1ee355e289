package sprite

import (
	"cmp"
	"fmt"
	"slices"
)

// SortMode selects the order in which pending items are drawn.
type SortMode int

const (
	// SortDeferred draws items in submission order.
	SortDeferred SortMode = iota

	// SortTexture groups items by texture to minimize flushes.
	SortTexture

	// SortFrontToBack draws items in ascending SortKey order.
	SortFrontToBack

	// SortBackToFront draws items in descending SortKey order, which is
	// what alpha blending over a depth range needs.
	SortBackToFront
)

var sortModeNames = [...]string{
	SortDeferred:    "deferred",
	SortTexture:     "texture",
	SortFrontToBack: "front-to-back",
	SortBackToFront: "back-to-front",
}

// String returns the text form of m.
func (m SortMode) String() string {
	if m < 0 || int(m) >= len(sortModeNames) {
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
	return sortModeNames[m]
}

// ParseSortMode parses the text form produced by String.
func ParseSortMode(s string) (SortMode, error) {
	for m, name := range sortModeNames {
		if name == s {
			return SortMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSortMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m SortMode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(sortModeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSortMode, int(m))
	}
	return []byte(sortModeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SortMode) UnmarshalText(text []byte) error {
	mode, err := ParseSortMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// sortItems orders items in place with a stable sort, so equal keys keep
// their submission order.
func sortItems(items []BatchItem, mode SortMode) {
	switch mode {
	case SortDeferred:
		return
	case SortTexture:
		slices.SortStableFunc(items, func(a, b BatchItem) int {
			return compareTextures(a.Texture, b.Texture)
		})
	case SortFrontToBack:
		slices.SortStableFunc(items, func(a, b BatchItem) int {
			return cmp.Compare(a.SortKey, b.SortKey)
		})
	case SortBackToFront:
		slices.SortStableFunc(items, func(a, b BatchItem) int {
			return cmp.Compare(b.SortKey, a.SortKey)
		})
	default:
		panic(fmt.Sprintf("sprite: unknown sort mode %d", int(mode)))
	}
}
