package sprite

import "errors"

var (
	// ErrUnknownSortMode is returned when parsing an unrecognized sort mode.
	ErrUnknownSortMode = errors.New("sprite: unknown sort mode")

	// ErrBeginCalledTwice is returned by SpriteBatch.Begin inside a batch.
	ErrBeginCalledTwice = errors.New("sprite: Begin called twice without End")

	// ErrBeginNotCalled is returned by SpriteBatch.Draw and End outside a batch.
	ErrBeginNotCalled = errors.New("sprite: Begin must be called first")

	// ErrNilRenderState is returned by SpriteBatch.Begin without a render state.
	ErrNilRenderState = errors.New("sprite: nil render state")
)
