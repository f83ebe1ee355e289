package sprite

// Option configures a Batcher during creation.
//
// Example:
//
//	b := sprite.NewBatcher(dev,
//	    sprite.WithInitialBatchSize(1024),
//	)
type Option func(*options)

// options holds optional configuration for Batcher creation.
type options struct {
	initialBatchSize int
	maxBatchSize     int
}

// defaultOptions returns the default batcher options.
func defaultOptions() options {
	return options{
		initialBatchSize: DefaultInitialBatchSize,
		maxBatchSize:     MaxBatchSize,
	}
}

// WithInitialBatchSize sets how many batch items are pre-allocated and how
// many quads of staging capacity exist before the first draw. Both grow on
// demand. Non-positive values keep the default.
func WithInitialBatchSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialBatchSize = n
		}
	}
}

// WithMaxBatchSize caps the number of quads staged per chunk. Values are
// clamped to [1, MaxBatchSize]. Smaller chunks bound the size of a single
// device submission.
func WithMaxBatchSize(n int) Option {
	return func(o *options) {
		o.maxBatchSize = min(max(n, 1), MaxBatchSize)
	}
}
