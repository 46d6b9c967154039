package btrees

// Options configures tree behavior.
type Options struct {
	logger          Logger
	searchCacheSize int // Number of memoized Search results. 0 disables the cache.
}

// DefaultOptions returns the default configuration: no logging, no cache.
//
// goland:noinspection GoUnusedExportedFunction
func DefaultOptions() Options {
	return Options{
		logger:          DiscardLogger{},
		searchCacheSize: 0,
	}
}

// Option configures tree options using the functional options pattern.
type Option func(*Options)

// WithLogger routes the tree's log events to l. A nil logger discards them.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger(l Logger) Option {
	return func(opts *Options) {
		if l == nil {
			l = DiscardLogger{}
		}
		opts.logger = l
	}
}

// WithSearchCache memoizes up to size Search results, hits and misses alike.
// The cache is purged by every Insert or Delete that changes the tree, so it
// only pays off for read-heavy workloads with repeated lookups.
//
//goland:noinspection GoUnusedExportedFunction
func WithSearchCache(size int) Option {
	return func(opts *Options) {
		opts.searchCacheSize = size
	}
}
