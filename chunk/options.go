package chunk

import (
	"runtime"

	"github.com/exrgo/exr/internal/options"
)

// Config controls how the Scheduler reads and writes chunks: whether
// decode/encode work runs on a worker pool, how large that pool is, and a
// cap on a single chunk's declared byte size.
type Config struct {
	parallel      bool
	workers       int
	maxChunkBytes int
}

// DefaultMaxChunkBytes caps a single chunk's declared uncompressed size; a
// malicious or corrupt header shouldn't be able to drive an unbounded
// allocation before a single byte is validated against it.
const DefaultMaxChunkBytes = 256 << 20

func defaultConfig() *Config {
	return &Config{
		parallel:      false,
		workers:       runtime.GOMAXPROCS(0),
		maxChunkBytes: DefaultMaxChunkBytes,
	}
}

// Option configures a Config.
type Option = options.Option[*Config]

// Parallel enables worker-pool decode/encode. Serial (the default) decodes
// and delivers lines on the calling goroutine.
func Parallel(enabled bool) Option {
	return options.NoError(func(c *Config) { c.parallel = enabled })
}

// Workers overrides the worker-pool size used when Parallel is enabled.
// Defaults to runtime.GOMAXPROCS(0).
func Workers(n int) Option {
	return options.NoError(func(c *Config) {
		if n > 0 {
			c.workers = n
		}
	})
}

// MaxChunkBytes overrides the per-chunk declared-size cap.
func MaxChunkBytes(n int) Option {
	return options.NoError(func(c *Config) { c.maxChunkBytes = n })
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
