package header

import "github.com/exrgo/exr/internal/options"

// ReadConfig controls the resource caps and unknown-attribute policy
// ReadHeader applies while parsing a layer header.
type ReadConfig struct {
	skipUnknownAttributes bool
	maxAttributeBytes     int
	maxVectorLen          int
}

// DefaultMaxAttributeBytes caps a single attribute's declared size; large
// enough for a 4K preview thumbnail, small enough to reject a corrupt
// length field before it drives a multi-gigabyte allocation.
const DefaultMaxAttributeBytes = 64 << 20

// DefaultMaxVectorLen caps the element count of a channel list or
// string-vector attribute.
const DefaultMaxVectorLen = 1 << 16

func defaultReadConfig() *ReadConfig {
	return &ReadConfig{
		skipUnknownAttributes: true,
		maxAttributeBytes:     DefaultMaxAttributeBytes,
		maxVectorLen:          DefaultMaxVectorLen,
	}
}

// ReadOption configures a ReadConfig.
type ReadOption = options.Option[*ReadConfig]

// SkipUnknownAttributes controls whether an unrecognized attribute type is
// preserved as header.Unknown (the default) or rejected with
// errs.ErrUnknownAttributeType.
func SkipUnknownAttributes(skip bool) ReadOption {
	return options.NoError(func(c *ReadConfig) { c.skipUnknownAttributes = skip })
}

// MaxAttributeBytes overrides the per-attribute size cap.
func MaxAttributeBytes(n int) ReadOption {
	return options.NoError(func(c *ReadConfig) { c.maxAttributeBytes = n })
}

// MaxVectorLen overrides the channel-list/string-vector element cap.
func MaxVectorLen(n int) ReadOption {
	return options.NoError(func(c *ReadConfig) { c.maxVectorLen = n })
}

func newReadConfig(opts ...ReadOption) (*ReadConfig, error) {
	cfg := defaultReadConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
