package compiler

import "github.com/ironautomata/eudoxus/format"

// Config controls how Compile lays out a Eudoxus image. Zero-value-safe
// fields follow the teacher's functional-options convention: construct via
// DefaultConfig and override with With* options.
type Config struct {
	// IDWidth pins the image's offset width. Zero (the default) means
	// auto-select: Compile tries format.Widths narrowest-first and keeps
	// the first that addresses the whole image.
	IDWidth format.IDWidth

	// AlignTo rounds every node's start offset up to a multiple of this
	// many bytes. 1 (the default) packs nodes with no padding.
	AlignTo int

	// HighNodeWeight biases the Low-vs-High cost comparison in favor of
	// High nodes by this factor: a High node is chosen whenever
	// cost(high) <= cost(low)*HighNodeWeight. 1.0 compares raw byte
	// counts; values above 1 prefer High's flatter, branch-free dispatch
	// even when it costs more bytes than Low would.
	HighNodeWeight float64

	// BigEndian selects the byte order Compile encodes the image with.
	BigEndian bool
}

// Option configures a Config.
type Option func(*Config)

// WithIDWidth pins the compiled image to a specific offset width instead
// of auto-selecting the narrowest one that fits.
func WithIDWidth(w format.IDWidth) Option {
	return func(c *Config) { c.IDWidth = w }
}

// WithAlignTo aligns every node's start offset to a multiple of n bytes.
func WithAlignTo(n int) Option {
	return func(c *Config) { c.AlignTo = n }
}

// WithHighNodeWeight overrides the Low-vs-High cost bias.
func WithHighNodeWeight(w float64) Option {
	return func(c *Config) { c.HighNodeWeight = w }
}

// WithBigEndian selects big-endian image encoding (little-endian is the
// default).
func WithBigEndian(v bool) Option {
	return func(c *Config) { c.BigEndian = v }
}

// DefaultConfig returns the baseline Config: auto id width, no padding,
// unbiased cost comparison, little-endian.
func DefaultConfig() Config {
	return Config{
		IDWidth:        0,
		AlignTo:        1,
		HighNodeWeight: 1.0,
		BigEndian:      false,
	}
}
