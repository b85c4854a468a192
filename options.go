package kbloom

import "github.com/jcalabro/kbloom/hashing"

// Option configures a Filter.
type Option func(*config)

type config struct {
	seeded     hashing.Seeded
	wide       hashing.Wide
	serializer hashing.Serializer
	observer   Observer
	parallel   bool
}

func newConfig(opts []Option) config {
	cfg := config{
		seeded:     hashing.XXH3{},
		wide:       hashing.Murmur3{},
		serializer: hashing.CBOR{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeededHasher sets the hash used by Add and Test. Defaults to xxh3.
func WithSeededHasher(h hashing.Seeded) Option {
	return func(c *config) {
		if h != nil {
			c.seeded = h
		}
	}
}

// WithWideHasher sets the 128-bit hash used by AddItem and TestItem.
// Defaults to murmur3.
func WithWideHasher(h hashing.Wide) Option {
	return func(c *config) {
		if h != nil {
			c.wide = h
		}
	}
}

// WithSerializer sets how AddItem and TestItem turn values into bytes.
// Defaults to canonical CBOR.
func WithSerializer(s hashing.Serializer) Option {
	return func(c *config) {
		if s != nil {
			c.serializer = s
		}
	}
}

// WithObserver registers an observer that is told about every insert and
// lookup.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

// WithParallelHashing computes the k hashes of each operation on separate
// goroutines. Results are identical to the sequential path; this only pays
// off for expensive hashers or large k.
func WithParallelHashing(enabled bool) Option {
	return func(c *config) {
		c.parallel = enabled
	}
}
