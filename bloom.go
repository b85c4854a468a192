package kbloom

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// stackIndexes is the number of positions kept on the stack per operation
// before falling back to a heap allocation.
const stackIndexes = 16

// Filter is a non-thread-safe bloom filter that sets k bits per item, one
// per seeded hash evaluation.
//
// Concurrent calls to Test are safe with each other, but nothing else is:
// Add, AddItem, Clear and ResizeIfNeeded must be serialized by the caller
// and must not overlap with readers. Use [LockedFilter] if you need that.
type Filter struct {
	bits  *bitset.BitSet // size bits, packed into 64-bit words
	size  uint64         // Number of addressable bits (m)
	k     uint32         // Number of hash functions
	count uint64         // Inserts since construction or the last resize
	cfg   config
}

// New creates a new bloom filter optimized for the expected number of items
// and desired false positive rate. It fails with ErrInvalidParameter if
// expectedItems is zero or fpRate is not in (0, 1).
func New(expectedItems uint64, fpRate float64, opts ...Option) (*Filter, error) {
	size, k, err := OptimalParams(expectedItems, fpRate)
	if err != nil {
		return nil, err
	}
	return NewWithParams(size, k, opts...)
}

// NewWithParams creates a new bloom filter with explicit parameters.
// size is the number of bits, k is the number of hash functions.
func NewWithParams(size uint64, k uint32, opts ...Option) (*Filter, error) {
	if err := checkParams(size, k); err != nil {
		return nil, err
	}
	return &Filter{
		bits: bitset.New(uint(size)),
		size: size,
		k:    k,
		cfg:  newConfig(opts),
	}, nil
}

// Add adds data to the bloom filter. All k bits are set before Add returns,
// and the insert count grows by one even if data was already present.
func (f *Filter) Add(data []byte) {
	if f.cfg.observer != nil {
		f.cfg.observer.OnInsert(string(data))
	}
	var buf [stackIndexes]uint64
	f.setAll(f.indexes(buf[:0], data))
}

// AddString adds a string to the bloom filter without copying it.
func (f *Filter) AddString(s string) {
	if f.cfg.observer != nil {
		f.cfg.observer.OnInsert(s)
	}
	var buf [stackIndexes]uint64
	f.setAll(f.indexes(buf[:0], stringBytes(s)))
}

func (f *Filter) setAll(idx []uint64) {
	for _, i := range idx {
		f.bits.Set(uint(i))
	}
	f.count++
}

// Test checks if data might be in the bloom filter.
// Returns true if the data might be present (with false positive probability),
// or false if the data is definitely not present.
func (f *Filter) Test(data []byte) bool {
	found := f.test(data)
	if f.cfg.observer != nil {
		f.cfg.observer.OnLookup(string(data), found)
	}
	return found
}

// TestString checks if a string might be in the bloom filter without copying it.
func (f *Filter) TestString(s string) bool {
	found := f.test(stringBytes(s))
	if f.cfg.observer != nil {
		f.cfg.observer.OnLookup(s, found)
	}
	return found
}

func (f *Filter) test(data []byte) bool {
	if f.cfg.parallel {
		var buf [stackIndexes]uint64
		return f.testAll(f.indexes(buf[:0], data))
	}

	// Sequential probes stop at the first clear bit.
	for i := range f.k {
		if !f.bits.Test(uint(f.cfg.seeded.Sum64(data, uint64(i)) % f.size)) {
			return false
		}
	}
	return true
}

func (f *Filter) testAll(idx []uint64) bool {
	for _, i := range idx {
		if !f.bits.Test(uint(i)) {
			return false
		}
	}
	return true
}

// TestAndAdd reports whether data might already have been present and then
// adds it.
func (f *Filter) TestAndAdd(data []byte) bool {
	var buf [stackIndexes]uint64
	idx := f.indexes(buf[:0], data)
	present := f.testAll(idx)
	if f.cfg.observer != nil {
		f.cfg.observer.OnLookup(string(data), present)
		f.cfg.observer.OnInsert(string(data))
	}
	f.setAll(idx)
	return present
}

// Clear removes all items from the filter, keeping its size and k.
func (f *Filter) Clear() {
	f.bits.ClearAll()
	f.count = 0
}

// Cap returns the capacity of the filter in bits.
func (f *Filter) Cap() uint64 {
	return f.size
}

// K returns the number of hash functions used.
func (f *Filter) K() uint32 {
	return f.k
}

// Count returns the number of inserts since construction or the last resize.
// Duplicate inserts are counted.
func (f *Filter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.size)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of inserts. Duplicates are counted as new items, so
// the estimate is high when the same items are added repeatedly.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.size, f.k, f.count)
}

// ResizeIfNeeded rebuilds the filter when its estimated false positive rate
// exceeds threshold. The new filter is sized for Count() items at targetRate.
// It reports whether a rebuild happened.
//
// A rebuild is a reset, not a rehash: every bit is discarded and Count
// returns to zero, so items added before the resize are forgotten and must be
// added again by the caller. ResizeIfNeeded is never called implicitly.
//
// If the new parameters are invalid or too large, the error is returned and
// the filter is left exactly as it was.
func (f *Filter) ResizeIfNeeded(threshold, targetRate float64) (bool, error) {
	// Written so that NaN fails too. Thresholds of 1 or more never resize.
	if !(threshold >= 0) {
		return false, fmt.Errorf("%w: resize threshold %v is negative", ErrInvalidParameter, threshold)
	}
	if f.EstimatedFalsePositiveRate() <= threshold {
		return false, nil
	}

	size, k, err := OptimalParams(f.count, targetRate)
	if err != nil {
		return false, fmt.Errorf("resizing for %d items: %w", f.count, err)
	}
	bits := bitset.New(uint(size))

	f.bits = bits
	f.size = size
	f.k = k
	f.count = 0
	return true, nil
}
