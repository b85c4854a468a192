package kbloom

import "sync"

// LockedFilter is a Filter guarded by a read-write mutex. Writers (Add,
// AddItem, Clear, ResizeIfNeeded) are serialized; readers run concurrently
// with each other but never with a writer.
type LockedFilter struct {
	mu sync.RWMutex
	f  *Filter
}

// NewLocked creates a new thread-safe bloom filter optimized for the
// expected number of items and desired false positive rate.
func NewLocked(expectedItems uint64, fpRate float64, opts ...Option) (*LockedFilter, error) {
	f, err := New(expectedItems, fpRate, opts...)
	if err != nil {
		return nil, err
	}
	return &LockedFilter{f: f}, nil
}

// Add adds data to the bloom filter.
func (l *LockedFilter) Add(data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.f.Add(data)
}

// AddString adds a string to the bloom filter.
func (l *LockedFilter) AddString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.f.AddString(s)
}

// AddItem adds a value using the wide hash path.
func (l *LockedFilter) AddItem(item any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.AddItem(item)
}

// Test checks if data might be in the bloom filter.
func (l *LockedFilter) Test(data []byte) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.f.Test(data)
}

// TestString checks if a string might be in the bloom filter.
func (l *LockedFilter) TestString(s string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.f.TestString(s)
}

// TestItem checks if a value added with AddItem might be in the filter.
func (l *LockedFilter) TestItem(item any) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.f.TestItem(item)
}

// TestAndAdd reports whether data might already have been present and then
// adds it, as one step with respect to other callers.
func (l *LockedFilter) TestAndAdd(data []byte) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.TestAndAdd(data)
}

// Clear removes all items from the filter.
func (l *LockedFilter) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.f.Clear()
}

// ResizeIfNeeded rebuilds the filter if its estimated false positive rate
// exceeds threshold. See Filter.ResizeIfNeeded: the rebuild forgets every
// item added so far.
func (l *LockedFilter) ResizeIfNeeded(threshold, targetRate float64) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.ResizeIfNeeded(threshold, targetRate)
}

// Cap returns the capacity of the filter in bits.
func (l *LockedFilter) Cap() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.f.Cap()
}

// K returns the number of hash functions used.
func (l *LockedFilter) K() uint32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.f.K()
}

// Count returns the number of inserts since construction or the last resize.
func (l *LockedFilter) Count() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.f.Count()
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (l *LockedFilter) EstimatedFillRatio() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.f.EstimatedFillRatio()
}

// MarshalBinary serializes the filter. See Filter.MarshalBinary.
func (l *LockedFilter) MarshalBinary() ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.f.MarshalBinary()
}

// EstimatedFalsePositiveRate estimates the current false positive rate.
func (l *LockedFilter) EstimatedFalsePositiveRate() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.f.EstimatedFalsePositiveRate()
}
