// Package kbloom provides a classic bloom filter with pluggable hashing.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Hashing
//
// Each item sets k bits. On the fast path ([Filter.Add], [Filter.Test]) bit i
// is seeded(item, i) mod m, where seeded is a [hashing.Seeded] hash (xxh3 by
// default). On the wide path ([Filter.AddItem], [Filter.TestItem]) any Go
// value is serialized to canonical CBOR, hashed once with a 128-bit
// [hashing.Wide] hash (murmur3 by default), and the two halves are expanded
// into k positions by double hashing. The two paths address different bits,
// so an item must be tested on the path it was added with.
//
// # Choosing Parameters
//
// Use [New] with your expected number of items and desired false positive
// rate:
//
//	// Filter for 1 million items with 1% false positive rate
//	f, err := kbloom.New(1_000_000, 0.01)
//
// The size and k are calculated as
//
//	m = ceil(-n * ln(p) / ln(2)²)
//	k = ceil(m / n * ln(2))
//
// [NewWithParams] allows explicit control over both.
//
// # False Positive Rate
//
// [Filter.EstimatedFalsePositiveRate] returns (1 - e^(-kn/m))^k, where n is
// the number of inserts. Duplicates count as inserts, so the estimate is only
// exact when every added item is distinct and overstates the rate otherwise.
//
// # Resizing
//
// [Filter.ResizeIfNeeded] rebuilds the filter when the estimate exceeds a
// threshold. The rebuild is a reset, not a rehash: the new bit array is
// empty, Count returns to zero, and every item added before the resize is
// forgotten. Callers that resize must add their items again. Filters never
// resize on their own.
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Concurrent Test calls are fine, but Add,
// AddItem, Clear and ResizeIfNeeded must not run concurrently with anything.
// Use [LockedFilter] or external synchronization for concurrent access.
//
// # Observers
//
// [WithObserver] registers an [Observer] that is told about every insert and
// lookup; [NewLogObserver] adapts it to a [log/slog.Logger].
package kbloom
