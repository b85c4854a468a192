// Package hashing provides the hash capabilities used by kbloom filters.
//
// Two kinds of digest are offered. A [Seeded] hash derives many cheap,
// independent 64-bit values from one item by varying an integer seed; it
// backs the bulk Add/Test path. A [Wide] hash produces a single 128-bit
// digest whose halves are expanded into k positions with [Indexes]; it backs
// the AddItem/TestItem path, where items are first turned into canonical
// bytes by a [Serializer].
//
// Implementations must be deterministic within a process, and for varying
// seeds their outputs must behave like independent uniform draws. The false
// positive estimate of a filter depends on that assumption.
package hashing

// Seeded computes a 64-bit digest of data mixed with seed.
type Seeded interface {
	Sum64(data []byte, seed uint64) uint64
}

// Wide computes a 128-bit digest of data, returned as its high and low halves.
type Wide interface {
	Sum128(data []byte) (hi, lo uint64)
}

// Serializer converts an arbitrary value into a canonical byte form. Equal
// values must produce equal bytes.
type Serializer interface {
	Serialize(item any) ([]byte, error)
}

// Indexes appends k bit positions in [0, m) derived from a wide digest using
// double hashing: g_i = hi + i*lo (mod m). A step of zero would probe the
// same bit k times, so it is replaced by one.
//
// See "Less Hashing, Same Performance" (Kirsch, Mitzenmacher).
func Indexes(dst []uint64, hi, lo uint64, k uint32, m uint64) []uint64 {
	h := hi % m
	step := lo % m
	if step == 0 {
		step = 1
	}
	for range k {
		dst = append(dst, h)
		h = (h + step) % m
	}
	return dst
}
