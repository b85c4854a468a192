package hashing

import "github.com/spaolacci/murmur3"

// Murmur3 implements both [Seeded] and [Wide] with MurmurHash3. It is the
// default wide hash.
type Murmur3 struct{}

// Sum64 implements [Seeded]. Murmur3 takes a 32-bit seed, so the two halves
// of seed are folded together.
func (Murmur3) Sum64(data []byte, seed uint64) uint64 {
	return murmur3.Sum64WithSeed(data, uint32(seed)^uint32(seed>>32))
}

// Sum128 implements [Wide].
func (Murmur3) Sum128(data []byte) (hi, lo uint64) {
	return murmur3.Sum128(data)
}
