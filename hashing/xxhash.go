package hashing

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// XXHash is a seeded hash built on xxHash64. The item bytes are written into
// the digest first and the little-endian seed bytes after them, so a single
// item yields k distinct values without re-serializing it.
type XXHash struct{}

// Sum64 implements [Seeded].
func (XXHash) Sum64(data []byte, seed uint64) uint64 {
	var d xxhash.Digest
	d.Reset()
	_, _ = d.Write(data)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	_, _ = d.Write(buf[:])

	return d.Sum64()
}
