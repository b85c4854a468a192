package kbloom

import (
	"encoding/binary"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

const (
	// serializeVersion is the current serialization format version.
	serializeVersion byte = 1

	// headerSize is the size of the serialization header in bytes.
	// Version (1) + K (4) + Size (8) + Count (8) = 21 bytes
	headerSize = 21
)

// MarshalBinary serializes the bloom filter to a byte slice.
// The serialized format is:
//   - Version (1 byte): serialization format version
//   - K (4 bytes): number of hash functions (little-endian uint32)
//   - Size (8 bytes): number of bits (little-endian uint64)
//   - Count (8 bytes): number of inserts (little-endian uint64)
//   - Words (ceil(size/64) * 8 bytes): the bit array (little-endian uint64s)
//
// Hashers, serializer and observer are not serialized; pass the same options
// to UnmarshalBinary.
func (f *Filter) MarshalBinary() ([]byte, error) {
	words := f.bits.Words()
	buf := make([]byte, headerSize+len(words)*8)

	buf[0] = serializeVersion
	binary.LittleEndian.PutUint32(buf[1:5], f.k)
	binary.LittleEndian.PutUint64(buf[5:13], f.size)
	binary.LittleEndian.PutUint64(buf[13:21], f.count)

	offset := headerSize
	for _, word := range words {
		binary.LittleEndian.PutUint64(buf[offset:offset+8], word)
		offset += 8
	}

	return buf, nil
}

// UnmarshalBinary deserializes a bloom filter from a byte slice.
// Returns an error if the data is invalid or corrupted.
func UnmarshalBinary(data []byte, opts ...Option) (*Filter, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: data too short (got %d bytes, need at least %d)", ErrInvalidData, len(data), headerSize)
	}

	version := data[0]
	if version != serializeVersion {
		return nil, fmt.Errorf("%w: got version %d, expected %d", ErrUnsupportedVersion, version, serializeVersion)
	}

	k := binary.LittleEndian.Uint32(data[1:5])
	size := binary.LittleEndian.Uint64(data[5:13])
	count := binary.LittleEndian.Uint64(data[13:21])

	if k == 0 {
		return nil, fmt.Errorf("%w: k must be positive", ErrInvalidK)
	}
	if size == 0 || size > MaxBits {
		return nil, fmt.Errorf("%w: size %d out of range", ErrInvalidData, size)
	}

	// Safe from overflow now that size is bounded.
	numWords := (size + 63) / 64
	expectedTotalLen := headerSize + numWords*8
	if uint64(len(data)) != expectedTotalLen {
		return nil, fmt.Errorf("%w: data length mismatch (got %d bytes, expected %d)", ErrInvalidData, len(data), expectedTotalLen)
	}

	words := make([]uint64, numWords)
	offset := headerSize
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(data[offset : offset+8])
		offset += 8
	}

	// Bits past size can never be set by Add.
	if tail := size % 64; tail != 0 && words[numWords-1]>>tail != 0 {
		return nil, fmt.Errorf("%w: bits set beyond size %d", ErrInvalidData, size)
	}

	return &Filter{
		bits:  bitset.From(words),
		size:  size,
		k:     k,
		count: count,
		cfg:   newConfig(opts),
	}, nil
}
