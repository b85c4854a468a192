package kbloom

import (
	"runtime"
	"slices"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/jcalabro/kbloom/hashing"
)

// indexes appends the k bit positions for data to dst.
func (f *Filter) indexes(dst []uint64, data []byte) []uint64 {
	if f.cfg.parallel && f.k > 1 {
		return parallelIndexes(dst, f.cfg.seeded, data, f.k, f.size)
	}
	for i := range f.k {
		dst = append(dst, f.cfg.seeded.Sum64(data, uint64(i))%f.size)
	}
	return dst
}

// parallelIndexes runs one goroutine per seed, at most GOMAXPROCS at a time.
// Each goroutine writes its own slot and all of them finish before it
// returns.
func parallelIndexes(dst []uint64, h hashing.Seeded, data []byte, k uint32, m uint64) []uint64 {
	start := len(dst)
	dst = slices.Grow(dst, int(k))[:start+int(k)]
	out := dst[start:]

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range out {
		eg.Go(func() error {
			out[i] = h.Sum64(data, uint64(i)) % m
			return nil
		})
	}
	// Seeded hashes cannot fail.
	_ = eg.Wait()

	return dst
}

// itemIndexes serializes item and appends the k positions derived from its
// wide digest to dst.
func (f *Filter) itemIndexes(dst []uint64, item any) ([]uint64, error) {
	b, err := f.cfg.serializer.Serialize(item)
	if err != nil {
		return dst, err
	}
	hi, lo := f.cfg.wide.Sum128(b)
	return hashing.Indexes(dst, hi, lo, f.k, f.size), nil
}

// stringBytes returns the bytes of s without copying. The result must not be
// modified.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
