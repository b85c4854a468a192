package kbloom

import (
	"fmt"
	"math"
)

const (
	// MaxBits is the largest bit array a filter will allocate (128 GiB).
	MaxBits = uint64(1) << 40

	// DefaultResizeThreshold is the estimated false positive rate above which
	// ResizeIfNeeded rebuilds the filter.
	DefaultResizeThreshold = 0.01
	// DefaultTargetRate is the false positive rate a rebuilt filter is sized for.
	DefaultTargetRate = 0.01
)

// OptimalParams calculates the optimal bloom filter parameters for
// expectedItems at the desired false positive rate.
//
//	size = ceil(-n * ln(p) / ln(2)^2)
//	k    = ceil(size / n * ln(2))
//
// It returns ErrInvalidParameter if expectedItems is zero or fpRate is not
// in (0, 1), and ErrTooLarge if size would exceed MaxBits.
func OptimalParams(expectedItems uint64, fpRate float64) (size uint64, k uint32, err error) {
	if expectedItems == 0 {
		return 0, 0, fmt.Errorf("%w: expected items must be positive", ErrInvalidParameter)
	}
	// Written so that NaN fails too.
	if !(fpRate > 0 && fpRate < 1) {
		return 0, 0, fmt.Errorf("%w: false positive rate %v not in (0, 1)", ErrInvalidParameter, fpRate)
	}

	n := float64(expectedItems)
	ln2 := math.Log(2)
	m := math.Ceil(-n * math.Log(fpRate) / math.Pow(ln2, 2))
	if m > float64(MaxBits) {
		return 0, 0, fmt.Errorf("%w: %.0f bits requested, limit is %d", ErrTooLarge, m, MaxBits)
	}
	size = max(uint64(m), 1)

	kf := math.Ceil(ln2 * float64(size) / n)
	if kf > math.MaxUint32 {
		return 0, 0, fmt.Errorf("%w: %.0f hash functions requested", ErrInvalidParameter, kf)
	}
	k = max(uint32(kf), 1)

	return size, k, nil
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter
// with size bits and k hash functions after itemsAdded insertions.
// Formula: (1 - e^(-kn/m))^k
//
// itemsAdded counts every insert, duplicates included, so the estimate is
// only exact for distinct items and overstates the rate otherwise.
func EstimateFalsePositiveRate(size uint64, k uint32, itemsAdded uint64) float64 {
	m := float64(size)
	n := float64(itemsAdded)
	kf := float64(k)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-kf*n/m), kf)
}

func checkParams(size uint64, k uint32) error {
	if size == 0 {
		return fmt.Errorf("%w: size must be positive", ErrInvalidParameter)
	}
	if size > MaxBits {
		return fmt.Errorf("%w: %d bits requested, limit is %d", ErrTooLarge, size, MaxBits)
	}
	if k == 0 {
		return fmt.Errorf("%w: hash count must be positive", ErrInvalidParameter)
	}
	return nil
}
