// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	ErrOverflow  = errors.New("overflow")
	ErrUnderflow = errors.New("underflow")
)

func Max[T constraints.Ordered](max T, nums ...T) T {
	for _, num := range nums {
		if num > max {
			max = num
		}
	}
	return max
}

func Min[T constraints.Ordered](min T, nums ...T) T {
	for _, num := range nums {
		if num < min {
			min = num
		}
	}
	return min
}

// Add64 returns:
// 1) a + b
// 2) If there is overflow, an error
func Add64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// AddInt64 returns:
// 1) a + b
// 2) If there is over/underflow, an error
func AddInt64(a, b int64) (int64, error) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, ErrOverflow
	case b < 0 && a < math.MinInt64-b:
		return 0, ErrUnderflow
	default:
		return a + b, nil
	}
}

// SubInt64 returns:
// 1) a - b
// 2) If there is over/underflow, an error
func SubInt64(a, b int64) (int64, error) {
	switch {
	case b > 0 && a < math.MinInt64+b:
		return 0, ErrUnderflow
	case b < 0 && a > math.MaxInt64+b:
		return 0, ErrOverflow
	default:
		return a - b, nil
	}
}

// Sub returns:
// 1) a - b
// 2) If there is underflow, an error
func Sub[T constraints.Unsigned](a, b T) (T, error) {
	if a < b {
		return 0, ErrUnderflow
	}
	return a - b, nil
}

// Mul64 returns:
// 1) a * b
// 2) If there is overflow, an error
func Mul64(a, b uint64) (uint64, error) {
	if b != 0 && a > math.MaxUint64/b {
		return 0, ErrOverflow
	}
	return a * b, nil
}

func AbsDiff[T constraints.Unsigned](a, b T) T {
	return Max(a, b) - Min(a, b)
}
