// Package safe provides range-checked integer conversions.
package safe

import (
	"fmt"
	"math"
)

// Integer lists the integer kinds accepted by the conversions.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 narrows v to uint32, failing on negative or oversized values.
// Block heights from the archive and derived milestone heights pass through here.
func Uint32[T Integer](v T) (uint32, error) {
	if isNegative(v) || toUint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Int64 converts v to int64, failing when an unsigned value exceeds math.MaxInt64.
// Millisecond timestamps are kept as int64.
func Int64[T Integer](v T) (int64, error) {
	if !isNegative(v) && toUint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

func isNegative[T Integer](v T) bool {
	return v < 0
}

func toUint64[T Integer](v T) uint64 {
	if isNegative(v) {
		return 0
	}
	return uint64(v)
}
