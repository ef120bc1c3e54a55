package conv

import (
	"fmt"
	"math"

	"github.com/hupe1980/index/internal/core"
)

// IntTo converts int to the width T safely.
func IntTo[T core.Unsigned](v int) (T, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T (negative)", v, T(0))
	}
	return UintTo[T](uint(v))
}

// UintTo converts uint to the width T safely.
func UintTo[T core.Unsigned](v uint) (T, error) {
	// On 64-bit systems uint can exceed every width below 64 bits.
	if uint64(v) > uint64(core.Max[T]()) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T (too large)", v, T(0))
	}
	return T(v), nil
}

// ToInt converts a value of width T to int safely.
func ToInt[T core.Unsigned](v T) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// ToUint converts a value of width T to uint safely.
// Only 64-bit values on 32-bit platforms can fail.
func ToUint[T core.Unsigned](v T) (uint, error) {
	if uint64(v) > uint64(math.MaxUint) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint (too large)", v)
	}
	return uint(v), nil
}
