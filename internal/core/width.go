package core

import (
	"fmt"
	"unsafe"
)

// Unsigned is satisfied by every supported width.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Max returns the largest value representable by T.
func Max[T Unsigned]() T {
	return ^T(0)
}

// Bits returns the bit width of T.
func Bits[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// CheckedAdd returns a+b and reports false if the sum overflows T.
func CheckedAdd[T Unsigned](a, b T) (T, bool) {
	sum := a + b
	return sum, sum >= a
}

// Format writes v to f honoring the verb and flags of the caller.
// %s renders like %d so that wrappers print as plain numbers.
func Format(f fmt.State, verb rune, v any) {
	if verb == 's' {
		verb = 'd'
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), v)
}
