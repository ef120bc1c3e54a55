package index

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexTooLarge is the panic value of every fatal index operation:
	// construction from the sentinel, a narrowing conversion that does not
	// fit, or an addition that overflows or reaches the sentinel.
	ErrIndexTooLarge = errors.New("index too large")
)

func tooLarge(cause error) error {
	if cause == nil {
		return ErrIndexTooLarge
	}
	return fmt.Errorf("%w: %w", ErrIndexTooLarge, cause)
}

// Catch runs fn and returns the error of an index-too-large panic raised
// inside it. Any other panic propagates unchanged.
//
// Use it at boundaries that turn untrusted input into indexes:
//
//	err := index.Catch(func() { i = index.FromInt[uint16](n) })
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && errors.Is(e, ErrIndexTooLarge) {
			err = e
			return
		}
		panic(r)
	}()

	fn()
	return nil
}
