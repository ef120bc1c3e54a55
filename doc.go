// Package index provides fixed-width index types whose optional form costs no
// extra storage.
//
// An Index[T] holds a position in [0, Max(T)-1]. The maximum value of T is
// reserved: it is the bit pattern Option[T] uses for "absent", so
// unsafe.Sizeof(index.Option[uint32]{}) == 4.
//
// # Quick Start
//
//	i := index.New[uint32](10)
//	j := i.Add(5)              // 15
//	j.AddAssign(1)             // 16
//	n := j.Int()               // 16, as a native int
//
//	var slot index.Option[uint32] // None
//	slot = index.Some(j)
//	if k, ok := slot.Get(); ok {
//	    fmt.Println(k)         // 16
//	}
//
// # Failure Model
//
// Indexes are assumed to always denote valid positions. Reaching the reserved
// value is a logic error in the caller, so New, FromInt, FromUint, Int, Uint,
// Add and AddAssign panic with ErrIndexTooLarge instead of returning an error.
// Code that must tolerate out-of-range input uses TryNew (or the nonmax
// package), or wraps a boundary with Catch.
//
// Add checks a single addition on the stored representation: overflow of the
// width and reaching the reserved value are the same condition.
//
// # Widths
//
//	U8, U16, U32, U64  fixed widths
//	Uint               platform-native width
//
// Every type is an immutable value with no indirection. Values are
// comparable with ==, usable as map keys, and safe to share between
// goroutines.
package index
