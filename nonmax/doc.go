// Package nonmax provides unsigned integers that can hold every value of
// their width except the maximum.
//
// A NonMax[T] stores its value plus one, so the all-zero bit pattern is never
// used by a live value. Option[T] claims that pattern for "absent", which
// makes an optional NonMax exactly as large as a bare T:
//
//	o := nonmax.New[uint8](41)   // Option[uint8], present
//	n, ok := o.Get()             // n.Get() == 41, ok == true
//	nonmax.New[uint8](255).IsNone() // true: 255 is not representable
//
// The stored offset is never observable. Ordering, equality, formatting and
// logging all operate on the decoded value.
//
// # Widths
//
// Aliases exist for every supported width: U8, U16, U32, U64 and the
// platform-native Uint, with matching Option8 … OptionUint.
//
// # Zero values
//
// The zero Option is None. The zero NonMax is the absent bit pattern and is
// not a valid value; obtain instances from New, FromRaw or MaxValue.
package nonmax
