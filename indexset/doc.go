// Package indexset provides a compressed set of 32-bit indexes.
//
// Set is backed by a Roaring bitmap. Its universe is every value of
// index.U32, which is [0, 2^32-2]: the reserved maximum can never be
// inserted, so Min and Max always return a valid index.Option. The zero
// index.U32 carries the reserved bit pattern; Add, Remove and Contains panic
// with index.ErrIndexTooLarge when given one.
//
// A Set is not safe for concurrent mutation.
package indexset
