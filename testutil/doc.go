// Package testutil provides testing utilities for the index and nonmax
// packages.
//
// This package is intended for use in tests and benchmarks only.
//
// # Sampling
//
//	rng := testutil.NewRNG(seed)
//	vals := testutil.Sample[uint32](rng, 1000) // includes 0, 1 and Max-1
//
// # Fatal paths
//
//	testutil.RequireTooLarge(t, func() { index.New[uint8](255) })
package testutil
