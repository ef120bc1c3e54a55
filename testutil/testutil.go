package testutil

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/hupe1980/index"
	"github.com/hupe1980/index/internal/core"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Sample returns n values of width T in the representable range [0, Max-1].
// The boundary values 0, 1 and Max-1 always come first.
func Sample[T core.Unsigned](r *RNG, n int) []T {
	top := core.Max[T]() - 1
	out := []T{0, 1, top}
	for len(out) < n {
		v := T(r.Uint64())
		if v > top {
			v = top
		}
		out = append(out, v)
	}
	return out[:max(n, 0)]
}

// RequireTooLarge asserts that fn panics with an error matching
// index.ErrIndexTooLarge.
func RequireTooLarge(t testing.TB, fn func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	if recovered == nil {
		t.Fatalf("expected panic with %q, got none", index.ErrIndexTooLarge)
	}
	err, ok := recovered.(error)
	if !ok {
		t.Fatalf("expected error panic, got %T: %v", recovered, recovered)
	}
	if !errors.Is(err, index.ErrIndexTooLarge) {
		t.Fatalf("expected %q, got %q", index.ErrIndexTooLarge, err)
	}
}
