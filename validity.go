package mds

import "sync/atomic"

// validityState is a monotone three-state cache: unchecked -> valid or
// unchecked -> invalid, never the reverse. It is not a lock: concurrent
// resolvers may redundantly recompute the underlying check, which is
// itself idempotent, so a race just does the same work twice.
type validityState int32

const (
	validityUnchecked validityState = iota
	validityValid
	validityInvalid
)

// validityCache is embedded by record types and field descriptors.
type validityCache struct {
	state atomic.Int32
}

// check returns the cached validity, computing and caching it via fn the
// first time. fn returns true for valid, false for invalid.
func (c *validityCache) check(fn func() bool) bool {
	switch validityState(c.state.Load()) {
	case validityValid:
		return true
	case validityInvalid:
		return false
	}
	ok := fn()
	if ok {
		c.state.CompareAndSwap(int32(validityUnchecked), int32(validityValid))
		return true
	}
	// Once invalid, stay invalid: a CAS race here is harmless since both
	// competing writers would store the same value.
	c.state.Store(int32(validityInvalid))
	return false
}
