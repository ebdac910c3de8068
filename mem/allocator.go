package mem

import (
	"runtime"
	"runtime/debug"
)

// Allocator is the host heap allocator the facade delegates to. Exhaustion
// is signalled by a nil return from Allocate or Reallocate; implementations
// must not let a panic escape across this boundary. Sizes are always
// non-negative by the time they reach an Allocator.
type Allocator interface {
	// Allocate returns a zeroed region of exactly size bytes, or nil.
	Allocate(size int) []byte
	// Reallocate resizes b to size bytes, preserving the common prefix.
	// It returns nil on failure, leaving b untouched.
	Reallocate(size int, b []byte) []byte
	// Free releases b. Implementations accept slices they did not hand out
	// only if their documentation says so; GoAllocator accepts anything.
	Free(b []byte)
}

// limitCheckMin is the allocation size above which GoAllocator consults the
// process memory limit. Reading runtime.MemStats stops the world, so small
// requests skip the check.
const limitCheckMin = 1 << 16

// GoAllocator allocates cache-aligned slices from the Go heap and lets the
// collector reclaim them, so Free is a no-op.
//
// Large requests are checked against the process memory limit
// (debug.SetMemoryLimit): a request that would cross the limit returns nil
// instead of driving the runtime into an out-of-memory abort, which is what
// lets the facade's reclaim-hook retry run at all. The check races with
// other allocators in the process, so it is a guard against unreasonable
// requests, not a hard guarantee.
type GoAllocator struct{}

// NewGoAllocator returns the default host allocator.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

func (*GoAllocator) Allocate(size int) (buf []byte) {
	if size >= limitCheckMin && int64(size) > headroom() {
		return nil
	}
	defer func() {
		// e.g. "runtime error: makeslice: len out of range"
		if recover() != nil {
			buf = nil
		}
	}()
	return alignedBytes(size)
}

func (a *GoAllocator) Reallocate(size int, b []byte) []byte {
	if size <= cap(b) {
		return b[:size]
	}
	nb := a.Allocate(size)
	if nb == nil {
		return nil
	}
	copy(nb, b)
	return nb
}

func (*GoAllocator) Free(b []byte) {}

// headroom estimates the bytes left under the process memory limit. With no
// limit set, debug.SetMemoryLimit(-1) reports math.MaxInt64 and every
// request passes.
func headroom() int64 {
	limit := debug.SetMemoryLimit(-1)
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return limit - int64(stats.Sys-stats.HeapReleased)
}
