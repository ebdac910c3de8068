// Package mem is the allocation facade all tensile kernels route their heap
// traffic through.
//
// The facade itself owns no memory bookkeeping: Alloc, Realloc and Free are
// thin policy over a pluggable host Allocator. What the facade adds is the
// failure policy. Invalid sizes and exhausted allocations are reported
// through the fault package and therefore never return, and a resize that
// fails can be retried exactly once after invoking a per-goroutine reclaim
// hook - the bridge to an embedding host that manages memory with its own
// garbage collector and does not see allocations made here.
//
// The default host allocator hands out cache-aligned slices from the Go heap
// and converts exhaustion into a nil return (rather than a runtime abort) by
// honoring the process memory limit, so the reclaim/retry path has a chance
// to run.
package mem
