// Package tensile provides the runtime-support core shared by the numeric
// kernels of a tensor library: failure reporting, heap allocation, and
// kernel-pool sizing.
//
// Numeric kernels run deep inside tight loops with no room for in-band error
// values, so tensile routes every detected failure through a registry of
// handlers that never return, and every byte of kernel heap traffic through
// a single allocation facade that knows how to nudge an embedding host's
// garbage collector before giving up.
//
// # Architecture Overview
//
// The core consists of several small packages:
//
//   - fault: error and argument-check registries with per-goroutine
//     overrides over process-wide defaults
//   - mem: allocation facade (Alloc, Realloc, Free) over a pluggable host
//     allocator, with a per-goroutine reclaim hook for retry-on-failure
//   - parallel: sizing of the process-wide kernel worker pool and
//     reconciliation with a vendor math backend's own pool
//   - shape: fixed-capacity rendering of dimension lists for diagnostics
//   - mathx: scalar logarithm and exponent helpers for kernel code
//
// # Failure Model
//
// A failure dispatched through the fault package does not come back: the
// installed handler terminates the process, panics, or otherwise transfers
// control away. Call sites rely on this - code after a failed check never
// executes. The defaults print a single diagnostic line and exit; an
// embedding host can substitute its own policy per goroutine or process-wide.
//
// # Basic Usage
//
//	fault.CheckArg(len(dims) > 0, 1, "tensor must have at least one dimension")
//
//	buf := mem.Alloc(n * 4)
//	defer mem.Free(buf)
//
//	parallel.SetThreadCount(parallel.CoreCount())
//	parallel.Do(func() { kernel(buf) })
//
// # Package Structure
//
//   - fault: failure reporting registries and handler adapters
//   - mem: host allocator interface and allocation facade
//   - parallel: kernel pool control and math-backend reconciliation
//   - shape: shape-description formatting
//   - mathx: scalar math helpers
//   - cmd: command-line tools (tenstat)
//
// For more information, see the project repository at
// https://github.com/sbl8/tensile
package tensile
