// Package fault implements the failure-reporting registries used by every
// operation in the tensile core and the kernels above it.
//
// Kernels have no in-band error channel: a precondition that fails deep
// inside a loop is handed to a handler that never returns. Two registries
// exist, one for generic runtime failures (Errorf, Assertf) and one for
// invalid arguments (CheckArg), so that an embedding host can attach
// different policies - exit codes, log channels, non-local jumps - to
// programmer-error-shaped failures versus runtime-condition failures.
//
// Each registry is two-tiered: a process-wide default handler plus an
// optional override private to each goroutine. Dispatch consults the calling
// goroutine's override first and falls back to the default. The built-in
// defaults write one diagnostic line to stderr and exit with status 1.
//
// The default slots are plain package variables, written by the Set*
// functions with last-write-wins semantics and no locking. The intended
// pattern is single-threaded configuration at startup followed by read-only
// use on the failure paths; concurrent reconfiguration is not supported.
//
// # Divergence
//
// Every dispatch is a one-way transfer: the handler must terminate the
// process, panic, or otherwise move control elsewhere. If a handler does
// return, the dispatcher panics with the formatted message so that no call
// site ever observes a failed check returning normally.
package fault
