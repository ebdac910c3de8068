// Package gls provides minimal goroutine-local storage for the registry
// packages.
//
// The failure registries and the allocation facade keep per-goroutine
// override slots: state that one goroutine installs for itself and that no
// other goroutine ever reads or writes. Go has no thread-local storage
// primitive, so a Slot maps goroutine IDs to values through a sync.Map.
//
// Because Go also has no goroutine destructor, a slot entry lives until the
// same goroutine clears it. Callers that install a value for the duration of
// an operation should clear it before the goroutine exits.
package gls

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// ID returns the numeric ID of the calling goroutine.
//
// The ID is parsed from the runtime.Stack header line
// ("goroutine 42 [running]:"). There is no public API for it, but the header
// format has been stable across every Go release and the parse touches only
// the first line of a single-goroutine dump.
func ID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	id, _ := strconv.ParseUint(string(s), 10, 64)
	return id
}

// Slot holds one value per goroutine. The zero value is ready to use and
// reports no value for every goroutine.
type Slot[T any] struct {
	m sync.Map // goroutine ID -> T
}

// Set installs v for the calling goroutine, replacing any previous value.
func (s *Slot[T]) Set(v T) {
	s.m.Store(ID(), v)
}

// Clear removes the calling goroutine's value, if any.
func (s *Slot[T]) Clear() {
	s.m.Delete(ID())
}

// Get returns the calling goroutine's value and whether one is installed.
func (s *Slot[T]) Get() (T, bool) {
	v, ok := s.m.Load(ID())
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}
