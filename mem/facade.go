package mem

import (
	"github.com/sbl8/tensile/fault"
	"github.com/sbl8/tensile/internal/gls"
)

var host Allocator = NewGoAllocator()

// SetHostAllocator replaces the host allocator behind the facade. Passing
// nil restores the default GoAllocator. Like the fault defaults, this is
// startup-time configuration: last write wins, no locking.
func SetHostAllocator(a Allocator) {
	if a == nil {
		a = NewGoAllocator()
	}
	host = a
}

var reclaimHook gls.Slot[func()]

// SetReclaimHook installs a callback, private to the calling goroutine, that
// nudges an external memory manager to free memory. The facade invokes it at
// most once per failed Realloc before retrying; an embedding host may also
// call it on its own soft-watermark convention, which is outside this
// package. A new hook replaces the previous one, never chains; nil clears.
func SetReclaimHook(fn func()) {
	if fn == nil {
		reclaimHook.Clear()
		return
	}
	reclaimHook.Set(fn)
}

// Alloc returns a region of exactly size bytes from the host allocator.
// A negative size or an exhausted host diverges through the fault registry,
// so a normal return always carries a usable region.
func Alloc(size int) []byte {
	if size < 0 {
		fault.Errorf("invalid memory size %d -- maybe an overflow?", size)
	}
	buf := host.Allocate(size)
	if buf == nil && size > 0 {
		fault.Errorf("not enough memory: you tried to allocate %dGB", size>>30)
	}
	return buf
}

// Realloc resizes buf to size bytes. A nil buf behaves exactly like
// Alloc(size). A zero size releases buf and returns nil - the defined
// free-via-realloc path, not an error. On host failure the goroutine's
// reclaim hook, if any, is invoked exactly once and the resize retried
// exactly once; a second failure diverges with an out-of-memory report.
func Realloc(buf []byte, size int) []byte {
	if buf == nil {
		return Alloc(size)
	}
	if size == 0 {
		Free(buf)
		return nil
	}
	if size < 0 {
		fault.Errorf("invalid memory size %d -- maybe an overflow?", size)
	}

	nb := host.Reallocate(size, buf)
	if nb == nil {
		if hook, ok := reclaimHook.Get(); ok {
			hook()
			nb = host.Reallocate(size, buf)
		}
	}
	if nb == nil {
		fault.Errorf("not enough memory: you tried to reallocate %dGB", size>>30)
	}
	return nb
}

// Free releases buf to the host allocator. A nil buf is a no-op.
func Free(buf []byte) {
	if buf == nil {
		return
	}
	host.Free(buf)
}
