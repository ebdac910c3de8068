package mem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbl8/tensile/fault"
)

// stubAllocator counts host-allocator traffic and fails the next
// failReallocs resize calls (or every Allocate when failAllocs is set).
type stubAllocator struct {
	allocs, reallocs, frees int
	failAllocs              bool
	failReallocs            int
}

func (s *stubAllocator) Allocate(size int) []byte {
	s.allocs++
	if s.failAllocs {
		return nil
	}
	return make([]byte, size)
}

func (s *stubAllocator) Reallocate(size int, b []byte) []byte {
	s.reallocs++
	if s.failReallocs > 0 {
		s.failReallocs--
		return nil
	}
	nb := make([]byte, size)
	copy(nb, b)
	return nb
}

func (s *stubAllocator) Free(b []byte) { s.frees++ }

func withHost(t *testing.T, a Allocator) {
	t.Helper()
	prev := host
	SetHostAllocator(a)
	t.Cleanup(func() { host = prev })
}

// mustDiverge runs f expecting it to report through the fault registry, and
// returns the reported message.
func mustDiverge(t *testing.T, f func()) string {
	t.Helper()
	var got string
	fault.SetThreadErrorHandler(func(msg string) { got = msg })
	defer fault.SetThreadErrorHandler(nil)

	require.Panics(t, f, "facade must diverge")
	return got
}

func TestAllocNegativeDivergesBeforeHost(t *testing.T) {
	stub := &stubAllocator{}
	withHost(t, stub)

	msg := mustDiverge(t, func() { Alloc(-1) })
	require.Contains(t, msg, "invalid memory size")
	require.Zero(t, stub.allocs, "host must not be touched for a negative size")
}

func TestAllocZero(t *testing.T) {
	stub := &stubAllocator{}
	withHost(t, stub)

	buf := Alloc(0)
	require.NotNil(t, buf)
	require.Len(t, buf, 0)
}

func TestAllocDelegates(t *testing.T) {
	stub := &stubAllocator{}
	withHost(t, stub)

	buf := Alloc(128)
	require.Len(t, buf, 128)
	require.Equal(t, 1, stub.allocs)
}

func TestAllocExhaustedDivergesWithoutRetry(t *testing.T) {
	stub := &stubAllocator{failAllocs: true}
	withHost(t, stub)

	hookCalls := 0
	SetReclaimHook(func() { hookCalls++ })
	defer SetReclaimHook(nil)

	msg := mustDiverge(t, func() { Alloc(64) })
	require.Contains(t, msg, "not enough memory")
	require.Equal(t, 1, stub.allocs)
	require.Zero(t, hookCalls, "Alloc must not consult the reclaim hook")
}

func TestReallocNilBehavesLikeAlloc(t *testing.T) {
	stub := &stubAllocator{}
	withHost(t, stub)

	buf := Realloc(nil, 64)
	require.Len(t, buf, 64)
	require.Equal(t, 1, stub.allocs)
	require.Zero(t, stub.reallocs)
}

func TestReallocZeroFrees(t *testing.T) {
	stub := &stubAllocator{}
	withHost(t, stub)

	buf := Alloc(16)
	res := Realloc(buf, 0)
	require.Nil(t, res)
	require.Equal(t, 1, stub.frees)
}

func TestReallocNegativeDiverges(t *testing.T) {
	stub := &stubAllocator{}
	withHost(t, stub)

	buf := Alloc(16)
	msg := mustDiverge(t, func() { Realloc(buf, -8) })
	require.Contains(t, msg, "invalid memory size")
	require.Zero(t, stub.reallocs)
}

func TestReallocPreservesPrefix(t *testing.T) {
	stub := &stubAllocator{}
	withHost(t, stub)

	buf := Alloc(4)
	copy(buf, []byte{1, 2, 3, 4})
	buf = Realloc(buf, 8)
	require.Len(t, buf, 8)
	require.Equal(t, []byte{1, 2, 3, 4}, buf[:4])
}

func TestReclaimHookRetrySucceeds(t *testing.T) {
	stub := &stubAllocator{failReallocs: 1}
	withHost(t, stub)

	hookCalls := 0
	SetReclaimHook(func() { hookCalls++ })
	defer SetReclaimHook(nil)

	buf := Realloc(Alloc(16), 128)
	require.Len(t, buf, 128)
	require.Equal(t, 1, hookCalls, "hook runs exactly once")
	require.Equal(t, 2, stub.reallocs, "exactly one retry")
}

func TestReclaimHookRetryFails(t *testing.T) {
	stub := &stubAllocator{failReallocs: 2}
	withHost(t, stub)

	hookCalls := 0
	SetReclaimHook(func() { hookCalls++ })
	defer SetReclaimHook(nil)

	buf := Alloc(16)
	msg := mustDiverge(t, func() { Realloc(buf, 3<<30) })
	require.Contains(t, msg, "not enough memory")
	require.Contains(t, msg, "3GB")
	require.Equal(t, 1, hookCalls, "hook must not run a second time")
	require.Equal(t, 2, stub.reallocs, "exactly one retry, no backoff loop")
}

func TestReallocNoHookDivergesImmediately(t *testing.T) {
	stub := &stubAllocator{failReallocs: 1}
	withHost(t, stub)

	buf := Alloc(16)
	msg := mustDiverge(t, func() { Realloc(buf, 64) })
	require.Contains(t, msg, "not enough memory")
	require.Equal(t, 1, stub.reallocs)
}

func TestReclaimHookGoroutineLocal(t *testing.T) {
	stub := &stubAllocator{failReallocs: 1}
	withHost(t, stub)

	hookCalls := 0
	SetReclaimHook(func() { hookCalls++ })
	defer SetReclaimHook(nil)

	// A failing resize on another goroutine must not see this goroutine's
	// hook.
	done := make(chan struct{})
	go func() {
		defer close(done)
		fault.SetThreadErrorHandler(func(msg string) {
			if !strings.Contains(msg, "not enough memory") {
				t.Errorf("unexpected failure: %s", msg)
			}
		})
		defer fault.SetThreadErrorHandler(nil)
		defer func() { _ = recover() }()
		Realloc(Alloc(16), 64)
	}()
	<-done

	require.Zero(t, hookCalls)
	require.Equal(t, 1, stub.reallocs)
}

func TestFreeNilNoop(t *testing.T) {
	stub := &stubAllocator{}
	withHost(t, stub)

	Free(nil)
	require.Zero(t, stub.frees)
}

func TestFreeDelegates(t *testing.T) {
	stub := &stubAllocator{}
	withHost(t, stub)

	Free(Alloc(8))
	require.Equal(t, 1, stub.frees)
}
