// Package parallel controls the size of the process-wide worker pool that
// executes numeric kernels, and keeps it in step with a vendor math
// backend's own pool when one is registered.
//
// Two independently sized pools that call into each other resize each other
// on every vendor/non-vendor kernel boundary, which costs throughput and can
// leak workers under some runtimes. SetThreadCount therefore sizes both and
// disables the backend's dynamic adjustment, and Reconcile forces the kernel
// pool back to the backend's count when the backend was sized elsewhere.
package parallel

import (
	"runtime"
	"sync"

	"github.com/Jeffail/tunny"
	"github.com/shirou/gopsutil/cpu"
)

// MathBackend is a vendor math library (a BLAS, typically) that maintains
// its own thread pool.
type MathBackend interface {
	// ThreadCount reports the backend pool's current size.
	ThreadCount() int
	// SetThreadCount resizes the backend pool.
	SetThreadCount(n int)
	// SetDynamic toggles the backend's automatic thread-count adjustment.
	SetDynamic(enabled bool)
}

var (
	mu      sync.Mutex
	pool    *tunny.Pool
	backend MathBackend
)

// kernelPool returns the process-wide pool, creating it at NumCPU size on
// first use. Pool workers run submitted tasks to completion; tasks are
// plain closures with no payload marshalling.
func kernelPool() *tunny.Pool {
	mu.Lock()
	defer mu.Unlock()
	if pool == nil {
		pool = tunny.NewFunc(runtime.NumCPU(), func(payload interface{}) interface{} {
			payload.(func())()
			return nil
		})
	}
	return pool
}

// RegisterBackend makes b the vendor math backend that SetThreadCount and
// Reconcile coordinate with. Passing nil unregisters it.
func RegisterBackend(b MathBackend) {
	mu.Lock()
	backend = b
	mu.Unlock()
}

// SetThreadCount resizes the kernel pool to n workers, clamped to at least
// one. A registered math backend is resized to match and its dynamic
// adjustment disabled, so the two pools stop resizing each other.
func SetThreadCount(n int) {
	if n < 1 {
		n = 1
	}
	kernelPool().SetSize(n)

	mu.Lock()
	b := backend
	mu.Unlock()
	if b != nil {
		b.SetThreadCount(n)
		b.SetDynamic(false)
	}
}

// ThreadCount reports the kernel pool's size, or 1 before the pool exists.
func ThreadCount() int {
	mu.Lock()
	p := pool
	mu.Unlock()
	if p == nil {
		return 1
	}
	return p.GetSize()
}

// Reconcile forces the kernel pool's size to match a registered math
// backend's thread count. Call it after the backend has been sized by code
// that does not go through SetThreadCount. Without a backend it is a no-op.
func Reconcile() {
	mu.Lock()
	b := backend
	mu.Unlock()
	if b == nil {
		return
	}
	if n := b.ThreadCount(); n > 0 {
		kernelPool().SetSize(n)
	}
}

// CoreCount reports the number of logical processor cores, never less
// than 1.
func CoreCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// Do runs task on the kernel pool and waits for it to finish.
func Do(task func()) {
	kernelPool().Process(task)
}
