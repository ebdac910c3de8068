// Command tenstat prints runtime diagnostics for the tensile support core:
// core and pool counts, a sample shape description, and allocation and pool
// round-trip timings.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/sbl8/tensile/mem"
	"github.com/sbl8/tensile/parallel"
	"github.com/sbl8/tensile/shape"
)

var (
	threads = flag.Int("threads", 0, "Kernel pool size (0 = number of cores)")
	size    = flag.Int("size", 1<<20, "Allocation size in bytes for the heap probe")
	tasks   = flag.Int("tasks", 64, "Number of tasks for the pool probe")
)

func main() {
	flag.Parse()

	n := *threads
	if n <= 0 {
		n = parallel.CoreCount()
	}
	parallel.SetThreadCount(n)

	fmt.Printf("Tensile Runtime Diagnostics\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Cores: %d\n", parallel.CoreCount())
	fmt.Printf("Kernel Pool: %d workers\n", parallel.ThreadCount())
	fmt.Printf("Sample Shape: %s\n", shape.Describe([]int64{3, 4, 5}))
	fmt.Printf("\n")

	start := time.Now()
	buf := mem.Alloc(*size)
	buf = mem.Realloc(buf, *size*2)
	mem.Free(buf)
	fmt.Printf("Heap probe (alloc %d, realloc %d): %v\n", *size, *size*2, time.Since(start))

	start = time.Now()
	done := 0
	for i := 0; i < *tasks; i++ {
		parallel.Do(func() { done++ })
	}
	fmt.Printf("Pool probe (%d tasks): %v\n", done, time.Since(start))
}
