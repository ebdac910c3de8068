package mem

import "unsafe"

// CacheLineSize is the alignment boundary for buffers handed to numeric
// kernels. 64 bytes covers current amd64 and arm64 parts.
const CacheLineSize = 64

// alignedBytes allocates a byte slice whose backing array starts on a cache
// line boundary, so SIMD kernels never straddle a line on their first load.
func alignedBytes(size int) []byte {
	if size == 0 {
		return []byte{}
	}
	// Over-allocate by one line, then slice forward to the boundary.
	buf := make([]byte, size+CacheLineSize-1)

	ptr := uintptr(unsafe.Pointer(&buf[0]))
	offset := uintptr(0)
	if mod := ptr % CacheLineSize; mod != 0 {
		offset = CacheLineSize - mod
	}

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}
