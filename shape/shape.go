// Package shape renders tensor dimension lists for diagnostic printing.
package shape

import "strconv"

// BuffLen is the fixed capacity of a Buff in bytes, truncation marker
// included.
const BuffLen = 64

// Buff is a fixed-capacity textual shape description. It is a self-contained
// value with no backing allocation, so callers may copy and retain it
// freely.
type Buff struct {
	str [BuffLen]byte
	n   int
}

// String returns the rendered description.
func (b Buff) String() string {
	return string(b.str[:b.n])
}

// Describe renders sizes as "[d0 x d1 x ... x dn-1]". When the full
// rendering would exceed BuffLen, the tail is overwritten with "...]" so the
// result is always a closed description of at most BuffLen bytes.
func Describe(sizes []int64) Buff {
	var b Buff
	b.append("[")
	for i, d := range sizes {
		if b.n >= BuffLen {
			break
		}
		b.append(strconv.FormatInt(d, 10))
		if i < len(sizes)-1 {
			b.append(" x ")
		}
	}
	if b.n < BuffLen {
		b.append("]")
	} else {
		copy(b.str[BuffLen-4:], "...]")
		b.n = BuffLen
	}
	return b
}

// append copies s into the buffer, silently clipping at capacity. A clipped
// write leaves n == BuffLen, which Describe's closing step detects.
func (b *Buff) append(s string) {
	b.n += copy(b.str[b.n:], s)
}
