// Package mathx provides the scalar logarithm and exponent helpers shared by
// the numeric kernels.
//
// The helpers give kernel code one spelling for the accuracy-sensitive
// cases: Log1p and Expm1 stay precise when x is near zero, where the naive
// log(1+x) and exp(x)-1 cancel most of their significant bits.
package mathx

import "math"

// Log10 returns the base-10 logarithm of x.
func Log10(x float64) float64 { return math.Log10(x) }

// Log1p returns log(1 + x), accurate even when x is near zero.
func Log1p(x float64) float64 { return math.Log1p(x) }

// Log2 returns the base-2 logarithm of x.
func Log2(x float64) float64 { return math.Log2(x) }

// Expm1 returns e**x - 1, accurate even when x is near zero.
func Expm1(x float64) float64 { return math.Expm1(x) }
