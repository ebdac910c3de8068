package mathx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbl8/tensile/mathx"
)

func TestLogarithms(t *testing.T) {
	t.Parallel()
	require.InDelta(t, 3.0, mathx.Log10(1000), 1e-12)
	require.InDelta(t, 10.0, mathx.Log2(1024), 1e-12)
	require.Equal(t, math.Inf(-1), mathx.Log10(0))
	require.True(t, math.IsNaN(mathx.Log2(-1)))
}

func TestLog1pNearZero(t *testing.T) {
	t.Parallel()
	// Near zero log1p(x) ~ x; the naive log(1+x) would collapse to 0 here.
	const x = 1e-15
	require.InEpsilon(t, x, mathx.Log1p(x), 1e-9)
	require.Zero(t, mathx.Log1p(0))
	require.Equal(t, math.Inf(-1), mathx.Log1p(-1))
}

func TestExpm1NearZero(t *testing.T) {
	t.Parallel()
	const x = 1e-15
	require.InEpsilon(t, x, mathx.Expm1(x), 1e-9)
	require.Zero(t, mathx.Expm1(0))
	require.InDelta(t, math.E-1, mathx.Expm1(1), 1e-12)
}
