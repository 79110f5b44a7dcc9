package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veclab/dim"
)

func TestVec4_Arithmetic(t *testing.T) {
	a := V4[dim.Unitless](1.0, 2.0, 3.0, 4.0)
	b := V4[dim.Unitless](4.0, 2.0, 2.0, 8.0)

	require.Equal(t, V4[dim.Unitless](5.0, 4.0, 5.0, 12.0), a.Add(b))
	require.Equal(t, V4[dim.Unitless](-3.0, 0.0, 1.0, -4.0), a.Sub(b))
	require.Equal(t, V4[dim.Unitless](-1.0, -2.0, -3.0, -4.0), a.Neg())
	require.Equal(t, V4[dim.Unitless](2.0, 4.0, 6.0, 8.0), a.Mul(2))
	require.Equal(t, V4[dim.Unitless](0.5, 1.0, 1.5, 2.0), a.Div(2))
	require.Equal(t, V4[dim.Unitless](4.0, 4.0, 6.0, 32.0), a.MulEach(b))
	require.Equal(t, V4[dim.Unitless](0.25, 1.0, 1.5, 0.5), a.DivEach(b))
	require.Equal(t, 46.0, a.Dot(b))
}

func TestVec4_ZeroOne(t *testing.T) {
	require.Equal(t, V4[dim.Meters](0.0, 0.0, 0.0, 0.0), Zero4[dim.Meters, float64]())
	require.Equal(t, V4[dim.Meters](1.0, 1.0, 1.0, 1.0), One4[dim.Meters, float64]())
	require.Equal(t, One4[dim.Meters, float64](), Splat4[dim.Meters](1.0))
}

func TestVec4_Length(t *testing.T) {
	v := V4[dim.Meters](2.0, 3.0, 6.0, 0.0)

	require.Equal(t, 7.0, v.Length())
	require.Equal(t, 49.0, v.LengthSqr())
	require.Equal(t, dim.Q[dim.Meters](7.0), v.Magnitude())

	require.Equal(t, 7.0, v.DistanceTo(Zero4[dim.Meters, float64]()))
	require.Equal(t, 49.0, v.DistanceToSqr(Zero4[dim.Meters, float64]()))
}

func TestVec4_Normalize(t *testing.T) {
	d, err := V4[dim.Meters](0.0, 0.0, 0.0, 5.0).Normalize()
	require.NoError(t, err)
	require.Equal(t, V4[dim.Meters](0.0, 0.0, 0.0, 1.0), d.Vec())

	_, err = V4[dim.Meters](0.0, 0.0, 0.0, 0.0).Normalize()
	require.ErrorIs(t, err, dim.ErrDegenerateInput)

	_, err = V4[dim.Meters](1.0, math.Inf(1), 0.0, 0.0).Normalize()
	require.ErrorIs(t, err, dim.ErrDegenerateInput)
}

func TestVec4_NormalizeUnchecked(t *testing.T) {
	d := V4[dim.Meters](3.0, 0.0, 4.0, 0.0).NormalizeUnchecked()
	require.InDelta(t, 1.0, d.Vec().Length(), 1e-12)

	// the unchecked variant lets NaN through on zero input
	d = V4[dim.Meters](0.0, 0.0, 0.0, 0.0).NormalizeUnchecked()
	require.True(t, math.IsNaN(d.X()))
}

func TestVec4_Lerp(t *testing.T) {
	a := V4[dim.Unitless](1.0, 2.0, 3.0, 4.0)
	b := V4[dim.Unitless](4.0, 3.0, 2.0, 1.0)

	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
	require.Equal(t, a.Lerp(b, 0.5), b.Lerp(a, 0.5))
}

func TestVec4_MinMaxClamp(t *testing.T) {
	a := V4[world](1.0, 5.0, -2.0, 4.0)
	b := V4[world](3.0, 2.0, 0.0, 4.0)

	require.Equal(t, V4[world](1.0, 2.0, -2.0, 4.0), a.Min(b))
	require.Equal(t, V4[world](3.0, 5.0, 0.0, 4.0), a.Max(b))

	lo := Zero4[world, float64]()
	hi := Splat4[world](2.0)
	require.Equal(t, V4[world](1.0, 2.0, 0.0, 2.0), a.Clamp(lo, hi))
}

func TestVec4_Components(t *testing.T) {
	v := V4[dim.Meters](3.0, -1.0, 7.0, 0.0)

	idx, val := v.MinComponent()
	require.Equal(t, 1, idx)
	require.Equal(t, -1.0, val)

	idx, val = v.MaxComponent()
	require.Equal(t, 2, idx)
	require.Equal(t, 7.0, val)

	require.Equal(t, V4[dim.Meters](3.0, 1.0, 7.0, 0.0), v.Abs())
}

func TestVec4_XYZ(t *testing.T) {
	require.Equal(t, V3[dim.Unitless](1.0, 2.0, 3.0), V4[dim.Unitless](1.0, 2.0, 3.0, 4.0).XYZ())
}

func TestDir4(t *testing.T) {
	d, err := V4[dim.Meters](0.0, 0.0, 0.0, 2.0).Normalize()
	require.NoError(t, err)

	require.Equal(t, V4[dim.Meters](0.0, 0.0, 0.0, 1.0), d.Vec())
	require.Equal(t, 0.0, d.X())
	require.Equal(t, 1.0, d.W())
	require.Equal(t, V4[dim.Meters](0.0, 0.0, 0.0, 3.0), d.Scale(dim.Q[dim.Meters](3.0)))
	require.Equal(t, 1.0, d.Dot(d))
	require.Equal(t, -1.0, d.Dot(d.Neg()))
	require.True(t, d.Neg().Neg().ApproxEq(d, 0))
	require.Equal(t, "dir(x=0, y=0, z=0, w=1)", d.String())
}
