package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veclab/dim"
)

func straightBezier() CubicBezier[float64, dim.Meters] {
	// control points on a straight line, so the curve is the segment
	// from (0, 0) to (9, 0)
	return CubicBezier[float64, dim.Meters]{
		P0: P2[dim.Meters](0.0, 0.0),
		P1: P2[dim.Meters](3.0, 0.0),
		P2: P2[dim.Meters](6.0, 0.0),
		P3: P2[dim.Meters](9.0, 0.0),
	}
}

func TestCubicBezier_Endpoints(t *testing.T) {
	c := CubicBezier[float64, dim.Meters]{
		P0: P2[dim.Meters](0.0, 0.0),
		P1: P2[dim.Meters](1.0, 2.0),
		P2: P2[dim.Meters](3.0, 2.0),
		P3: P2[dim.Meters](4.0, 0.0),
	}

	require.Equal(t, c.P0, c.PointAt(0))
	require.Equal(t, c.P3, c.PointAt(1))
}

func TestCubicBezier_Midpoint(t *testing.T) {
	mid := straightBezier().PointAt(0.5)
	require.InDelta(t, 4.5, mid.X, 1e-12)
	require.InDelta(t, 0.0, mid.Y, 1e-12)
}

func TestCubicBezier_Derivative(t *testing.T) {
	c := straightBezier()

	// uniform parameterization of a straight segment has constant speed
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		d := c.Derivative(tt)
		require.InDelta(t, 9.0, d.X, 1e-12)
		require.InDelta(t, 0.0, d.Y, 1e-12)
	}
}

func TestCubicBezier_ArcLength(t *testing.T) {
	c := straightBezier()

	length := c.ArcLength(1, 64)
	require.InDelta(t, 9.0, length.Value(), 1e-6)

	half := c.ArcLength(0.5, 64)
	require.InDelta(t, 4.5, half.Value(), 1e-6)

	// curved: arc length exceeds the chord but not the control polygon
	curved := CubicBezier[float64, dim.Meters]{
		P0: P2[dim.Meters](0.0, 0.0),
		P1: P2[dim.Meters](0.0, 3.0),
		P2: P2[dim.Meters](3.0, 3.0),
		P3: P2[dim.Meters](3.0, 0.0),
	}
	arc := curved.ArcLength(1, 128).Value()
	require.Greater(t, arc, 3.0)
	require.Less(t, arc, 9.0)
}

func TestCubicBezier_TForLength(t *testing.T) {
	c := straightBezier()

	tMid := c.TForLength(dim.Q[dim.Meters](4.5), 64)
	require.InDelta(t, 0.5, tMid, 1e-4)

	require.InDelta(t, 0.0, c.TForLength(dim.Q[dim.Meters](-1.0), 64), 1e-6)
	require.InDelta(t, 1.0, c.TForLength(dim.Q[dim.Meters](100.0), 64), 1e-6)
}
