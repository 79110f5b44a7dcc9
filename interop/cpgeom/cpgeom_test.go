package cpgeom

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/stretchr/testify/require"

	"github.com/veclab/dim"
	"github.com/veclab/dim/geom"
)

func TestVec2RoundTrip(t *testing.T) {
	v := geom.V2[dim.WorldSpace](1.25, -7.5)

	cpv := ToCp(v)
	require.Equal(t, cp.Vector{X: 1.25, Y: -7.5}, cpv)
	require.Equal(t, v, Vec2FromCp[dim.WorldSpace](cpv))
}

func TestPoint2RoundTrip(t *testing.T) {
	p := geom.P2[dim.WorldSpace](3.0, 4.0)

	cpv := PointToCp(p)
	require.Equal(t, cp.Vector{X: 3, Y: 4}, cpv)
	require.Equal(t, p, Point2FromCp[dim.WorldSpace](cpv))
}

func TestCpMathMatches(t *testing.T) {
	a := geom.V2[dim.WorldSpace](1.0, 2.0)
	b := geom.V2[dim.WorldSpace](-3.0, 5.0)

	// adding on either side of the boundary gives the same result
	sum := Vec2FromCp[dim.WorldSpace](ToCp(a).Add(ToCp(b)))
	require.Equal(t, a.Add(b), sum)

	require.Equal(t, a.Dot(b), ToCp(a).Dot(ToCp(b)))
	require.Equal(t, a.Length(), ToCp(a).Length())
}
