// Package cpgeom converts between geom types and the vector type of
// the chipmunk physics port github.com/jakecoffman/cp.
//
// Importing this package is what opts a consumer into the cp
// dependency; the core dim and geom packages never reference it.
// cp.Vector carries no tag, so the tag on the way in is the caller's
// statement about which space or unit the cp value lives in. All
// conversions here are exact: both sides are float64 pairs, so a round
// trip returns the identical value.
package cpgeom

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/veclab/dim"
	"github.com/veclab/dim/geom"
)

// ToCp converts a vector to a cp.Vector, dropping the tag.
func ToCp[U dim.Unit](v geom.Vec2[float64, U]) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Vec2FromCp converts a cp.Vector to a vector with the given tag.
func Vec2FromCp[U dim.Unit](v cp.Vector) geom.Vec2[float64, U] {
	return geom.Vec2[float64, U]{X: v.X, Y: v.Y}
}

// PointToCp converts a point to a cp.Vector, dropping the tag. cp does
// not distinguish positions from displacements.
func PointToCp[U dim.Unit](p geom.Point2[float64, U]) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// Point2FromCp converts a cp.Vector to a point with the given tag.
func Point2FromCp[U dim.Unit](v cp.Vector) geom.Point2[float64, U] {
	return geom.Point2[float64, U]{X: v.X, Y: v.Y}
}
