// Package geom provides the geometric value types of the library:
// vectors, points, directions, rectangles, lines, cubic bezier curves
// and affine transforms.
//
// Every type is generic over a scalar type and a dimension tag from
// the dim package, so a Vec3[float64, dim.Meters] and a
// Vec3[float64, dim.Feet] are different types and never mix without an
// explicit conversion. Points and vectors are kept apart the same way:
// subtracting two points yields a vector, adding a vector to a point
// yields a point, and adding two points is not expressible.
//
// All types are plain immutable values with the memory layout of their
// component fields, nothing else.
package geom
