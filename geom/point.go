package geom

import (
	"fmt"
	"image"

	"github.com/veclab/dim"
)

// Point2 is a 2d position. Positions and displacements are different
// types: Point2.Sub yields a Vec2, Point2.Add takes a Vec2, and adding
// two points is not expressible.
type Point2[S dim.Float, U dim.Unit] struct {
	X, Y S
}

// P2 builds a Point2 with the given tag, e.g. P2[dim.WorldSpace](1.0, 2.0).
func P2[U dim.Unit, S dim.Float](x, y S) Point2[S, U] {
	return Point2[S, U]{X: x, Y: y}
}

// Point2FromVec reinterprets a displacement from the origin as a
// position.
func Point2FromVec[S dim.Float, U dim.Unit](v Vec2[S, U]) Point2[S, U] {
	return Point2[S, U]{X: v.X, Y: v.Y}
}

// Add returns the point translated by the given displacement.
func (p Point2[S, U]) Add(v Vec2[S, U]) Point2[S, U] {
	p.X += v.X
	p.Y += v.Y
	return p
}

// Sub returns the displacement from other to p.
func (p Point2[S, U]) Sub(other Point2[S, U]) Vec2[S, U] {
	return Vec2[S, U]{X: p.X - other.X, Y: p.Y - other.Y}
}

// SubVec returns the point translated by the negated displacement.
func (p Point2[S, U]) SubVec(v Vec2[S, U]) Point2[S, U] {
	p.X -= v.X
	p.Y -= v.Y
	return p
}

// Vec reinterprets the position as a displacement from the origin.
func (p Point2[S, U]) Vec() Vec2[S, U] {
	return Vec2[S, U]{X: p.X, Y: p.Y}
}

// DistanceTo returns the distance between the two points as a quantity
// carrying the points' tag.
func (p Point2[S, U]) DistanceTo(other Point2[S, U]) dim.Quantity[S, U] {
	return p.Sub(other).Magnitude()
}

func (p Point2[S, U]) Lerp(other Point2[S, U], alpha S) Point2[S, U] {
	return Point2[S, U]{
		X: p.X*(1-alpha) + other.X*alpha,
		Y: p.Y*(1-alpha) + other.Y*alpha,
	}
}

func (p Point2[S, U]) ApproxEq(other Point2[S, U], eps S) bool {
	return p.Vec().ApproxEq(other.Vec(), eps)
}

func (p Point2[S, U]) ToImagePoint() image.Point {
	return image.Point{X: roundToInt(p.X), Y: roundToInt(p.Y)}
}

func (p Point2[S, U]) String() string {
	if symbol := symbolOf[U](); symbol != "" {
		return fmt.Sprintf("point(x=%v, y=%v, unit=%s)", p.X, p.Y, symbol)
	}
	return fmt.Sprintf("point(x=%v, y=%v)", p.X, p.Y)
}

// Point3 is a 3d position, the Vec3 counterpart of Point2.
type Point3[S dim.Float, U dim.Unit] struct {
	X, Y, Z S
}

// P3 builds a Point3 with the given tag.
func P3[U dim.Unit, S dim.Float](x, y, z S) Point3[S, U] {
	return Point3[S, U]{X: x, Y: y, Z: z}
}

// Point3FromVec reinterprets a displacement from the origin as a
// position.
func Point3FromVec[S dim.Float, U dim.Unit](v Vec3[S, U]) Point3[S, U] {
	return Point3[S, U]{X: v.X, Y: v.Y, Z: v.Z}
}

// Add returns the point translated by the given displacement.
func (p Point3[S, U]) Add(v Vec3[S, U]) Point3[S, U] {
	p.X += v.X
	p.Y += v.Y
	p.Z += v.Z
	return p
}

// Sub returns the displacement from other to p.
func (p Point3[S, U]) Sub(other Point3[S, U]) Vec3[S, U] {
	return Vec3[S, U]{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// SubVec returns the point translated by the negated displacement.
func (p Point3[S, U]) SubVec(v Vec3[S, U]) Point3[S, U] {
	p.X -= v.X
	p.Y -= v.Y
	p.Z -= v.Z
	return p
}

// Vec reinterprets the position as a displacement from the origin.
func (p Point3[S, U]) Vec() Vec3[S, U] {
	return Vec3[S, U]{X: p.X, Y: p.Y, Z: p.Z}
}

// DistanceTo returns the distance between the two points as a quantity
// carrying the points' tag.
func (p Point3[S, U]) DistanceTo(other Point3[S, U]) dim.Quantity[S, U] {
	return p.Sub(other).Magnitude()
}

func (p Point3[S, U]) Lerp(other Point3[S, U], alpha S) Point3[S, U] {
	return Point3[S, U]{
		X: p.X*(1-alpha) + other.X*alpha,
		Y: p.Y*(1-alpha) + other.Y*alpha,
		Z: p.Z*(1-alpha) + other.Z*alpha,
	}
}

func (p Point3[S, U]) ApproxEq(other Point3[S, U], eps S) bool {
	return p.Vec().ApproxEq(other.Vec(), eps)
}

// XY drops the z component.
func (p Point3[S, U]) XY() Point2[S, U] {
	return Point2[S, U]{X: p.X, Y: p.Y}
}

func (p Point3[S, U]) String() string {
	if symbol := symbolOf[U](); symbol != "" {
		return fmt.Sprintf("point(x=%v, y=%v, z=%v, unit=%s)", p.X, p.Y, p.Z, symbol)
	}
	return fmt.Sprintf("point(x=%v, y=%v, z=%v)", p.X, p.Y, p.Z)
}
