package geom

import (
	"fmt"

	"github.com/veclab/dim"
)

// Dir2 is a unit length direction. It is a different type from Vec2 on
// purpose: a direction carries no magnitude, so scaling or adding it
// like a vector makes no sense. Obtain one through Vec2.Normalize and
// turn it back into a vector with Scale or Vec.
type Dir2[S dim.Float, U dim.Unit] struct {
	v Vec2[S, U]
}

// Dir2X returns the direction of the positive x axis.
func Dir2X[U dim.Unit, S dim.Float]() Dir2[S, U] {
	return Dir2[S, U]{v: Vec2[S, U]{X: 1}}
}

// Dir2Y returns the direction of the positive y axis.
func Dir2Y[U dim.Unit, S dim.Float]() Dir2[S, U] {
	return Dir2[S, U]{v: Vec2[S, U]{Y: 1}}
}

// Dir2FromAngle returns the direction at the given angle measured
// counter-clockwise from the positive x axis.
func Dir2FromAngle[U dim.Unit, S dim.Float](angle dim.Angle[S, dim.Radians]) Dir2[S, U] {
	sin, cos := angle.SinCos()
	return Dir2[S, U]{v: Vec2[S, U]{X: cos, Y: sin}}
}

// Vec returns the direction as a unit length vector.
func (d Dir2[S, U]) Vec() Vec2[S, U] {
	return d.v
}

func (d Dir2[S, U]) X() S { return d.v.X }
func (d Dir2[S, U]) Y() S { return d.v.Y }

// Scale returns a vector pointing in this direction with the given
// magnitude.
func (d Dir2[S, U]) Scale(magnitude dim.Quantity[S, U]) Vec2[S, U] {
	return d.v.Mul(magnitude.Value())
}

func (d Dir2[S, U]) Dot(other Dir2[S, U]) S {
	return d.v.Dot(other.v)
}

func (d Dir2[S, U]) Neg() Dir2[S, U] {
	d.v = d.v.Neg()
	return d
}

// Rotate returns the direction rotated counter-clockwise by the given
// angle. Rotation preserves unit length.
func (d Dir2[S, U]) Rotate(angle dim.Angle[S, dim.Radians]) Dir2[S, U] {
	d.v = d.v.Rotate(angle)
	return d
}

// Angle returns the angle of the direction measured counter-clockwise
// from the positive x axis.
func (d Dir2[S, U]) Angle() dim.Angle[S, dim.Radians] {
	return d.v.Angle()
}

func (d Dir2[S, U]) ApproxEq(other Dir2[S, U], eps S) bool {
	return d.v.ApproxEq(other.v, eps)
}

func (d Dir2[S, U]) String() string {
	return fmt.Sprintf("dir(x=%v, y=%v)", d.v.X, d.v.Y)
}

// Dir3 is a unit length direction in 3d space, the Vec3 counterpart of
// Dir2.
type Dir3[S dim.Float, U dim.Unit] struct {
	v Vec3[S, U]
}

// Dir3X returns the direction of the positive x axis.
func Dir3X[U dim.Unit, S dim.Float]() Dir3[S, U] {
	return Dir3[S, U]{v: Vec3[S, U]{X: 1}}
}

// Dir3Y returns the direction of the positive y axis.
func Dir3Y[U dim.Unit, S dim.Float]() Dir3[S, U] {
	return Dir3[S, U]{v: Vec3[S, U]{Y: 1}}
}

// Dir3Z returns the direction of the positive z axis.
func Dir3Z[U dim.Unit, S dim.Float]() Dir3[S, U] {
	return Dir3[S, U]{v: Vec3[S, U]{Z: 1}}
}

// Vec returns the direction as a unit length vector.
func (d Dir3[S, U]) Vec() Vec3[S, U] {
	return d.v
}

func (d Dir3[S, U]) X() S { return d.v.X }
func (d Dir3[S, U]) Y() S { return d.v.Y }
func (d Dir3[S, U]) Z() S { return d.v.Z }

// Scale returns a vector pointing in this direction with the given
// magnitude.
func (d Dir3[S, U]) Scale(magnitude dim.Quantity[S, U]) Vec3[S, U] {
	return d.v.Mul(magnitude.Value())
}

func (d Dir3[S, U]) Dot(other Dir3[S, U]) S {
	return d.v.Dot(other.v)
}

// Cross returns the cross product of the two directions. The result is
// a vector, not a direction: it is only unit length when the inputs
// are perpendicular.
func (d Dir3[S, U]) Cross(other Dir3[S, U]) Vec3[S, U] {
	return d.v.Cross(other.v)
}

func (d Dir3[S, U]) Neg() Dir3[S, U] {
	d.v = d.v.Neg()
	return d
}

func (d Dir3[S, U]) ApproxEq(other Dir3[S, U], eps S) bool {
	return d.v.ApproxEq(other.v, eps)
}

func (d Dir3[S, U]) String() string {
	return fmt.Sprintf("dir(x=%v, y=%v, z=%v)", d.v.X, d.v.Y, d.v.Z)
}

// Dir4 is a unit length direction in 4d space, the Vec4 counterpart of
// Dir2 and Dir3.
type Dir4[S dim.Float, U dim.Unit] struct {
	v Vec4[S, U]
}

// Vec returns the direction as a unit length vector.
func (d Dir4[S, U]) Vec() Vec4[S, U] {
	return d.v
}

func (d Dir4[S, U]) X() S { return d.v.X }
func (d Dir4[S, U]) Y() S { return d.v.Y }
func (d Dir4[S, U]) Z() S { return d.v.Z }
func (d Dir4[S, U]) W() S { return d.v.W }

// Scale returns a vector pointing in this direction with the given
// magnitude.
func (d Dir4[S, U]) Scale(magnitude dim.Quantity[S, U]) Vec4[S, U] {
	return d.v.Mul(magnitude.Value())
}

func (d Dir4[S, U]) Dot(other Dir4[S, U]) S {
	return d.v.Dot(other.v)
}

func (d Dir4[S, U]) Neg() Dir4[S, U] {
	d.v = d.v.Neg()
	return d
}

func (d Dir4[S, U]) ApproxEq(other Dir4[S, U], eps S) bool {
	return d.v.ApproxEq(other.v, eps)
}

func (d Dir4[S, U]) String() string {
	return fmt.Sprintf("dir(x=%v, y=%v, z=%v, w=%v)", d.v.X, d.v.Y, d.v.Z, d.v.W)
}
