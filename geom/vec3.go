package geom

import (
	"fmt"
	"math"

	"github.com/veclab/dim"
)

// Vec3 is a 3d displacement in the space or unit given by its tag.
type Vec3[S dim.Float, U dim.Unit] struct {
	X, Y, Z S
}

// V3 builds a Vec3 with the given tag, e.g. V3[dim.Meters](1.0, 2.0, 3.0).
func V3[U dim.Unit, S dim.Float](x, y, z S) Vec3[S, U] {
	return Vec3[S, U]{X: x, Y: y, Z: z}
}

// Splat3 returns a Vec3 with all components set to v.
func Splat3[U dim.Unit, S dim.Float](v S) Vec3[S, U] {
	return Vec3[S, U]{X: v, Y: v, Z: v}
}

// Zero3 returns the zero vector.
func Zero3[U dim.Unit, S dim.Float]() Vec3[S, U] {
	return Vec3[S, U]{}
}

// One3 returns the vector with all components set to one.
func One3[U dim.Unit, S dim.Float]() Vec3[S, U] {
	return Vec3[S, U]{X: 1, Y: 1, Z: 1}
}

func (v Vec3[S, U]) Add(other Vec3[S, U]) Vec3[S, U] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v Vec3[S, U]) Sub(other Vec3[S, U]) Vec3[S, U] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v Vec3[S, U]) Neg() Vec3[S, U] {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

func (v Vec3[S, U]) Mul(scalar S) Vec3[S, U] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v Vec3[S, U]) Div(scalar S) Vec3[S, U] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

func (v Vec3[S, U]) MulEach(other Vec3[S, U]) Vec3[S, U] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

func (v Vec3[S, U]) DivEach(other Vec3[S, U]) Vec3[S, U] {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

// Dot returns the dot product as a plain scalar.
func (v Vec3[S, U]) Dot(other Vec3[S, U]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of the two vectors.
func (v Vec3[S, U]) Cross(other Vec3[S, U]) Vec3[S, U] {
	return Vec3[S, U]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3[S, U]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3[S, U]) Length() S {
	return S(math.Sqrt(float64(v.LengthSqr())))
}

// Magnitude returns the length of the vector as a quantity carrying
// the vector's tag.
func (v Vec3[S, U]) Magnitude() dim.Quantity[S, U] {
	return dim.Q[U](v.Length())
}

func (v Vec3[S, U]) DistanceTo(other Vec3[S, U]) S {
	return v.Sub(other).Length()
}

func (v Vec3[S, U]) DistanceToSqr(other Vec3[S, U]) S {
	return v.Sub(other).LengthSqr()
}

// Normalize returns the direction of the vector. It fails with a
// DegenerateInputError if the vector has zero length or non finite
// components.
func (v Vec3[S, U]) Normalize() (Dir3[S, U], error) {
	if !isFinite(v.X) || !isFinite(v.Y) || !isFinite(v.Z) {
		return Dir3[S, U]{}, &dim.DegenerateInputError{Op: "Vec3.Normalize", Reason: "non-finite component"}
	}

	length := v.Length()
	if length == 0 || !isFinite(length) {
		return Dir3[S, U]{}, &dim.DegenerateInputError{Op: "Vec3.Normalize", Reason: "zero length vector"}
	}

	return Dir3[S, U]{v: v.Div(length)}, nil
}

// NormalizeUnchecked is Normalize without the degenerate input check.
func (v Vec3[S, U]) NormalizeUnchecked() Dir3[S, U] {
	return Dir3[S, U]{v: v.Div(v.Length())}
}

func (v Vec3[S, U]) Lerp(other Vec3[S, U], alpha S) Vec3[S, U] {
	return Vec3[S, U]{
		X: v.X*(1-alpha) + other.X*alpha,
		Y: v.Y*(1-alpha) + other.Y*alpha,
		Z: v.Z*(1-alpha) + other.Z*alpha,
	}
}

func (v Vec3[S, U]) Min(other Vec3[S, U]) Vec3[S, U] {
	return Vec3[S, U]{X: min(v.X, other.X), Y: min(v.Y, other.Y), Z: min(v.Z, other.Z)}
}

func (v Vec3[S, U]) Max(other Vec3[S, U]) Vec3[S, U] {
	return Vec3[S, U]{X: max(v.X, other.X), Y: max(v.Y, other.Y), Z: max(v.Z, other.Z)}
}

func (v Vec3[S, U]) Clamp(lo, hi Vec3[S, U]) Vec3[S, U] {
	return v.Max(lo).Min(hi)
}

func (v Vec3[S, U]) Abs() Vec3[S, U] {
	if v.X < 0 {
		v.X = -v.X
	}
	if v.Y < 0 {
		v.Y = -v.Y
	}
	if v.Z < 0 {
		v.Z = -v.Z
	}
	return v
}

// MinComponent returns the index and value of the smallest component.
func (v Vec3[S, U]) MinComponent() (int, S) {
	idx, val := 0, v.X
	if v.Y < val {
		idx, val = 1, v.Y
	}
	if v.Z < val {
		idx, val = 2, v.Z
	}
	return idx, val
}

// MaxComponent returns the index and value of the largest component.
func (v Vec3[S, U]) MaxComponent() (int, S) {
	idx, val := 0, v.X
	if v.Y > val {
		idx, val = 1, v.Y
	}
	if v.Z > val {
		idx, val = 2, v.Z
	}
	return idx, val
}

func (v Vec3[S, U]) ApproxEq(other Vec3[S, U], eps S) bool {
	d := v.Sub(other).Abs()
	return d.X <= eps && d.Y <= eps && d.Z <= eps
}

// XY drops the z component.
func (v Vec3[S, U]) XY() Vec2[S, U] {
	return Vec2[S, U]{X: v.X, Y: v.Y}
}

func (v Vec3[S, U]) String() string {
	if symbol := symbolOf[U](); symbol != "" {
		return fmt.Sprintf("vec(x=%v, y=%v, z=%v, unit=%s)", v.X, v.Y, v.Z, symbol)
	}
	return fmt.Sprintf("vec(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
