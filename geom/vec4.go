package geom

import (
	"fmt"
	"math"

	"github.com/veclab/dim"
)

// Vec4 is a 4 component vector, mostly useful for homogeneous
// coordinates and for shuttling data to graphics APIs.
type Vec4[S dim.Float, U dim.Unit] struct {
	X, Y, Z, W S
}

// V4 builds a Vec4 with the given tag.
func V4[U dim.Unit, S dim.Float](x, y, z, w S) Vec4[S, U] {
	return Vec4[S, U]{X: x, Y: y, Z: z, W: w}
}

// Splat4 returns a Vec4 with all components set to v.
func Splat4[U dim.Unit, S dim.Float](v S) Vec4[S, U] {
	return Vec4[S, U]{X: v, Y: v, Z: v, W: v}
}

// Zero4 returns the zero vector.
func Zero4[U dim.Unit, S dim.Float]() Vec4[S, U] {
	return Vec4[S, U]{}
}

// One4 returns the vector with all components set to one.
func One4[U dim.Unit, S dim.Float]() Vec4[S, U] {
	return Vec4[S, U]{X: 1, Y: 1, Z: 1, W: 1}
}

func (v Vec4[S, U]) Add(other Vec4[S, U]) Vec4[S, U] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
	return v
}

func (v Vec4[S, U]) Sub(other Vec4[S, U]) Vec4[S, U] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
	return v
}

func (v Vec4[S, U]) Neg() Vec4[S, U] {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	v.W = -v.W
	return v
}

func (v Vec4[S, U]) Mul(scalar S) Vec4[S, U] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	v.W *= scalar
	return v
}

func (v Vec4[S, U]) Div(scalar S) Vec4[S, U] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	v.W /= scalar
	return v
}

func (v Vec4[S, U]) MulEach(other Vec4[S, U]) Vec4[S, U] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	v.W *= other.W
	return v
}

func (v Vec4[S, U]) DivEach(other Vec4[S, U]) Vec4[S, U] {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	v.W /= other.W
	return v
}

// Dot returns the dot product as a plain scalar.
func (v Vec4[S, U]) Dot(other Vec4[S, U]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4[S, U]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4[S, U]) Length() S {
	return S(math.Sqrt(float64(v.LengthSqr())))
}

// Magnitude returns the length of the vector as a quantity carrying
// the vector's tag.
func (v Vec4[S, U]) Magnitude() dim.Quantity[S, U] {
	return dim.Q[U](v.Length())
}

func (v Vec4[S, U]) DistanceTo(other Vec4[S, U]) S {
	return v.Sub(other).Length()
}

func (v Vec4[S, U]) DistanceToSqr(other Vec4[S, U]) S {
	return v.Sub(other).LengthSqr()
}

// Normalize returns the direction of the vector. It fails with a
// DegenerateInputError if the vector has zero length or non finite
// components.
func (v Vec4[S, U]) Normalize() (Dir4[S, U], error) {
	if !isFinite(v.X) || !isFinite(v.Y) || !isFinite(v.Z) || !isFinite(v.W) {
		return Dir4[S, U]{}, &dim.DegenerateInputError{Op: "Vec4.Normalize", Reason: "non-finite component"}
	}

	length := v.Length()
	if length == 0 || !isFinite(length) {
		return Dir4[S, U]{}, &dim.DegenerateInputError{Op: "Vec4.Normalize", Reason: "zero length vector"}
	}

	return Dir4[S, U]{v: v.Div(length)}, nil
}

// NormalizeUnchecked is Normalize without the degenerate input check.
func (v Vec4[S, U]) NormalizeUnchecked() Dir4[S, U] {
	return Dir4[S, U]{v: v.Div(v.Length())}
}

func (v Vec4[S, U]) Lerp(other Vec4[S, U], alpha S) Vec4[S, U] {
	return Vec4[S, U]{
		X: v.X*(1-alpha) + other.X*alpha,
		Y: v.Y*(1-alpha) + other.Y*alpha,
		Z: v.Z*(1-alpha) + other.Z*alpha,
		W: v.W*(1-alpha) + other.W*alpha,
	}
}

func (v Vec4[S, U]) Min(other Vec4[S, U]) Vec4[S, U] {
	return Vec4[S, U]{
		X: min(v.X, other.X),
		Y: min(v.Y, other.Y),
		Z: min(v.Z, other.Z),
		W: min(v.W, other.W),
	}
}

func (v Vec4[S, U]) Max(other Vec4[S, U]) Vec4[S, U] {
	return Vec4[S, U]{
		X: max(v.X, other.X),
		Y: max(v.Y, other.Y),
		Z: max(v.Z, other.Z),
		W: max(v.W, other.W),
	}
}

func (v Vec4[S, U]) Clamp(lo, hi Vec4[S, U]) Vec4[S, U] {
	return v.Max(lo).Min(hi)
}

func (v Vec4[S, U]) Abs() Vec4[S, U] {
	if v.X < 0 {
		v.X = -v.X
	}
	if v.Y < 0 {
		v.Y = -v.Y
	}
	if v.Z < 0 {
		v.Z = -v.Z
	}
	if v.W < 0 {
		v.W = -v.W
	}
	return v
}

// MinComponent returns the index and value of the smallest component.
func (v Vec4[S, U]) MinComponent() (int, S) {
	idx, val := 0, v.X
	if v.Y < val {
		idx, val = 1, v.Y
	}
	if v.Z < val {
		idx, val = 2, v.Z
	}
	if v.W < val {
		idx, val = 3, v.W
	}
	return idx, val
}

// MaxComponent returns the index and value of the largest component.
func (v Vec4[S, U]) MaxComponent() (int, S) {
	idx, val := 0, v.X
	if v.Y > val {
		idx, val = 1, v.Y
	}
	if v.Z > val {
		idx, val = 2, v.Z
	}
	if v.W > val {
		idx, val = 3, v.W
	}
	return idx, val
}

func (v Vec4[S, U]) ApproxEq(other Vec4[S, U], eps S) bool {
	d := v.Sub(other).Abs()
	return d.X <= eps && d.Y <= eps && d.Z <= eps && d.W <= eps
}

// XYZ drops the w component.
func (v Vec4[S, U]) XYZ() Vec3[S, U] {
	return Vec3[S, U]{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vec4[S, U]) String() string {
	if symbol := symbolOf[U](); symbol != "" {
		return fmt.Sprintf("vec(x=%v, y=%v, z=%v, w=%v, unit=%s)", v.X, v.Y, v.Z, v.W, symbol)
	}
	return fmt.Sprintf("vec(x=%v, y=%v, z=%v, w=%v)", v.X, v.Y, v.Z, v.W)
}
