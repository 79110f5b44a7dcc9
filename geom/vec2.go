package geom

import (
	"fmt"
	"image"
	"math"

	"github.com/veclab/dim"
)

// Vec2 is a 2d displacement in the space or unit given by its tag. For
// positions use Point2.
type Vec2[S dim.Float, U dim.Unit] struct {
	X, Y S
}

// V2 builds a Vec2 with the given tag, e.g. V2[dim.WorldSpace](1.0, 2.0).
func V2[U dim.Unit, S dim.Float](x, y S) Vec2[S, U] {
	return Vec2[S, U]{X: x, Y: y}
}

// Splat2 returns a Vec2 with both components set to v.
func Splat2[U dim.Unit, S dim.Float](v S) Vec2[S, U] {
	return Vec2[S, U]{X: v, Y: v}
}

// Zero2 returns the zero vector.
func Zero2[U dim.Unit, S dim.Float]() Vec2[S, U] {
	return Vec2[S, U]{}
}

// One2 returns the vector with both components set to one.
func One2[U dim.Unit, S dim.Float]() Vec2[S, U] {
	return Vec2[S, U]{X: 1, Y: 1}
}

func (v Vec2[S, U]) Add(other Vec2[S, U]) Vec2[S, U] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec2[S, U]) Sub(other Vec2[S, U]) Vec2[S, U] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec2[S, U]) Neg() Vec2[S, U] {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

func (v Vec2[S, U]) Mul(scalar S) Vec2[S, U] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec2[S, U]) Div(scalar S) Vec2[S, U] {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v Vec2[S, U]) MulEach(other Vec2[S, U]) Vec2[S, U] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec2[S, U]) DivEach(other Vec2[S, U]) Vec2[S, U] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// Dot returns the dot product as a plain scalar.
func (v Vec2[S, U]) Dot(other Vec2[S, U]) S {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3d cross product of the two
// vectors embedded into the z=0 plane.
func (v Vec2[S, U]) Cross(other Vec2[S, U]) S {
	return v.X*other.Y - v.Y*other.X
}

func (v Vec2[S, U]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2[S, U]) Length() S {
	return S(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Magnitude returns the length of the vector as a quantity carrying
// the vector's tag.
func (v Vec2[S, U]) Magnitude() dim.Quantity[S, U] {
	return dim.Q[U](v.Length())
}

func (v Vec2[S, U]) DistanceTo(other Vec2[S, U]) S {
	return v.Sub(other).Length()
}

func (v Vec2[S, U]) DistanceToSqr(other Vec2[S, U]) S {
	return v.Sub(other).LengthSqr()
}

// Normalize returns the direction of the vector. It fails with a
// DegenerateInputError if the vector has zero length or non finite
// components.
func (v Vec2[S, U]) Normalize() (Dir2[S, U], error) {
	if !isFinite(v.X) || !isFinite(v.Y) {
		return Dir2[S, U]{}, &dim.DegenerateInputError{Op: "Vec2.Normalize", Reason: "non-finite component"}
	}

	length := v.Length()
	if length == 0 || !isFinite(length) {
		return Dir2[S, U]{}, &dim.DegenerateInputError{Op: "Vec2.Normalize", Reason: "zero length vector"}
	}

	return Dir2[S, U]{v: v.Div(length)}, nil
}

// NormalizeUnchecked is Normalize without the degenerate input check.
// Normalizing a zero length vector yields NaN components.
func (v Vec2[S, U]) NormalizeUnchecked() Dir2[S, U] {
	return Dir2[S, U]{v: v.Div(v.Length())}
}

// Rotate returns the vector rotated counter-clockwise by the given angle.
func (v Vec2[S, U]) Rotate(angle dim.Angle[S, dim.Radians]) Vec2[S, U] {
	sin, cos := angle.SinCos()
	return Vec2[S, U]{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the direction of the vector as an angle measured
// counter-clockwise from the positive x axis.
func (v Vec2[S, U]) Angle() dim.Angle[S, dim.Radians] {
	return dim.Rad(S(math.Atan2(float64(v.Y), float64(v.X))))
}

// Lerp interpolates linearly between v and other. alpha zero is v,
// alpha one is other.
func (v Vec2[S, U]) Lerp(other Vec2[S, U], alpha S) Vec2[S, U] {
	return Vec2[S, U]{
		X: v.X*(1-alpha) + other.X*alpha,
		Y: v.Y*(1-alpha) + other.Y*alpha,
	}
}

func (v Vec2[S, U]) Min(other Vec2[S, U]) Vec2[S, U] {
	return Vec2[S, U]{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

func (v Vec2[S, U]) Max(other Vec2[S, U]) Vec2[S, U] {
	return Vec2[S, U]{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

func (v Vec2[S, U]) Clamp(lo, hi Vec2[S, U]) Vec2[S, U] {
	return v.Max(lo).Min(hi)
}

func (v Vec2[S, U]) Abs() Vec2[S, U] {
	if v.X < 0 {
		v.X = -v.X
	}
	if v.Y < 0 {
		v.Y = -v.Y
	}
	return v
}

// MinComponent returns the index and value of the smallest component.
func (v Vec2[S, U]) MinComponent() (int, S) {
	if v.X <= v.Y {
		return 0, v.X
	}
	return 1, v.Y
}

// MaxComponent returns the index and value of the largest component.
func (v Vec2[S, U]) MaxComponent() (int, S) {
	if v.X >= v.Y {
		return 0, v.X
	}
	return 1, v.Y
}

func (v Vec2[S, U]) ApproxEq(other Vec2[S, U], eps S) bool {
	d := v.Sub(other).Abs()
	return d.X <= eps && d.Y <= eps
}

func (v Vec2[S, U]) ToImagePoint() image.Point {
	return image.Point{X: roundToInt(v.X), Y: roundToInt(v.Y)}
}

func (v Vec2[S, U]) String() string {
	if symbol := symbolOf[U](); symbol != "" {
		return fmt.Sprintf("vec(x=%v, y=%v, unit=%s)", v.X, v.Y, symbol)
	}
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
