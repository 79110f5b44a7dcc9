package dim

import (
	"fmt"
	"math"
)

// Angle is an angle value carrying its angular unit in the type.
// Add and Sub accumulate without wrapping; use Normalized to reduce
// an angle to a single turn.
type Angle[S Float, U AngleUnit] struct {
	v S
}

// Rad constructs an angle in radians.
func Rad[S Float](v S) Angle[S, Radians] {
	return Angle[S, Radians]{v: v}
}

// Deg constructs an angle in degrees.
func Deg[S Float](v S) Angle[S, Degrees] {
	return Angle[S, Degrees]{v: v}
}

// AngleOf constructs an angle in the given unit, e.g. AngleOf[Turns](0.25).
func AngleOf[U AngleUnit, S Float](v S) Angle[S, U] {
	return Angle[S, U]{v: v}
}

// AngleIn converts an angle to the target angular unit:
//
//	rad := dim.AngleIn[dim.Radians](dim.Deg(180.0))
func AngleIn[To, From AngleUnit, S Float](a Angle[S, From]) Angle[S, To] {
	var from From
	var to To
	return Angle[S, To]{v: S(to.FromRadians(from.ToRadians(float64(a.v))))}
}

// Value returns the raw value in the angle's own unit.
func (a Angle[S, U]) Value() S {
	return a.v
}

// Radians returns the value of the angle in radians.
func (a Angle[S, U]) Radians() S {
	var u U
	return S(u.ToRadians(float64(a.v)))
}

// Degrees returns the value of the angle in degrees.
func (a Angle[S, U]) Degrees() S {
	var u U
	return S(Degrees{}.FromRadians(u.ToRadians(float64(a.v))))
}

func (a Angle[S, U]) Add(other Angle[S, U]) Angle[S, U] {
	a.v += other.v
	return a
}

func (a Angle[S, U]) Sub(other Angle[S, U]) Angle[S, U] {
	a.v -= other.v
	return a
}

func (a Angle[S, U]) Neg() Angle[S, U] {
	a.v = -a.v
	return a
}

func (a Angle[S, U]) Mul(factor S) Angle[S, U] {
	a.v *= factor
	return a
}

// Normalized returns the angle normalized to the range [-π, π),
// expressed in the angle's own unit.
func (a Angle[S, U]) Normalized() Angle[S, U] {
	var u U

	angle := u.ToRadians(float64(a.v))
	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	a.v = S(u.FromRadians(angle - math.Pi))
	return a
}

// DifferenceTo returns the smallest difference between two angles,
// normalized to the range [-π, π).
func (a Angle[S, U]) DifferenceTo(other Angle[S, U]) Angle[S, U] {
	return a.Sub(other).Normalized()
}

// Sin returns the sine of the angle.
func (a Angle[S, U]) Sin() S {
	return S(math.Sin(float64(a.Radians())))
}

// Cos returns the cosine of the angle.
func (a Angle[S, U]) Cos() S {
	return S(math.Cos(float64(a.Radians())))
}

// Tan returns the tangent of the angle.
func (a Angle[S, U]) Tan() S {
	return S(math.Tan(float64(a.Radians())))
}

// SinCos returns sine and cosine of the angle in one call.
func (a Angle[S, U]) SinCos() (sin, cos S) {
	s, c := math.Sincos(float64(a.Radians()))
	return S(s), S(c)
}

func (a Angle[S, U]) ApproxEq(other Angle[S, U], eps S) bool {
	d := a.v - other.v
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func (a Angle[S, U]) String() string {
	return fmt.Sprintf("%v %s", a.v, symbolOf[U]())
}
