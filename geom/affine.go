package geom

import (
	"fmt"

	"github.com/veclab/dim"
)

// Affine2 is a 2d affine transform from the From space into the To
// space. Keeping both spaces in the type means a chain of transforms
// only composes when the spaces line up; see Compose2.
//
// The linear part is stored column wise: (M00, M01) is the image of
// the x axis, (M10, M11) the image of the y axis, and (M20, M21) is
// the translation. A point transforms as
//
//	x' = M00*x + M10*y + M20
//	y' = M01*x + M11*y + M21
type Affine2[S dim.Float, From, To dim.Unit] struct {
	M00, M01 S
	M10, M11 S
	M20, M21 S
}

// IdentityAffine2 returns the identity transform within a single
// space.
func IdentityAffine2[U dim.Unit, S dim.Float]() Affine2[S, U, U] {
	return Affine2[S, U, U]{M00: 1, M11: 1}
}

// TranslationAffine2 returns a transform that translates by the given
// vector, expressed in the destination space.
func TranslationAffine2[From dim.Unit, To dim.Unit, S dim.Float](translation Vec2[S, To]) Affine2[S, From, To] {
	return Affine2[S, From, To]{
		M00: 1, M11: 1,
		M20: translation.X, M21: translation.Y,
	}
}

// RotationAffine2 returns a transform that rotates counter-clockwise
// by the given angle.
func RotationAffine2[From, To dim.Unit, S dim.Float](rotation dim.Angle[S, dim.Radians]) Affine2[S, From, To] {
	sin, cos := rotation.SinCos()
	return Affine2[S, From, To]{
		M00: cos, M01: sin,
		M10: -sin, M11: cos,
	}
}

// ScaleAffine2 returns a uniform scale transform.
func ScaleAffine2[From, To dim.Unit, S dim.Float](scale S) Affine2[S, From, To] {
	return Affine2[S, From, To]{M00: scale, M11: scale}
}

// NonuniformScaleAffine2 returns a per axis scale transform.
func NonuniformScaleAffine2[From dim.Unit, To dim.Unit, S dim.Float](scale Vec2[S, To]) Affine2[S, From, To] {
	return Affine2[S, From, To]{M00: scale.X, M11: scale.Y}
}

// CameraAffine2 returns the world to view transform of a camera at the
// given position, rotated by rotation and zoomed by zoom. The camera
// position maps to the view space origin.
func CameraAffine2[S dim.Float](
	position Point2[S, dim.WorldSpace],
	rotation dim.Angle[S, dim.Radians],
	zoom S,
) Affine2[S, dim.WorldSpace, dim.ViewSpace] {
	sin, cos := rotation.SinCos()

	// linear part is R(-rotation) / zoom
	m00 := cos / zoom
	m01 := -sin / zoom
	m10 := sin / zoom
	m11 := cos / zoom

	return Affine2[S, dim.WorldSpace, dim.ViewSpace]{
		M00: m00, M01: m01,
		M10: m10, M11: m11,
		M20: -(m00*position.X + m10*position.Y),
		M21: -(m01*position.X + m11*position.Y),
	}
}

// Compose2 returns the transform equivalent to applying a first and b
// second. The intermediate space has to match, anything else does not
// compile.
func Compose2[S dim.Float, From, Mid, To dim.Unit](
	a Affine2[S, From, Mid],
	b Affine2[S, Mid, To],
) Affine2[S, From, To] {
	return Affine2[S, From, To]{
		M00: b.M00*a.M00 + b.M10*a.M01,
		M01: b.M01*a.M00 + b.M11*a.M01,
		M10: b.M00*a.M10 + b.M10*a.M11,
		M11: b.M01*a.M10 + b.M11*a.M11,
		M20: b.M00*a.M20 + b.M10*a.M21 + b.M20,
		M21: b.M01*a.M20 + b.M11*a.M21 + b.M21,
	}
}

// TransformPoint maps a point from the source space into the
// destination space.
func (a Affine2[S, From, To]) TransformPoint(p Point2[S, From]) Point2[S, To] {
	return Point2[S, To]{
		X: a.M00*p.X + a.M10*p.Y + a.M20,
		Y: a.M01*p.X + a.M11*p.Y + a.M21,
	}
}

// TransformVec maps a displacement from the source space into the
// destination space. Unlike TransformPoint the translation part does
// not apply, the vector is only rotated and scaled.
func (a Affine2[S, From, To]) TransformVec(v Vec2[S, From]) Vec2[S, To] {
	return Vec2[S, To]{
		X: a.M00*v.X + a.M10*v.Y,
		Y: a.M01*v.X + a.M11*v.Y,
	}
}

// Determinant returns the determinant of the linear part.
func (a Affine2[S, From, To]) Determinant() S {
	return a.M00*a.M11 - a.M01*a.M10
}

// TryInverse returns the transform mapping the destination space back
// into the source space. ok is false if the transform is not
// invertible.
func (a Affine2[S, From, To]) TryInverse() (inverse Affine2[S, To, From], ok bool) {
	det := a.Determinant()
	if det == 0 || !isFinite(det) {
		return Affine2[S, To, From]{}, false
	}

	f := 1 / det
	inverse = Affine2[S, To, From]{
		M00: f * a.M11,
		M01: f * -a.M01,
		M10: f * -a.M10,
		M11: f * a.M00,
	}
	inverse.M20 = -(inverse.M00*a.M20 + inverse.M10*a.M21)
	inverse.M21 = -(inverse.M01*a.M20 + inverse.M11*a.M21)

	return inverse, true
}

// Inverse returns the inverse of the transform. It panics if the
// transform is not invertible; use TryInverse when in doubt.
func (a Affine2[S, From, To]) Inverse() Affine2[S, To, From] {
	inverse, ok := a.TryInverse()
	if !ok {
		panic(fmt.Sprintf("affine transform is not invertible: %s", a))
	}
	return inverse
}

// Elements returns the matrix as three rows of two values, linear part
// first, translation last.
func (a Affine2[S, From, To]) Elements() [3][2]S {
	return [3][2]S{
		{a.M00, a.M01},
		{a.M10, a.M11},
		{a.M20, a.M21},
	}
}

func (a Affine2[S, From, To]) ApproxEq(other Affine2[S, From, To], eps S) bool {
	abs := func(s S) S {
		if s < 0 {
			return -s
		}
		return s
	}
	return abs(a.M00-other.M00) <= eps && abs(a.M01-other.M01) <= eps &&
		abs(a.M10-other.M10) <= eps && abs(a.M11-other.M11) <= eps &&
		abs(a.M20-other.M20) <= eps && abs(a.M21-other.M21) <= eps
}

func (a Affine2[S, From, To]) String() string {
	return fmt.Sprintf("affine(x=(%v, %v), y=(%v, %v), t=(%v, %v))",
		a.M00, a.M01, a.M10, a.M11, a.M20, a.M21)
}
