//go:build compilefail

// This file is a negative fixture: it must NOT compile. Each case
// below documents a misuse that the type system rejects, with the
// compiler error it produces. The file lives under testdata so the go
// tool never builds it; build it by hand to verify the errors:
//
//	go build -tags compilefail ./geom/testdata/compilefail
package compilefail

import (
	"github.com/veclab/dim"
	"github.com/veclab/dim/geom"
)

func mixedUnitVectorAdd() {
	m := geom.V3[dim.Meters](1.0, 2.0, 3.0)
	ft := geom.V3[dim.Feet](1.0, 2.0, 3.0)

	// cannot use ft (variable of struct type geom.Vec3[float64, dim.Feet])
	// as geom.Vec3[float64, dim.Meters] value in argument to m.Add
	_ = m.Add(ft)
}

func mixedUnitQuantityAdd() {
	m := dim.Q[dim.Meters](1.0)
	ft := dim.Q[dim.Feet](1.0)

	// cannot use ft (variable of struct type dim.Quantity[float64, dim.Feet])
	// as dim.Quantity[float64, dim.Meters] value in argument to m.Add
	_ = m.Add(ft)
}

func pointPlusPoint() {
	a := geom.P2[dim.WorldSpace](1.0, 2.0)
	b := geom.P2[dim.WorldSpace](3.0, 4.0)

	// cannot use b (variable of struct type geom.Point2[float64, dim.WorldSpace])
	// as geom.Vec2[float64, dim.WorldSpace] value in argument to a.Add
	_ = a.Add(b)
}

func crossFamilyConversion() {
	kg := dim.Q[dim.Kilograms](1.0)

	// dim.Kilograms does not satisfy dim.LengthUnit (missing method FromMeters)
	_ = dim.ConvertLength[dim.Meters](kg)
}

func spaceConversion() {
	w := dim.Q[dim.WorldSpace](1.0)

	// dim.WorldSpace does not satisfy dim.LengthUnit (missing method FromMeters)
	_ = dim.ConvertLength[dim.Meters](w)
}

func mismatchedTransformChain() {
	toView := geom.RotationAffine2[dim.WorldSpace, dim.ViewSpace](dim.Rad(1.0))
	toScreen := geom.ScaleAffine2[dim.ClipSpace, dim.ScreenSpace](2.0)

	// type geom.Affine2[float64, dim.ClipSpace, dim.ScreenSpace] of toScreen
	// does not match inferred type geom.Affine2[float64, dim.ViewSpace, To]
	_ = geom.Compose2(toView, toScreen)
}

func mixedSpacePointTransform() {
	camera := geom.CameraAffine2(geom.P2[dim.WorldSpace](0.0, 0.0), dim.Rad(0.0), 1.0)
	p := geom.P2[dim.ScreenSpace](1.0, 1.0)

	// cannot use p (variable of struct type geom.Point2[float64, dim.ScreenSpace])
	// as geom.Point2[float64, dim.WorldSpace] value in argument to camera.TransformPoint
	_ = camera.TransformPoint(p)
}
