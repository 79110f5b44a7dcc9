// Package ebitengeom converts between geom types and the geometry
// matrix of github.com/hajimehoshi/ebiten.
//
// Importing this package is what opts a consumer into the ebiten
// dependency; the core dim and geom packages never reference it.
// ebiten.GeoM stores float64 elements, so the Affine2 round trip is
// exact. GeoM carries no space tags; the tags on the way in are the
// caller's statement about the spaces the matrix maps between.
package ebitengeom

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/veclab/dim"
	"github.com/veclab/dim/geom"
)

// ToGeoM converts an affine transform to an ebiten.GeoM applying the
// same mapping.
func ToGeoM[From, To dim.Unit](a geom.Affine2[float64, From, To]) ebiten.GeoM {
	var g ebiten.GeoM

	// GeoM applies x' = g(0,0)*x + g(0,1)*y + g(0,2), matching the
	// Affine2 column layout transposed into rows.
	g.SetElement(0, 0, a.M00)
	g.SetElement(0, 1, a.M10)
	g.SetElement(0, 2, a.M20)
	g.SetElement(1, 0, a.M01)
	g.SetElement(1, 1, a.M11)
	g.SetElement(1, 2, a.M21)

	return g
}

// Affine2FromGeoM converts an ebiten.GeoM to an affine transform with
// the given space tags.
func Affine2FromGeoM[From, To dim.Unit](g ebiten.GeoM) geom.Affine2[float64, From, To] {
	return geom.Affine2[float64, From, To]{
		M00: g.Element(0, 0),
		M10: g.Element(0, 1),
		M20: g.Element(0, 2),
		M01: g.Element(1, 0),
		M11: g.Element(1, 1),
		M21: g.Element(1, 2),
	}
}

// ApplyGeoM transforms a point with a GeoM and returns the result in
// the destination space. This is a convenience for checking that a
// converted matrix behaves like its Affine2 source.
func ApplyGeoM[From, To dim.Unit](g ebiten.GeoM, p geom.Point2[float64, From]) geom.Point2[float64, To] {
	x, y := g.Apply(p.X, p.Y)
	return geom.Point2[float64, To]{X: x, Y: y}
}
