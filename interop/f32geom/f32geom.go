// Package f32geom converts between geom types and the float32 vector
// types of golang.org/x/image/math/f32.
//
// Importing this package is what opts a consumer into the x/image
// dependency; the core dim and geom packages never reference it.
// The To/From pairs work on float32 backed geom types and are exact.
// The Narrow functions are the one documented lossy exception: they
// narrow float64 components to float32.
package f32geom

import (
	"golang.org/x/image/math/f32"

	"github.com/veclab/dim"
	"github.com/veclab/dim/geom"
)

// ToF32Vec2 converts a vector to an f32.Vec2, dropping the tag.
func ToF32Vec2[U dim.Unit](v geom.Vec2[float32, U]) f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Vec2FromF32 converts an f32.Vec2 to a vector with the given tag.
func Vec2FromF32[U dim.Unit](v f32.Vec2) geom.Vec2[float32, U] {
	return geom.Vec2[float32, U]{X: v[0], Y: v[1]}
}

// ToF32Vec3 converts a vector to an f32.Vec3, dropping the tag.
func ToF32Vec3[U dim.Unit](v geom.Vec3[float32, U]) f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// Vec3FromF32 converts an f32.Vec3 to a vector with the given tag.
func Vec3FromF32[U dim.Unit](v f32.Vec3) geom.Vec3[float32, U] {
	return geom.Vec3[float32, U]{X: v[0], Y: v[1], Z: v[2]}
}

// ToF32Vec4 converts a vector to an f32.Vec4, dropping the tag.
func ToF32Vec4[U dim.Unit](v geom.Vec4[float32, U]) f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// Vec4FromF32 converts an f32.Vec4 to a vector with the given tag.
func Vec4FromF32[U dim.Unit](v f32.Vec4) geom.Vec4[float32, U] {
	return geom.Vec4[float32, U]{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// NarrowVec2 narrows a float64 vector to an f32.Vec2. This loses
// precision and has no exact inverse.
func NarrowVec2[U dim.Unit](v geom.Vec2[float64, U]) f32.Vec2 {
	return f32.Vec2{float32(v.X), float32(v.Y)}
}

// NarrowVec3 narrows a float64 vector to an f32.Vec3. This loses
// precision and has no exact inverse.
func NarrowVec3[U dim.Unit](v geom.Vec3[float64, U]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
