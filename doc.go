// Package dim provides the unit layer of the library: dimension tags,
// the Quantity wrapper and the Angle type.
//
// A dimension tag is a zero sized type such as Meters or WorldSpace. It
// only exists at the type level: a Quantity[float64, Meters] and a
// Quantity[float64, Feet] share their memory layout but are different
// types, so mixing them up does not compile. Tags that measure the same
// thing belong to a family (LengthUnit, AngleUnit, MassUnit,
// DurationUnit) and can be converted into each other with the Convert
// functions, always explicitly.
//
// Coordinate spaces (WorldSpace, ViewSpace, ...) are tags without a
// family. They mark which space a vector or point lives in and are never
// convertible by a scale factor. Consumers can declare their own spaces
// by declaring a zero sized struct with a Symbol method:
//
//	type ChunkSpace struct{}
//
//	func (ChunkSpace) Symbol() string { return "chunk" }
//
// Geometric types built on top of these tags live in the geom package.
package dim
