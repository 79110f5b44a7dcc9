package dim

import "math"

// Unit is implemented by every dimension tag. Tags are zero sized
// structs; the type checker is the only place they ever matter.
type Unit interface {
	// Symbol returns the display symbol of the tag, e.g. "m" for
	// Meters. Coordinate spaces return their name, Unitless returns
	// the empty string.
	Symbol() string
}

// LengthUnit is a tag of the length family. Every length tag defines
// only its relation to Meters, the family base; conversion between any
// two length tags routes through the base.
type LengthUnit interface {
	Unit
	ToMeters(v float64) float64
	FromMeters(v float64) float64
}

// AngleUnit is a tag of the angle family with Radians as base.
type AngleUnit interface {
	Unit
	ToRadians(v float64) float64
	FromRadians(v float64) float64
}

// MassUnit is a tag of the mass family with Kilograms as base.
type MassUnit interface {
	Unit
	ToKilograms(v float64) float64
	FromKilograms(v float64) float64
}

// DurationUnit is a tag of the time family with Seconds as base.
type DurationUnit interface {
	Unit
	ToSeconds(v float64) float64
	FromSeconds(v float64) float64
}

// Unitless is the tag for plain numbers and directionless math. It is
// the default tag to reach for when no unit or space applies.
type Unitless struct{}

func (Unitless) Symbol() string { return "" }

// Coordinate spaces. They have no family: there is no scale factor
// between, say, world and view space, only an explicit transform
// (see geom.Affine2).
type (
	WorldSpace  struct{}
	LocalSpace  struct{}
	ViewSpace   struct{}
	ClipSpace   struct{}
	TexelSpace  struct{}
	ScreenSpace struct{}
)

func (WorldSpace) Symbol() string  { return "world" }
func (LocalSpace) Symbol() string  { return "local" }
func (ViewSpace) Symbol() string   { return "view" }
func (ClipSpace) Symbol() string   { return "clip" }
func (TexelSpace) Symbol() string  { return "texel" }
func (ScreenSpace) Symbol() string { return "screen" }

// Length family.
type (
	Meters      struct{}
	Kilometers  struct{}
	Centimeters struct{}
	Millimeters struct{}
	Feet        struct{}
	Inches      struct{}
	Miles       struct{}
)

const (
	metersPerKilometer  = 1000.0
	metersPerCentimeter = 0.01
	metersPerMillimeter = 0.001
	metersPerFoot       = 0.3048
	metersPerInch       = 0.0254
	metersPerMile       = 1609.344
)

func (Meters) Symbol() string               { return "m" }
func (Meters) ToMeters(v float64) float64   { return v }
func (Meters) FromMeters(v float64) float64 { return v }

func (Kilometers) Symbol() string               { return "km" }
func (Kilometers) ToMeters(v float64) float64   { return v * metersPerKilometer }
func (Kilometers) FromMeters(v float64) float64 { return v / metersPerKilometer }

func (Centimeters) Symbol() string               { return "cm" }
func (Centimeters) ToMeters(v float64) float64   { return v * metersPerCentimeter }
func (Centimeters) FromMeters(v float64) float64 { return v / metersPerCentimeter }

func (Millimeters) Symbol() string               { return "mm" }
func (Millimeters) ToMeters(v float64) float64   { return v * metersPerMillimeter }
func (Millimeters) FromMeters(v float64) float64 { return v / metersPerMillimeter }

func (Feet) Symbol() string               { return "ft" }
func (Feet) ToMeters(v float64) float64   { return v * metersPerFoot }
func (Feet) FromMeters(v float64) float64 { return v / metersPerFoot }

func (Inches) Symbol() string               { return "in" }
func (Inches) ToMeters(v float64) float64   { return v * metersPerInch }
func (Inches) FromMeters(v float64) float64 { return v / metersPerInch }

func (Miles) Symbol() string               { return "mi" }
func (Miles) ToMeters(v float64) float64   { return v * metersPerMile }
func (Miles) FromMeters(v float64) float64 { return v / metersPerMile }

// Angle family.
type (
	Radians struct{}
	Degrees struct{}
	Turns   struct{}
)

func (Radians) Symbol() string                { return "rad" }
func (Radians) ToRadians(v float64) float64   { return v }
func (Radians) FromRadians(v float64) float64 { return v }

func (Degrees) Symbol() string                { return "°" }
func (Degrees) ToRadians(v float64) float64   { return v * (math.Pi / 180) }
func (Degrees) FromRadians(v float64) float64 { return v * (180 / math.Pi) }

func (Turns) Symbol() string                { return "turn" }
func (Turns) ToRadians(v float64) float64   { return v * (2 * math.Pi) }
func (Turns) FromRadians(v float64) float64 { return v / (2 * math.Pi) }

// Mass family.
type (
	Kilograms struct{}
	Grams     struct{}
	Pounds    struct{}
)

const (
	kilogramsPerGram  = 0.001
	kilogramsPerPound = 0.45359237
)

func (Kilograms) Symbol() string                  { return "kg" }
func (Kilograms) ToKilograms(v float64) float64   { return v }
func (Kilograms) FromKilograms(v float64) float64 { return v }

func (Grams) Symbol() string                  { return "g" }
func (Grams) ToKilograms(v float64) float64   { return v * kilogramsPerGram }
func (Grams) FromKilograms(v float64) float64 { return v / kilogramsPerGram }

func (Pounds) Symbol() string                  { return "lb" }
func (Pounds) ToKilograms(v float64) float64   { return v * kilogramsPerPound }
func (Pounds) FromKilograms(v float64) float64 { return v / kilogramsPerPound }

// Time family.
type (
	Seconds      struct{}
	Milliseconds struct{}
	Minutes      struct{}
)

func (Seconds) Symbol() string                { return "s" }
func (Seconds) ToSeconds(v float64) float64   { return v }
func (Seconds) FromSeconds(v float64) float64 { return v }

func (Milliseconds) Symbol() string                { return "ms" }
func (Milliseconds) ToSeconds(v float64) float64   { return v * 0.001 }
func (Milliseconds) FromSeconds(v float64) float64 { return v / 0.001 }

func (Minutes) Symbol() string                { return "min" }
func (Minutes) ToSeconds(v float64) float64   { return v * 60 }
func (Minutes) FromSeconds(v float64) float64 { return v / 60 }
