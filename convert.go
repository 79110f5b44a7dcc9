package dim

// Unit conversion. Each family converts through its base unit, so a
// new tag only needs to define its relation to the base and every
// transitive conversion comes for free.
//
// The target tag is given explicitly at the call site, the rest is
// inferred:
//
//	ft := dim.ConvertLength[dim.Feet](dim.Q[dim.Meters](1.0))
//
// There is no conversion across families; asking for one does not
// compile because the tags do not share a family interface.

// ConvertLength converts a length quantity to the target length unit.
func ConvertLength[To, From LengthUnit, S Float](q Quantity[S, From]) Quantity[S, To] {
	var from From
	var to To
	return Quantity[S, To]{v: S(to.FromMeters(from.ToMeters(float64(q.v))))}
}

// ConvertAngle converts an angle quantity to the target angle unit.
// For the Angle type itself use AngleIn instead.
func ConvertAngle[To, From AngleUnit, S Float](q Quantity[S, From]) Quantity[S, To] {
	var from From
	var to To
	return Quantity[S, To]{v: S(to.FromRadians(from.ToRadians(float64(q.v))))}
}

// ConvertMass converts a mass quantity to the target mass unit.
func ConvertMass[To, From MassUnit, S Float](q Quantity[S, From]) Quantity[S, To] {
	var from From
	var to To
	return Quantity[S, To]{v: S(to.FromKilograms(from.ToKilograms(float64(q.v))))}
}

// ConvertDuration converts a time quantity to the target time unit.
func ConvertDuration[To, From DurationUnit, S Float](q Quantity[S, From]) Quantity[S, To] {
	var from From
	var to To
	return Quantity[S, To]{v: S(to.FromSeconds(from.ToSeconds(float64(q.v))))}
}
