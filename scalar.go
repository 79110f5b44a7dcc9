package dim

// Float is the constraint for the numeric types our quantities and the
// geometric types in the geom package are built on.
type Float interface {
	~float32 | ~float64
}

// Scalar additionally admits int32 for raster space helpers.
type Scalar interface {
	~float32 | ~float64 | ~int32
}

func symbolOf[U Unit]() string {
	var u U
	return u.Symbol()
}
