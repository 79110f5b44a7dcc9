package dim

import (
	"cmp"
	"fmt"
)

// Quantity pairs a raw numeric value with a dimension tag. Two
// quantities only interact when their tags match; crossing tags takes
// an explicit Convert call. The zero value is zero in the tag's unit.
//
// A Quantity[S, U] has the exact memory layout of its scalar type S.
type Quantity[S Float, U Unit] struct {
	v S
}

// Q constructs a Quantity from a raw value, e.g. Q[Meters](1.5).
func Q[U Unit, S Float](v S) Quantity[S, U] {
	return Quantity[S, U]{v: v}
}

// Value returns the raw numeric value in the quantity's own unit.
func (q Quantity[S, U]) Value() S {
	return q.v
}

func (q Quantity[S, U]) Add(other Quantity[S, U]) Quantity[S, U] {
	q.v += other.v
	return q
}

func (q Quantity[S, U]) Sub(other Quantity[S, U]) Quantity[S, U] {
	q.v -= other.v
	return q
}

func (q Quantity[S, U]) Neg() Quantity[S, U] {
	q.v = -q.v
	return q
}

// Mul scales the quantity by a plain factor. Multiplying two
// quantities is not provided, the library does not track squared units.
func (q Quantity[S, U]) Mul(factor S) Quantity[S, U] {
	q.v *= factor
	return q
}

func (q Quantity[S, U]) Div(divisor S) Quantity[S, U] {
	q.v /= divisor
	return q
}

func (q Quantity[S, U]) Abs() Quantity[S, U] {
	if q.v < 0 {
		q.v = -q.v
	}
	return q
}

func (q Quantity[S, U]) Less(other Quantity[S, U]) bool {
	return q.v < other.v
}

// Cmp compares two quantities, returning -1 when q is smaller than
// other, 0 when equal and +1 when larger, suitable for slices.SortFunc.
func (q Quantity[S, U]) Cmp(other Quantity[S, U]) int {
	return cmp.Compare(q.v, other.v)
}

func (q Quantity[S, U]) Min(other Quantity[S, U]) Quantity[S, U] {
	if other.v < q.v {
		return other
	}
	return q
}

func (q Quantity[S, U]) Max(other Quantity[S, U]) Quantity[S, U] {
	if other.v > q.v {
		return other
	}
	return q
}

func (q Quantity[S, U]) Clamp(lo, hi Quantity[S, U]) Quantity[S, U] {
	if q.v < lo.v {
		return lo
	}
	if q.v > hi.v {
		return hi
	}
	return q
}

// ApproxEq reports whether the two quantities differ by at most eps.
// Prefer this over == in float heavy code.
func (q Quantity[S, U]) ApproxEq(other Quantity[S, U], eps S) bool {
	d := q.v - other.v
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func (q Quantity[S, U]) String() string {
	if symbol := symbolOf[U](); symbol != "" {
		return fmt.Sprintf("%v %s", q.v, symbol)
	}
	return fmt.Sprintf("%v", q.v)
}
