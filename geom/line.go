package geom

import (
	"fmt"

	"github.com/veclab/dim"
)

// Line2 is the line segment between two points.
type Line2[S dim.Float, U dim.Unit] struct {
	A, B Point2[S, U]
}

// Vec returns the displacement from A to B.
func (l Line2[S, U]) Vec() Vec2[S, U] {
	return l.B.Sub(l.A)
}

// Length returns the length of the segment as a quantity carrying the
// segment's tag.
func (l Line2[S, U]) Length() dim.Quantity[S, U] {
	return l.Vec().Magnitude()
}

func (l Line2[S, U]) Midpoint() Point2[S, U] {
	return l.A.Lerp(l.B, 0.5)
}

// PointAt returns the point at parameter t, where t zero is A and t
// one is B.
func (l Line2[S, U]) PointAt(t S) Point2[S, U] {
	return l.A.Lerp(l.B, t)
}

func (l Line2[S, U]) String() string {
	return fmt.Sprintf("line(a=%s, b=%s)", l.A, l.B)
}
