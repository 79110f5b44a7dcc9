package geom

import "github.com/veclab/dim"

// CubicBezier is a cubic bezier curve given by its four control
// points. The curve runs from P0 to P3; P1 and P2 shape it.
type CubicBezier[S dim.Float, U dim.Unit] struct {
	P0, P1, P2, P3 Point2[S, U]
}

// PointAt evaluates the curve at parameter t in [0, 1].
func (c CubicBezier[S, U]) PointAt(t S) Point2[S, U] {
	u := 1 - t
	uu := u * u
	uuu := uu * u
	tt := t * t
	ttt := tt * t

	return Point2[S, U]{
		X: uuu*c.P0.X + 3*uu*t*c.P1.X + 3*u*tt*c.P2.X + ttt*c.P3.X,
		Y: uuu*c.P0.Y + 3*uu*t*c.P1.Y + 3*u*tt*c.P2.Y + ttt*c.P3.Y,
	}
}

// Derivative returns the tangent vector of the curve at parameter t.
func (c CubicBezier[S, U]) Derivative(t S) Vec2[S, U] {
	u := 1 - t

	d := c.P1.Sub(c.P0).Mul(3 * u * u)
	d = d.Add(c.P2.Sub(c.P1).Mul(6 * u * t))
	return d.Add(c.P3.Sub(c.P2).Mul(3 * t * t))
}

// ArcLength approximates the arc length of the curve from 0 to t using
// Simpson's rule over the given number of steps. Odd step counts are
// rounded up to the next even count.
func (c CubicBezier[S, U]) ArcLength(t S, steps int) dim.Quantity[S, U] {
	if steps < 2 {
		steps = 2
	}
	if steps%2 != 0 {
		steps++
	}

	h := t / S(steps)
	sum := c.Derivative(0).Length() + c.Derivative(t).Length()

	for i := 1; i < steps; i++ {
		d := c.Derivative(S(i) * h).Length()
		if i%2 == 0 {
			sum += 2 * d
		} else {
			sum += 4 * d
		}
	}

	return dim.Q[U](sum * h / 3)
}

// TForLength returns the parameter t at which the curve reaches the
// given arc length, found by bisection with a Newton refinement.
// Lengths outside the curve clamp to 0 or 1.
func (c CubicBezier[S, U]) TForLength(length dim.Quantity[S, U], steps int) S {
	total := c.ArcLength(1, steps)
	target := length.Clamp(dim.Q[U, S](0), total)

	var lo, hi S = 0, 1
	for range steps {
		mid := (lo + hi) / 2
		if c.ArcLength(mid, steps).Less(target) {
			lo = mid
		} else {
			hi = mid
		}
	}

	t := (lo + hi) / 2
	for range 5 {
		f := c.ArcLength(t, steps).Sub(target).Value()
		dt := c.Derivative(t).Length()
		if dt != 0 {
			t -= f / dt
		}
		t = min(max(t, 0), 1)
	}

	return t
}
