package geom

import (
	"fmt"
	"image"

	"github.com/veclab/dim"
)

// Rect2 is an axis aligned rectangle given by its minimum and maximum
// corners. The constructors keep Min at or below Max on both axes.
type Rect2[S dim.Float, U dim.Unit] struct {
	Min, Max Point2[S, U]
}

// RectWithPoints returns the rectangle spanned by two arbitrary
// corners.
func RectWithPoints[S dim.Float, U dim.Unit](a, b Point2[S, U]) Rect2[S, U] {
	return Rect2[S, U]{
		Min: Point2[S, U]{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Point2[S, U]{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// RectWithSize returns a rectangle with its minimum corner at the
// origin.
func RectWithSize[S dim.Float, U dim.Unit](size Vec2[S, U]) Rect2[S, U] {
	return RectWithOriginAndSize(Point2[S, U]{}, size)
}

// RectWithOriginAndSize returns a rectangle with its minimum corner at
// origin. Negative size components are clamped to zero.
func RectWithOriginAndSize[S dim.Float, U dim.Unit](origin Point2[S, U], size Vec2[S, U]) Rect2[S, U] {
	return Rect2[S, U]{
		Min: origin,
		Max: origin.Add(size.Max(Vec2[S, U]{})),
	}
}

// RectWithCenterAndSize returns a rectangle centered on center.
func RectWithCenterAndSize[S dim.Float, U dim.Unit](center Point2[S, U], size Vec2[S, U]) Rect2[S, U] {
	half := size.Max(Vec2[S, U]{}).Mul(0.5)
	return Rect2[S, U]{
		Min: center.SubVec(half),
		Max: center.Add(half),
	}
}

func (r Rect2[S, U]) Center() Point2[S, U] {
	return r.Min.Lerp(r.Max, 0.5)
}

func (r Rect2[S, U]) Size() Vec2[S, U] {
	return r.Max.Sub(r.Min)
}

func (r Rect2[S, U]) TopLeft() Point2[S, U] {
	return r.Min
}

func (r Rect2[S, U]) TopRight() Point2[S, U] {
	return Point2[S, U]{X: r.Max.X, Y: r.Min.Y}
}

func (r Rect2[S, U]) BottomLeft() Point2[S, U] {
	return Point2[S, U]{X: r.Min.X, Y: r.Max.Y}
}

func (r Rect2[S, U]) BottomRight() Point2[S, U] {
	return r.Max
}

func (r Rect2[S, U]) Translate(offset Vec2[S, U]) Rect2[S, U] {
	r.Min = r.Min.Add(offset)
	r.Max = r.Max.Add(offset)
	return r
}

func (r Rect2[S, U]) Contains(p Point2[S, U]) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect2[S, U]) Union(other Rect2[S, U]) Rect2[S, U] {
	return Rect2[S, U]{
		Min: Point2[S, U]{X: min(r.Min.X, other.Min.X), Y: min(r.Min.Y, other.Min.Y)},
		Max: Point2[S, U]{X: max(r.Max.X, other.Max.X), Y: max(r.Max.Y, other.Max.Y)},
	}
}

// Intersect returns the overlap of the two rectangles. ok is false if
// they do not overlap.
func (r Rect2[S, U]) Intersect(other Rect2[S, U]) (intersection Rect2[S, U], ok bool) {
	intersection = Rect2[S, U]{
		Min: Point2[S, U]{X: max(r.Min.X, other.Min.X), Y: max(r.Min.Y, other.Min.Y)},
		Max: Point2[S, U]{X: min(r.Max.X, other.Max.X), Y: min(r.Max.Y, other.Max.Y)},
	}

	if intersection.Min.X > intersection.Max.X || intersection.Min.Y > intersection.Max.Y {
		return Rect2[S, U]{}, false
	}

	return intersection, true
}

func (r Rect2[S, U]) ToImageRectangle() image.Rectangle {
	return image.Rectangle{
		Min: r.Min.ToImagePoint(),
		Max: r.Max.ToImagePoint(),
	}
}

func (r Rect2[S, U]) String() string {
	return fmt.Sprintf("rect(min=%s, max=%s)", r.Min, r.Max)
}
