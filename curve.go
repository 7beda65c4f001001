package curve3

import (
	"cmp"
	"errors"
	"slices"
)

// ErrEmptyCollection is returned by queries that need at least one element,
// such as [RadiusBounds] on a collection with no circles.
var ErrEmptyCollection = errors.New("empty curve collection")

// Kind discriminates the closed set of curve variants. It allows filtering a
// heterogeneous collection by variant without any type recovery.
type Kind uint8

const (
	KindEllipse Kind = iota
	KindCircle
	KindHelix
)

func (k Kind) String() string {
	switch k {
	case KindEllipse:
		return "ellipse"
	case KindCircle:
		return "circle"
	case KindHelix:
		return "helix"
	default:
		return "unknown"
	}
}

// Curve describes a space curve parametrized by an angle in radians.
//
// Eval returns the point on the curve at the given angle and Deriv the
// instantaneous tangent vector, the literal derivative of the position
// formula with respect to the angle. The tangent is not normalized and not
// arc-length parametrized.
//
// The angle is unbounded; trigonometric periodicity applies naturally. Both
// methods are pure functions of the angle and the curve's construction
// parameters.
type Curve interface {
	Eval(angle float64) Vec3
	Deriv(angle float64) Vec3
	Kind() Kind
}

// AsCircle reports whether c is a [Circle] variant. A plain [Ellipse] with
// equal semi-axes is a negative result, not a match; only values constructed
// as circles carry the circle kind.
func AsCircle(c Curve) (Circle, bool) {
	circle, ok := c.(Circle)
	return circle, ok
}

// Circles collects the circle variants of a heterogeneous curve collection,
// preserving order.
func Circles(curves []Curve) []Circle {
	var circles []Circle
	for _, c := range curves {
		if circle, ok := AsCircle(c); ok {
			circles = append(circles, circle)
		}
	}
	return circles
}

// SortCirclesByRadius sorts circles in place by ascending radius. The sort
// is stable; circles of equal radius keep their relative order.
func SortCirclesByRadius(circles []Circle) {
	slices.SortStableFunc(circles, func(a, b Circle) int {
		return cmp.Compare(a.Radius, b.Radius)
	})
}

// RadiusBounds returns the smallest and largest radius among circles. It
// returns [ErrEmptyCollection] when there are no circles to inspect.
func RadiusBounds(circles []Circle) (min, max float64, err error) {
	if len(circles) == 0 {
		return 0, 0, ErrEmptyCollection
	}
	min = circles[0].Radius
	max = circles[0].Radius
	for _, c := range circles[1:] {
		if c.Radius < min {
			min = c.Radius
		}
		if c.Radius > max {
			max = c.Radius
		}
	}
	return min, max, nil
}

// RadiusSum returns the sum of all radii. The sum of an empty collection is
// zero.
func RadiusSum(circles []Circle) float64 {
	var sum float64
	for _, c := range circles {
		sum += c.Radius
	}
	return sum
}
