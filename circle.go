package curve3

import "math"

// Circle is an [Ellipse] with both semi-axes equal to Radius. It is a
// refinement, not a separate algorithm: evaluation delegates to the ellipse
// formula.
type Circle struct {
	Center Vec3
	Radius float64
}

var _ Curve = Circle{}

// NewCircle returns the circle with the given radius anchored at center.
func NewCircle(center Vec3, r float64) Circle {
	return Circle{Center: center, Radius: r}
}

// Ellipse returns the circle widened to an ellipse with A == B == Radius.
func (c Circle) Ellipse() Ellipse {
	return Ellipse{Center: c.Center, A: c.Radius, B: c.Radius}
}

// Eval implements Curve.
func (c Circle) Eval(angle float64) Vec3 {
	return c.Ellipse().Eval(angle)
}

// Deriv implements Curve.
func (c Circle) Deriv(angle float64) Vec3 {
	return c.Ellipse().Deriv(angle)
}

// Kind implements Curve.
func (c Circle) Kind() Kind {
	return KindCircle
}

func (c Circle) Translate(v Vec3) Circle {
	c.Center = c.Center.Add(v)
	return c
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}
