package curve3

import "math"

// Ellipse is a planar curve traced in the local XY plane around Center, with
// independent semi-axes A (X extent) and B (Y extent). All evaluated points
// share the anchor's Z coordinate.
//
// Zero or negative semi-axes are legal; they describe degenerate or mirrored
// ellipses and evaluate like any other.
type Ellipse struct {
	Center Vec3
	A      float64
	B      float64
}

var _ Curve = Ellipse{}

// NewEllipse returns the ellipse with semi-axes a and b anchored at center.
func NewEllipse(center Vec3, a, b float64) Ellipse {
	return Ellipse{Center: center, A: a, B: b}
}

// Eval implements Curve.
func (e Ellipse) Eval(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: e.Center.X + e.A*cos,
		Y: e.Center.Y + e.B*sin,
		Z: e.Center.Z,
	}
}

// Deriv implements Curve.
func (e Ellipse) Deriv(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: -e.A * sin,
		Y: e.B * cos,
	}
}

// Kind implements Curve.
func (e Ellipse) Kind() Kind {
	return KindEllipse
}

func (e Ellipse) Translate(v Vec3) Ellipse {
	e.Center = e.Center.Add(v)
	return e
}

func (e Ellipse) IsInf() bool {
	return e.Center.IsInf() || math.IsInf(e.A, 0) || math.IsInf(e.B, 0)
}

func (e Ellipse) IsNaN() bool {
	return e.Center.IsNaN() || math.IsNaN(e.A) || math.IsNaN(e.B)
}
