package curve3

import "math"

// Helix combines elliptical motion in the local XY plane with linear Z
// advancement proportional to the angle. Step is the pitch, the Z distance
// advanced per full 2π turn, and StartAngle a phase offset added to the
// angle before computing the Z advance.
type Helix struct {
	Center     Vec3
	A          float64
	B          float64
	Step       float64
	StartAngle float64
}

var _ Curve = Helix{}

// NewHelix returns a circular helix with radius r and pitch step, starting
// at phase zero.
func NewHelix(center Vec3, r, step float64) Helix {
	return Helix{Center: center, A: r, B: r, Step: step}
}

// Eval implements Curve.
func (h Helix) Eval(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: h.Center.X + h.A*cos,
		Y: h.Center.Y + h.B*sin,
		Z: h.Center.Z + (h.StartAngle+angle)/(2*math.Pi)*h.Step,
	}
}

// Deriv implements Curve. The Z component is the constant Step/(2π),
// reflecting uniform linear advance per unit angle.
func (h Helix) Deriv(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: -h.A * sin,
		Y: h.B * cos,
		Z: h.Step / (2 * math.Pi),
	}
}

// Kind implements Curve.
func (h Helix) Kind() Kind {
	return KindHelix
}

func (h Helix) Translate(v Vec3) Helix {
	h.Center = h.Center.Add(v)
	return h
}

func (h Helix) IsInf() bool {
	return h.Center.IsInf() ||
		math.IsInf(h.A, 0) ||
		math.IsInf(h.B, 0) ||
		math.IsInf(h.Step, 0) ||
		math.IsInf(h.StartAngle, 0)
}

func (h Helix) IsNaN() bool {
	return h.Center.IsNaN() ||
		math.IsNaN(h.A) ||
		math.IsNaN(h.B) ||
		math.IsNaN(h.Step) ||
		math.IsNaN(h.StartAngle)
}
