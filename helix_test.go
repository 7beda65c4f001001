package curve3

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHelixEval(t *testing.T) {
	// One full turn of a unit circular helix advances Z by exactly the pitch.
	h := NewHelix(V(0, 0, 0), 1, 2*math.Pi)
	diff(t, V(1, 0, 0), h.Eval(0))
	diff(t, V(1, 0, 2*math.Pi), h.Eval(2*math.Pi), cmpopts.EquateApprox(0, 1e-9))

	quarter := h.Eval(math.Pi / 2)
	diff(t, V(0, 1, math.Pi/2), quarter, cmpopts.EquateApprox(0, 1e-9))

	unit := NewHelix(V(0, 0, 0), 1, 1)
	diff(t, V(1, 0, 1), unit.Eval(2*math.Pi), cmpopts.EquateApprox(0, 1e-9))
}

func TestHelixDerivConstantZ(t *testing.T) {
	h := Helix{Center: V(1, 2, 3), A: 4, B: 5, Step: 7, StartAngle: 0.25}
	want := h.Step / (2 * math.Pi)
	for _, angle := range sampleAngles {
		if z := h.Deriv(angle).Z; z != want {
			t.Errorf("got derivative z %v at angle %v, expected %v exactly", z, angle, want)
		}
	}
}

func TestHelixMonotonicZ(t *testing.T) {
	h := NewHelix(V(0, 0, 0), 3, 0.5)
	prev := math.Inf(-1)
	for angle := -10.0; angle <= 10; angle += 0.25 {
		z := h.Eval(angle).Z
		if z <= prev {
			t.Errorf("z %v at angle %v not greater than previous %v", z, angle, prev)
		}
		prev = z
	}
}

func TestHelixStartAngle(t *testing.T) {
	// The phase offset shifts only the Z advance, not the XY position.
	plain := Helix{Center: V(0, 0, 0), A: 2, B: 2, Step: 4}
	shifted := Helix{Center: V(0, 0, 0), A: 2, B: 2, Step: 4, StartAngle: math.Pi}
	for _, angle := range sampleAngles {
		p, s := plain.Eval(angle), shifted.Eval(angle)
		if p.X != s.X || p.Y != s.Y {
			t.Errorf("XY changed by phase offset at angle %v: %v vs %v", angle, p, s)
		}
		if d := math.Abs((s.Z - p.Z) - 2); d > 1e-9 {
			t.Errorf("got z shift %v at angle %v, expected 2", s.Z-p.Z, angle)
		}
	}
}

func TestHelixElliptical(t *testing.T) {
	// The XY cross-section follows the ellipse formulas.
	h := Helix{Center: V(1, -1, 0), A: 3, B: 0.5, Step: 1}
	e := NewEllipse(V(1, -1, 0), 3, 0.5)
	for _, angle := range sampleAngles {
		hp, ep := h.Eval(angle), e.Eval(angle)
		if hp.X != ep.X || hp.Y != ep.Y {
			t.Errorf("got XY (%v, %v) at angle %v, expected (%v, %v)", hp.X, hp.Y, angle, ep.X, ep.Y)
		}
		hd, ed := h.Deriv(angle), e.Deriv(angle)
		if hd.X != ed.X || hd.Y != ed.Y {
			t.Errorf("got tangent XY (%v, %v) at angle %v, expected (%v, %v)", hd.X, hd.Y, angle, ed.X, ed.Y)
		}
	}
}

func TestHelixDerivMatchesNumerical(t *testing.T) {
	h := Helix{Center: V(0, 2, -1), A: 1.5, B: 2.5, Step: 3, StartAngle: 0.5}
	const step = 1e-6
	for _, angle := range sampleAngles {
		numeric := h.Eval(angle + step).Sub(h.Eval(angle - step)).Scale(1 / (2 * step))
		diff(t, h.Deriv(angle), numeric, cmpopts.EquateApprox(0, 1e-5))
	}
}

func TestHelixZeroPitch(t *testing.T) {
	// Zero pitch degenerates to a planar ellipse.
	h := NewHelix(V(0, 0, 5), 2, 0)
	for _, angle := range sampleAngles {
		if z := h.Eval(angle).Z; z != 5 {
			t.Errorf("got z %v at angle %v, expected 5 exactly", z, angle)
		}
		if z := h.Deriv(angle).Z; z != 0 {
			t.Errorf("got derivative z %v at angle %v, expected 0 exactly", z, angle)
		}
	}
}

func TestHelixTranslate(t *testing.T) {
	h := NewHelix(V(0, 0, 0), 1, 2).Translate(V(0, 0, 10))
	diff(t, NewHelix(V(0, 0, 10), 1, 2), h)
}

func TestHelixIsInfIsNaN(t *testing.T) {
	if NewHelix(V(0, 0, 0), 1, 1).IsInf() {
		t.Error("helix is infinite but shouldn't be")
	}
	if !NewHelix(V(0, 0, 0), 1, math.Inf(1)).IsInf() {
		t.Error("helix is finite but shouldn't be")
	}
	if !(Helix{StartAngle: math.NaN()}).IsNaN() {
		t.Error("helix is not NaN but should be")
	}
}
