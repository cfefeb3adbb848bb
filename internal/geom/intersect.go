package geom

import "math"

// focusTol is the tolerance for recognizing a ray that starts exactly at
// the focus (0, f).
const focusTol = 1e-8

// RayClass tags which intersection branch applies to a ray. Keeping the
// dispatch explicit keeps the differing t-acceptance policies of the
// branches visible: the focus branch accepts t >= 0 while the vertical
// branch demands t > 0.
type RayClass int

const (
	// ClassFocusOrigin marks rays starting at the focus (0, f). The
	// general quadratic is singular for these when dx = 0, so they get
	// a dedicated algebraic path.
	ClassFocusOrigin RayClass = iota
	// ClassVertical marks dx = 0 rays from anywhere but the focus.
	ClassVertical
	// ClassGeneral marks everything else (dx != 0).
	ClassGeneral
)

func (c RayClass) String() string {
	switch c {
	case ClassFocusOrigin:
		return "focus-origin"
	case ClassVertical:
		return "vertical"
	default:
		return "general"
	}
}

// Classify assigns a ray to its intersection branch for the given curve.
func Classify(p Parabola, r Ray) RayClass {
	if math.Abs(r.Origin.X) <= focusTol && math.Abs(r.Origin.Y-p.Focus) <= focusTol {
		return ClassFocusOrigin
	}
	if r.Dir.X == 0 {
		return ClassVertical
	}
	return ClassGeneral
}

// Intersect finds the parameter t at which the ray strikes the curve.
// ok is false when the ray never meets the curve in its forward
// direction; t is then meaningless.
func Intersect(p Parabola, r Ray) (t float64, ok bool) {
	switch Classify(p, r) {
	case ClassFocusOrigin:
		return intersectFromFocus(p, r)
	case ClassVertical:
		return intersectVertical(p, r)
	default:
		return intersectGeneral(p, r)
	}
}

// intersectFromFocus solves the quadratic from substituting
// x = t·dx, y = f + t·dy into y = x²/(4f):
//
//	(dx²/(4f))·t² - dy·t - f = 0
//
// The far root (+√D) is preferred; it is the one pointing along the ray
// for every direction leaving the focus toward the curve. t = 0 is
// accepted here.
//
// dx = 0 collapses the quadratic to the linear -dy·t - f = 0; that case
// is solved directly rather than dividing by a zero leading coefficient.
func intersectFromFocus(p Parabola, r Ray) (float64, bool) {
	dx, dy := r.Dir.X, r.Dir.Y

	a := dx * dx / (4 * p.Focus)
	b := -dy
	c := -p.Focus

	if a == 0 {
		// Straight down from the focus hits the vertex at t = f;
		// straight up never comes back to the curve.
		if b == 0 {
			return 0, false
		}
		t := -c / b
		if t < 0 {
			return 0, false
		}
		return t, true
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(disc)
	t := (-b + sqrtD) / (2 * a)
	if t < 0 {
		t = (-b - sqrtD) / (2 * a)
		if t < 0 {
			return 0, false
		}
	}
	return t, true
}

// intersectVertical handles dx = 0: the hit shares the origin's x, so
// only t remains to solve. dy = 0 is a degenerate point-ray and never
// hits. t must be strictly positive on this branch.
func intersectVertical(p Parabola, r Ray) (float64, bool) {
	if r.Dir.Y == 0 {
		return 0, false
	}
	yCurve := p.PointOnCurve(r.Origin.X)
	t := (yCurve - r.Origin.Y) / r.Dir.Y
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// intersectGeneral substitutes the full parametric line into the curve
// equation. Only the near root (-√D) counts: the reflector is opaque,
// so a ray whose nearest crossing lies behind it gets no hit even when
// the far root would be ahead.
func intersectGeneral(p Parabola, r Ray) (float64, bool) {
	x0, y0 := r.Origin.X, r.Origin.Y
	dx, dy := r.Dir.X, r.Dir.Y

	a := dx * dx
	b := 2*x0*dx - 4*p.Focus*dy
	c := x0*x0 - 4*p.Focus*y0

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// ReflectRay intersects the ray with the curve and mirrors it about the
// surface normal at the strike point. The returned direction is unit
// length whenever ok is true.
func ReflectRay(p Parabola, r Ray) (Hit, bool) {
	t, ok := Intersect(p, r)
	if !ok {
		return Hit{}, false
	}

	point := r.At(t)
	normal := p.NormalAt(point.X)
	incident := r.Dir.Normalize()

	return Hit{
		Point:     point,
		Reflected: incident.Reflect(normal),
		T:         t,
	}, true
}
