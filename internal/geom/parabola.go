package geom

import "math"

// Parabola is the reflector curve y = x²/(4f), vertex at the origin,
// opening upward. Focus is the focal length f and must stay positive.
type Parabola struct {
	Focus float64
}

// NewParabola builds a reflector with focal length f.
func NewParabola(f float64) (Parabola, error) {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return Parabola{}, ErrNonPositiveFocus
	}
	return Parabola{Focus: f}, nil
}

// PointOnCurve returns the curve height x²/(4f).
func (p Parabola) PointOnCurve(x float64) float64 {
	return x * x / (4 * p.Focus)
}

// TangentSlope returns dy/dx = x/(2f) at the given x.
func (p Parabola) TangentSlope(x float64) float64 {
	return x / (2 * p.Focus)
}

// NormalAt returns the unit normal at the given x. At the vertex the
// tangent is horizontal and the normal is exactly (0,1); elsewhere it is
// the normalized (1, -1/slope). The vertex case is checked explicitly so
// no division by zero ever happens.
func (p Parabola) NormalAt(x float64) Vec2 {
	slope := p.TangentSlope(x)
	if slope == 0 {
		return Vec2{0, 1}
	}
	return Vec2{1, -1 / slope}.Normalize()
}

// FocusPoint returns (0, f).
func (p Parabola) FocusPoint() Vec2 {
	return Vec2{0, p.Focus}
}

// Directrix returns the height of the directrix line, y = -f. The
// directrix plays no role in the reflection math; presenters draw it
// for reference.
func (p Parabola) Directrix() float64 {
	return -p.Focus
}

// CurvePoints samples the curve at n evenly spaced x positions across
// [lo, hi] inclusive. n = 1 yields the single sample at lo.
func (p Parabola) CurvePoints(lo, hi float64, n int) []Vec2 {
	if n < 1 {
		return nil
	}
	pts := make([]Vec2, n)
	for i := range pts {
		x := lo
		if n > 1 {
			x = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		pts[i] = Vec2{x, p.PointOnCurve(x)}
	}
	return pts
}
