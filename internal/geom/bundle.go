package geom

// bundleHeight is the y coordinate parallel rays start from, far above
// any curve the demo shows.
const bundleHeight = 10.0

// focalSpanLo and focalSpanHi bound the target x positions of the focal
// bundle across the reflector opening.
const (
	focalSpanLo = -3.0
	focalSpanHi = 3.0
)

// ParallelBundle generates n vertical downward rays with x evenly
// spaced across [lo, hi] inclusive; n = 1 yields the single ray at lo.
// All parallel rays reflect through the focus.
func ParallelBundle(n int, lo, hi float64) []Ray {
	if n < 1 {
		return nil
	}
	rays := make([]Ray, n)
	for i := range rays {
		x := lo
		if n > 1 {
			x = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		rays[i] = Ray{
			Origin: Vec2{x, bundleHeight},
			Dir:    Vec2{0, -1},
		}
	}
	return rays
}

// FocalBundle generates n rays leaving the focus (0, f) toward curve
// points with x evenly spaced across the opening. Directions are unit
// length. Rays from the focus reflect parallel to the axis.
func FocalBundle(p Parabola, n int) []Ray {
	if n < 1 {
		return nil
	}
	start := p.FocusPoint()
	rays := make([]Ray, n)
	for i := range rays {
		x := focalSpanLo
		if n > 1 {
			x = focalSpanLo + (focalSpanHi-focalSpanLo)*float64(i)/float64(n-1)
		}
		target := Vec2{x, p.PointOnCurve(x)}
		rays[i] = Ray{
			Origin: start,
			Dir:    target.Sub(start).Normalize(),
		}
	}
	return rays
}
