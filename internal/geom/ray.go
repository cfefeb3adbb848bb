package geom

// Ray is an immutable origin plus direction. The direction need not be
// unit length; Intersect works with the raw parametric form.
type Ray struct {
	Origin Vec2
	Dir    Vec2
}

// NewRay builds a ray, rejecting a zero direction.
func NewRay(origin, dir Vec2) (Ray, error) {
	if dir.IsZero() {
		return Ray{}, ErrZeroDirection
	}
	return Ray{Origin: origin, Dir: dir}, nil
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Hit is the result of a successful reflection: the strike point on the
// curve, the unit reflected direction, and the ray parameter t >= 0 at
// which the incident ray meets the curve.
type Hit struct {
	Point     Vec2
	Reflected Vec2
	T         float64
}
