package geom_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/paraflect/internal/geom"
)

// distanceToLine returns the perpendicular distance from point q to the
// line through p with direction d.
func distanceToLine(q, p, d geom.Vec2) float64 {
	v := q.Sub(p)
	n := d.Normalize()
	return math.Abs(v.X*n.Y - v.Y*n.X)
}

var _ = Describe("parabolic reflector optics", func() {
	var p geom.Parabola

	BeforeEach(func() {
		var err error
		p, err = geom.NewParabola(1.0)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("rays leaving the focus", func() {
		It("reflect parallel to the axis, escaping upward", func() {
			for _, x := range []float64{-3, -1.2, 0.4, 2, 3} {
				target := geom.V2(x, p.PointOnCurve(x))
				dir := target.Sub(p.FocusPoint()).Normalize()
				r := geom.Ray{Origin: p.FocusPoint(), Dir: dir}

				hit, ok := geom.ReflectRay(p, r)
				Expect(ok).To(BeTrue(), "x=%v", x)
				Expect(hit.Point.X).To(BeNumerically("~", target.X, 1e-9))
				Expect(hit.Point.Y).To(BeNumerically("~", target.Y, 1e-9))
				Expect(hit.Reflected.X).To(BeNumerically("~", 0, 1e-9))
				Expect(hit.Reflected.Y).To(BeNumerically(">", 0))
			}
		})
	})

	Describe("axis-parallel rays", func() {
		It("reflect through the focus", func() {
			for _, r := range geom.ParallelBundle(9, -4, 4) {
				hit, ok := geom.ReflectRay(p, r)
				Expect(ok).To(BeTrue())
				Expect(hit.Point.X).To(BeNumerically("~", r.Origin.X, 1e-9))
				Expect(distanceToLine(p.FocusPoint(), hit.Point, hit.Reflected)).
					To(BeNumerically("~", 0, 1e-9))
			}
		})

		It("holds for other focal lengths", func() {
			for _, f := range []float64{0.5, 2.5, 5.0} {
				q, err := geom.NewParabola(f)
				Expect(err).NotTo(HaveOccurred())
				hit, ok := geom.ReflectRay(q, geom.Ray{Origin: geom.V2(1.7, 10), Dir: geom.V2(0, -1)})
				Expect(ok).To(BeTrue())
				Expect(distanceToLine(q.FocusPoint(), hit.Point, hit.Reflected)).
					To(BeNumerically("~", 0, 1e-9))
			}
		})
	})

	Describe("reflected directions", func() {
		It("are always unit length when a hit is reported", func() {
			rays := append(geom.ParallelBundle(7, -3, 3), geom.FocalBundle(p, 7)...)
			for _, r := range rays {
				hit, ok := geom.ReflectRay(p, r)
				if !ok {
					continue
				}
				Expect(hit.Reflected.Len()).To(BeNumerically("~", 1.0, 1e-9))
				Expect(hit.T).To(BeNumerically(">=", 0))
			}
		})
	})

	Describe("rays that miss", func() {
		It("report absence rather than a negative-t hit", func() {
			_, ok := geom.ReflectRay(p, geom.Ray{Origin: geom.V2(0, -5), Dir: geom.V2(1, 0)})
			Expect(ok).To(BeFalse())

			_, ok = geom.ReflectRay(p, geom.Ray{Origin: geom.V2(2, 0), Dir: geom.V2(0, -1)})
			Expect(ok).To(BeFalse())
		})
	})
})
