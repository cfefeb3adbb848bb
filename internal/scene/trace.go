package scene

import (
	"math"

	"github.com/san-kum/paraflect/internal/geom"
)

// Segment is a drawable line segment in world coordinates.
type Segment struct {
	A, B geom.Vec2
}

// RayTrace pairs one ray of the bundle with its reflection. OK is false
// for rays that never meet the curve; such rays carry no segments and
// presenters skip them without aborting the rest of the bundle.
type RayTrace struct {
	Ray       geom.Ray
	Hit       geom.Hit
	OK        bool
	Incident  Segment
	Reflected Segment
}

// Stats summarizes how well a trace demonstrates the reflector
// property for its mode.
type Stats struct {
	Hits   int
	Misses int
	// FocusSpread is the mean distance of reflected lines from the
	// focus (parallel mode; ideally 0).
	FocusSpread float64
	// AxisDeviation is the mean |dx| of reflected directions (focal
	// mode; rays from the focus leave parallel to the y axis, so
	// ideally 0).
	AxisDeviation float64
}

// Trace is one full recomputation of the scene: the sampled curve,
// reference geometry and every ray's path.
type Trace struct {
	Focus     float64
	Mode      Mode
	Curve     []geom.Vec2
	FocusPt   geom.Vec2
	Directrix float64
	Rays      []RayTrace
	Stats     Stats
}

// Retrace recomputes the scene from scratch. It is a pure function of
// its argument: nothing is cached between calls.
func Retrace(s Scene) (Trace, error) {
	p, err := geom.NewParabola(s.Focus)
	if err != nil {
		return Trace{}, err
	}

	var rays []geom.Ray
	switch s.Mode {
	case ModeFocal:
		rays = geom.FocalBundle(p, s.Rays)
	default:
		rays = geom.ParallelBundle(s.Rays, s.SpanLo, s.SpanHi)
	}

	tr := Trace{
		Focus:     s.Focus,
		Mode:      s.Mode,
		Curve:     p.CurvePoints(CurveLo, CurveHi, CurveSamples),
		FocusPt:   p.FocusPoint(),
		Directrix: p.Directrix(),
		Rays:      make([]RayTrace, 0, len(rays)),
	}

	var spreadSum, devSum float64
	for _, r := range rays {
		hit, ok := geom.ReflectRay(p, r)
		rt := RayTrace{Ray: r, Hit: hit, OK: ok}
		if !ok {
			tr.Stats.Misses++
			tr.Rays = append(tr.Rays, rt)
			continue
		}
		rt.Incident = Segment{A: r.Origin, B: hit.Point}
		rt.Reflected = Segment{A: hit.Point, B: hit.Point.Add(hit.Reflected.Scale(ReflectedLength))}
		tr.Stats.Hits++
		spreadSum += lineDistance(tr.FocusPt, hit.Point, hit.Reflected)
		devSum += math.Abs(hit.Reflected.X)
		tr.Rays = append(tr.Rays, rt)
	}

	if tr.Stats.Hits > 0 {
		tr.Stats.FocusSpread = spreadSum / float64(tr.Stats.Hits)
		tr.Stats.AxisDeviation = devSum / float64(tr.Stats.Hits)
	}
	return tr, nil
}

// Segments flattens the trace into labeled drawable segments, in ray
// order with the incident leg before the reflected one.
func (t Trace) Segments() []LabeledSegment {
	out := make([]LabeledSegment, 0, 2*t.Stats.Hits)
	for i, rt := range t.Rays {
		if !rt.OK {
			continue
		}
		out = append(out,
			LabeledSegment{Ray: i, Kind: KindIncident, Segment: rt.Incident},
			LabeledSegment{Ray: i, Kind: KindReflected, Segment: rt.Reflected},
		)
	}
	return out
}

// Segment kinds for storage and export.
const (
	KindIncident  = "incident"
	KindReflected = "reflected"
)

// LabeledSegment tags a segment with its ray index and leg kind.
type LabeledSegment struct {
	Ray  int
	Kind string
	Segment
}

// lineDistance is the perpendicular distance from q to the line through
// p along unit-ish direction d.
func lineDistance(q, p, d geom.Vec2) float64 {
	n := d.Normalize()
	v := q.Sub(p)
	return math.Abs(v.X*n.Y - v.Y*n.X)
}
