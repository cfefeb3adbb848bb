package viz

import (
	"github.com/san-kum/paraflect/internal/geom"
	"github.com/san-kum/paraflect/internal/scene"
)

// World bounds shown by default, matching the demo's region of
// interest around the reflector.
const (
	WorldXMin = -10.0
	WorldXMax = 10.0
	WorldYMin = -2.0
	WorldYMax = 8.0
)

// Viewport maps world coordinates onto a braille canvas. Y grows
// upward in world space and downward on the canvas; the viewport flips
// it.
type Viewport struct {
	Canvas                 *Canvas
	XMin, XMax, YMin, YMax float64
}

// NewViewport wraps a fresh canvas of w x h characters over the default
// world bounds.
func NewViewport(w, h int) *Viewport {
	return &Viewport{
		Canvas: NewCanvas(w, h),
		XMin:   WorldXMin, XMax: WorldXMax,
		YMin: WorldYMin, YMax: WorldYMax,
	}
}

func (v *Viewport) dot(p geom.Vec2) (int, int) {
	x := (p.X - v.XMin) / (v.XMax - v.XMin) * float64(v.Canvas.DotWidth()-1)
	y := (1 - (p.Y-v.YMin)/(v.YMax-v.YMin)) * float64(v.Canvas.DotHeight()-1)
	return int(x + 0.5), int(y + 0.5)
}

// Segment draws one world-space segment.
func (v *Viewport) Segment(s scene.Segment) {
	x0, y0 := v.dot(s.A)
	x1, y1 := v.dot(s.B)
	v.Canvas.Line(x0, y0, x1, y1)
}

// Polyline joins consecutive points, used for the sampled curve.
func (v *Viewport) Polyline(pts []geom.Vec2) {
	for i := 1; i < len(pts); i++ {
		v.Segment(scene.Segment{A: pts[i-1], B: pts[i]})
	}
}

// HLineDashed draws a dashed horizontal line at world height y, used
// for the directrix.
func (v *Viewport) HLineDashed(y float64) {
	x0, yy := v.dot(geom.Vec2{X: v.XMin, Y: y})
	x1, _ := v.dot(geom.Vec2{X: v.XMax, Y: y})
	for x := x0; x <= x1; x += 4 {
		v.Canvas.Set(x, yy)
		v.Canvas.Set(x+1, yy)
	}
}

// Mark draws a small cross at a world point, used for the focus.
func (v *Viewport) Mark(p geom.Vec2) {
	x, y := v.dot(p)
	for d := -2; d <= 2; d++ {
		v.Canvas.Set(x+d, y)
		v.Canvas.Set(x, y+d)
	}
}

// DrawTrace renders a full trace: curve, directrix, focus marker and
// every ray that hit. Rays without an intersection are skipped.
func (v *Viewport) DrawTrace(t scene.Trace) {
	v.Canvas.Clear()
	v.Polyline(t.Curve)
	v.HLineDashed(t.Directrix)
	v.Mark(t.FocusPt)
	for _, rt := range t.Rays {
		if !rt.OK {
			continue
		}
		v.Segment(rt.Incident)
		v.Segment(rt.Reflected)
	}
}
