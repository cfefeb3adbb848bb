// Package export renders reflector traces as SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/paraflect/internal/geom"
	"github.com/san-kum/paraflect/internal/scene"
)

// World window of the export, matching the interactive view.
const (
	xMin = -10.0
	xMax = 10.0
	yMin = -2.0
	yMax = 8.0
)

// TraceToSVG renders a full trace: curve, dashed directrix, focus
// marker, blue incident rays and red reflected rays on a dark
// background. Rays without a hit contribute nothing.
func TraceToSVG(t scene.Trace, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Curve.
	if len(t.Curve) > 1 {
		sb.WriteString(`<path fill="none" stroke="#cccccc" stroke-width="2" d="M`)
		for i, p := range t.Curve {
			x, y := project(p, width, height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	// Directrix.
	dx0, dy0 := project(geom.Vec2{X: xMin, Y: t.Directrix}, width, height)
	dx1, _ := project(geom.Vec2{X: xMax, Y: t.Directrix}, width, height)
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#666666" stroke-width="1" stroke-dasharray="6,4"/>
`, dx0, dy0, dx1, dy0))

	// Focus marker.
	fx, fy := project(t.FocusPt, width, height)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="#ff4444"/>
`, fx, fy))

	// Rays: incident blue, reflected red.
	for _, rt := range t.Rays {
		if !rt.OK {
			continue
		}
		writeSegment(&sb, rt.Incident, "#4488ff", "0.6", width, height)
		writeSegment(&sb, rt.Reflected, "#ff6644", "0.8", width, height)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeSegment(sb *strings.Builder, s scene.Segment, color, opacity string, w, h int) {
	x0, y0 := project(s.A, w, h)
	x1, y1 := project(s.B, w, h)
	fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5" stroke-opacity="%s"/>
`, x0, y0, x1, y1, color, opacity)
}

func project(p geom.Vec2, w, h int) (float64, float64) {
	x := (p.X - xMin) / (xMax - xMin) * float64(w)
	y := float64(h) - (p.Y-yMin)/(yMax-yMin)*float64(h)
	return x, y
}
