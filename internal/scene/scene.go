// Package scene owns the mutable view state of the reflector demo and
// turns it into drawable traces. State lives in an explicit [Scene]
// value owned by whichever presenter drives it; there are no package
// globals. Every parameter change is followed by a synchronous
// [Retrace] call, so a trace is always a pure function of the scene.
package scene

import (
	"fmt"
	"strings"

	"github.com/san-kum/paraflect/internal/geom"
)

// Mode selects which canonical bundle the scene shows.
type Mode int

const (
	// ModeParallel: vertical rays from above, converging on the focus.
	ModeParallel Mode = iota
	// ModeFocal: rays leaving the focus, reflecting parallel to the axis.
	ModeFocal
)

func (m Mode) String() string {
	if m == ModeFocal {
		return "focal"
	}
	return "parallel"
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "parallel":
		return ModeParallel, nil
	case "focal":
		return ModeFocal, nil
	default:
		return ModeParallel, fmt.Errorf("scene: unknown mode %q (want parallel or focal)", s)
	}
}

// View defaults and presenter bounds.
const (
	DefaultFocus = 1.0
	DefaultRays  = 5

	MinFocus = 0.5
	MaxFocus = 5.0
	MinRays  = 1
	MaxRays  = 15

	DefaultSpanLo = -3.0
	DefaultSpanHi = 3.0

	CurveLo      = -8.0
	CurveHi      = 8.0
	CurveSamples = 400

	// ReflectedLength is how far past the strike point a reflected
	// segment is drawn.
	ReflectedLength = 12.0
)

// Scene is the full view state: focal length, ray count, bundle mode
// and the x span of the parallel bundle.
type Scene struct {
	Focus  float64
	Rays   int
	Mode   Mode
	SpanLo float64
	SpanHi float64
}

// NewScene returns the default scene: focus 1.0, 5 rays, parallel mode.
func NewScene() Scene {
	return Scene{
		Focus:  DefaultFocus,
		Rays:   DefaultRays,
		Mode:   ModeParallel,
		SpanLo: DefaultSpanLo,
		SpanHi: DefaultSpanHi,
	}
}

// SetFocus replaces the focal length, refusing non-positive values.
func (s *Scene) SetFocus(f float64) error {
	if f <= 0 {
		return geom.ErrNonPositiveFocus
	}
	s.Focus = f
	return nil
}

// AdjustFocus nudges the focal length by delta, clamped to the control
// range [MinFocus, MaxFocus].
func (s *Scene) AdjustFocus(delta float64) {
	s.Focus = clampF(s.Focus+delta, MinFocus, MaxFocus)
}

// SetRays replaces the ray count, clamped to [MinRays, MaxRays].
func (s *Scene) SetRays(n int) {
	s.Rays = clampI(n, MinRays, MaxRays)
}

// ToggleMode flips between parallel and focal bundles.
func (s *Scene) ToggleMode() {
	if s.Mode == ModeParallel {
		s.Mode = ModeFocal
	} else {
		s.Mode = ModeParallel
	}
}

// Reset restores the defaults.
func (s *Scene) Reset() {
	*s = NewScene()
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
