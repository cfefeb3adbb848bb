package config

import "sort"

// Presets are ready-made demo setups.
var Presets = map[string]*Config{
	"classic": {
		Focus: 1.0, Rays: 5, Mode: "parallel",
		Span: SpanConfig{Lo: -3, Hi: 3},
	},
	"wide": {
		Focus: 1.0, Rays: 11, Mode: "parallel",
		Span: SpanConfig{Lo: -6, Hi: 6},
	},
	"tight": {
		Focus: 0.5, Rays: 9, Mode: "parallel",
		Span: SpanConfig{Lo: -2, Hi: 2},
	},
	"headlamp": {
		Focus: 1.0, Rays: 9, Mode: "focal",
		Span: SpanConfig{Lo: -3, Hi: 3},
	},
	"dish": {
		Focus: 4.0, Rays: 15, Mode: "parallel",
		Span: SpanConfig{Lo: -6, Hi: 6},
	},
}

// GetPreset returns the named preset with display defaults filled in,
// or nil if the name is unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Focus = p.Focus
	cfg.Rays = p.Rays
	cfg.Mode = p.Mode
	cfg.Span = p.Span
	return cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
