package config

import (
	"math"
	"sort"

	"github.com/san-kum/blochview/internal/qmath"
)

// Presets names the six cardinal Bloch-sphere states.
var Presets = map[string]qmath.Spherical{
	"zero":    {Theta: 0, Phi: 0},
	"one":     {Theta: math.Pi, Phi: 0},
	"plus":    {Theta: math.Pi / 2, Phi: 0},
	"minus":   {Theta: math.Pi / 2, Phi: math.Pi},
	"plus-i":  {Theta: math.Pi / 2, Phi: math.Pi / 2},
	"minus-i": {Theta: math.Pi / 2, Phi: 3 * math.Pi / 2},
}

// PresetLabels maps preset names to their ket notation for display.
var PresetLabels = map[string]string{
	"zero":    "|0⟩",
	"one":     "|1⟩",
	"plus":    "|+⟩",
	"minus":   "|−⟩",
	"plus-i":  "|+i⟩",
	"minus-i": "|−i⟩",
}

// GetPreset looks up a named state.
func GetPreset(name string) (qmath.Spherical, bool) {
	s, ok := Presets[name]
	return s, ok
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
