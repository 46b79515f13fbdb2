package qmath

import "fmt"

// EasingKind names a time-remapping curve for animation progress.
type EasingKind string

const (
	EaseLinear EasingKind = "linear"
	EaseIn     EasingKind = "ease-in"
	EaseOut    EasingKind = "ease-out"
	EaseInOut  EasingKind = "ease-in-out"
)

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// QuadIn starts slow and accelerates: f(t) = t².
func QuadIn(t float64) float64 { return t * t }

// QuadOut starts fast and decelerates: f(t) = t(2−t).
func QuadOut(t float64) float64 { return t * (2 - t) }

// QuadInOut accelerates through the first half and decelerates through the
// second: f(t) = 2t² for t < 0.5, else −1 + (4−2t)t.
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Fn returns the curve function for the kind. Unknown kinds resolve to
// QuadInOut, matching the animation default.
func (k EasingKind) Fn() func(float64) float64 {
	switch k {
	case EaseLinear:
		return Linear
	case EaseIn:
		return QuadIn
	case EaseOut:
		return QuadOut
	default:
		return QuadInOut
	}
}

func (k EasingKind) String() string { return string(k) }

// ParseEasing validates a curve name from config or CLI flags.
func ParseEasing(s string) (EasingKind, error) {
	switch EasingKind(s) {
	case EaseLinear, EaseIn, EaseOut, EaseInOut:
		return EasingKind(s), nil
	}
	return "", fmt.Errorf("unknown easing curve: %q", s)
}
