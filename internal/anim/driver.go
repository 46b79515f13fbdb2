package anim

import (
	"time"

	"github.com/san-kum/blochview/internal/qmath"
)

const (
	DefaultDuration = 300 * time.Millisecond
	DefaultEasing   = qmath.EaseInOut
)

// Config controls how a Driver moves between states.
type Config struct {
	Enabled  bool
	Duration time.Duration
	Easing   qmath.EasingKind
}

// DefaultConfig returns animation enabled at 300ms with ease-in-out.
func DefaultConfig() Config {
	return Config{Enabled: true, Duration: DefaultDuration, Easing: DefaultEasing}
}

// Callbacks are invoked by the driver at most once per occurrence. Any
// field may be nil. OnChange fires only when the observable state actually
// changed (by theta or phi) since the last notification.
type Callbacks struct {
	OnStart  func()
	OnEnd    func()
	OnChange func(qmath.Spherical, qmath.Cartesian)
}

// Driver holds the one piece of mutable state in the engine: the current
// interpolated point, the captured animation start point, and the elapsed
// clock bookkeeping.
type Driver struct {
	cfg Config
	cb  Callbacks

	current   qmath.Spherical
	target    qmath.Spherical
	start     qmath.Spherical
	startedAt time.Time
	animating bool
	hasState  bool

	notified    qmath.Spherical
	hasNotified bool
	easingFn    func(float64) float64
}

// New resolves config defaults once and returns an idle driver with no
// state; the first SetTarget snaps without animating.
func New(cfg Config, cb Callbacks) *Driver {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Easing == "" {
		cfg.Easing = DefaultEasing
	}
	return &Driver{cfg: cfg, cb: cb, easingFn: cfg.Easing.Fn()}
}

// Current returns the externally observable state for this instant.
func (d *Driver) Current() qmath.Spherical { return d.current }

// Target returns the state being tracked (the animation destination while
// in flight, otherwise the held state).
func (d *Driver) Target() qmath.Spherical { return d.target }

// Animating reports whether a transition is in flight.
func (d *Driver) Animating() bool { return d.animating }

// SetTarget feeds the driver a new destination. The first target ever seen
// snaps directly with no animation. A target identical to the tracked one
// is a no-op. Otherwise, with animation enabled, the in-flight animation
// (if any) is cancelled, the current point becomes the new start, and
// OnStart fires; with animation disabled the driver snaps.
func (d *Driver) SetTarget(s qmath.Spherical, now time.Time) {
	if !d.hasState {
		d.hasState = true
		d.current, d.target = s, s
		d.notifyChange()
		return
	}
	if s == d.target {
		return
	}
	d.target = s
	if !d.cfg.Enabled {
		d.animating = false
		d.current = s
		d.notifyChange()
		return
	}
	d.start = d.current
	d.startedAt = now
	d.animating = true
	if d.cb.OnStart != nil {
		d.cb.OnStart()
	}
}

// SetAmplitudes is SetTarget for states given in amplitude form.
func (d *Driver) SetAmplitudes(a qmath.Amplitudes, now time.Time) {
	d.SetTarget(qmath.AmplitudesToSpherical(a), now)
}

// Step advances the in-flight animation to the given instant and reports
// whether the driver still needs ticks. On completion it holds at the
// target and fires OnEnd exactly once.
func (d *Driver) Step(now time.Time) bool {
	if !d.animating {
		return false
	}

	progress := clampUnit(float64(now.Sub(d.startedAt)) / float64(d.cfg.Duration))
	if progress >= 1 {
		d.animating = false
		d.current = d.target
		d.notifyChange()
		if d.cb.OnEnd != nil {
			d.cb.OnEnd()
		}
		return false
	}

	d.current = qmath.Slerp(d.start, d.target, d.easingFn(progress))
	d.notifyChange()
	return true
}

func (d *Driver) notifyChange() {
	if d.hasNotified && d.current == d.notified {
		return
	}
	d.notified = d.current
	d.hasNotified = true
	if d.cb.OnChange != nil {
		d.cb.OnChange(d.current, qmath.SphericalToCartesian(d.current))
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
