// Package trajectory keeps a bounded record of visited Bloch-sphere states.
// The history is owned by the presentation layer, never by the animation
// driver: callers append each observed state and read the retained window
// back for trails and exports.
package trajectory

import "github.com/san-kum/blochview/internal/qmath"

const DefaultMaxPoints = 200

// History retains the most recent MaxPoints states in append order.
type History struct {
	maxPoints int
	points    []qmath.Spherical
}

// New returns an empty history bounded to maxPoints; non-positive values
// fall back to DefaultMaxPoints.
func New(maxPoints int) *History {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}
	return &History{
		maxPoints: maxPoints,
		points:    make([]qmath.Spherical, 0, maxPoints),
	}
}

// Append records a state, evicting the oldest once the bound is reached.
func (h *History) Append(p qmath.Spherical) {
	if len(h.points) >= h.maxPoints {
		h.points = h.points[1:]
	}
	h.points = append(h.points, p)
}

// Points returns the retained window, oldest first. The slice is a copy;
// callers may hold it across later appends.
func (h *History) Points() []qmath.Spherical {
	out := make([]qmath.Spherical, len(h.points))
	copy(out, h.points)
	return out
}

func (h *History) Len() int { return len(h.points) }

func (h *History) Clear() { h.points = h.points[:0] }

// Latest returns the most recent state and whether one exists.
func (h *History) Latest() (qmath.Spherical, bool) {
	if len(h.points) == 0 {
		return qmath.Spherical{}, false
	}
	return h.points[len(h.points)-1], true
}
