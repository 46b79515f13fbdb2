package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/blochview/internal/qmath"
)

func TestHistoryBounds(t *testing.T) {
	h := New(3)
	for i := 0; i < 5; i++ {
		h.Append(qmath.Spherical{Theta: float64(i)})
	}

	assert.Equal(t, 3, h.Len())
	pts := h.Points()
	assert.Equal(t, 2.0, pts[0].Theta, "oldest retained point should be the third appended")
	assert.Equal(t, 4.0, pts[2].Theta)
}

func TestHistoryLatest(t *testing.T) {
	h := New(10)

	_, ok := h.Latest()
	assert.False(t, ok)

	h.Append(qmath.Spherical{Theta: 1})
	h.Append(qmath.Spherical{Theta: 2})
	latest, ok := h.Latest()
	assert.True(t, ok)
	assert.Equal(t, 2.0, latest.Theta)
}

func TestHistoryClear(t *testing.T) {
	h := New(10)
	h.Append(qmath.Spherical{})
	h.Clear()
	assert.Zero(t, h.Len())
}

func TestHistoryPointsIsCopy(t *testing.T) {
	h := New(10)
	h.Append(qmath.Spherical{Theta: 1})
	pts := h.Points()
	h.Append(qmath.Spherical{Theta: 2})
	assert.Len(t, pts, 1)
}

func TestHistoryDefaultBound(t *testing.T) {
	h := New(0)
	for i := 0; i < DefaultMaxPoints+50; i++ {
		h.Append(qmath.Spherical{})
	}
	assert.Equal(t, DefaultMaxPoints, h.Len())
}
