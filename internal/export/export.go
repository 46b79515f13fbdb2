// Package export writes recorded Bloch-sphere trajectories to CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/san-kum/blochview/internal/qmath"
)

// Meta describes how a trajectory was produced.
type Meta struct {
	Label      string    `json:"label"`
	Easing     string    `json:"easing"`
	DurationMS float64   `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

type document struct {
	Meta   Meta     `json:"meta"`
	Points []record `json:"points"`
}

type record struct {
	Theta float64 `json:"theta"`
	Phi   float64 `json:"phi"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

func toRecord(s qmath.Spherical) record {
	c := qmath.SphericalToCartesian(s)
	return record{Theta: s.Theta, Phi: s.Phi, X: c.X, Y: c.Y, Z: c.Z}
}

// WriteCSV writes one row per state with both spherical and cartesian
// columns.
func WriteCSV(w io.Writer, points []qmath.Spherical) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "theta", "phi", "x", "y", "z"}); err != nil {
		return err
	}
	for i, p := range points {
		r := toRecord(p)
		row := []string{
			strconv.Itoa(i),
			formatFloat(r.Theta),
			formatFloat(r.Phi),
			formatFloat(r.X),
			formatFloat(r.Y),
			formatFloat(r.Z),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the trajectory with its metadata as indented JSON.
func WriteJSON(w io.Writer, meta Meta, points []qmath.Spherical) error {
	doc := document{Meta: meta, Points: make([]record, len(points))}
	for i, p := range points {
		doc.Points[i] = toRecord(p)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 9, 64)
}
