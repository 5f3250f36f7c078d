// Package chord contains the pure business logic for chord shapes:
// the chord-box renderer and the registration guards.
package chord

import (
	"strconv"
	"strings"

	"github.com/example/fretsvg/internal/core/geometry"
)

// Fret values with special meaning.
const (
	Muted = -1
	Open  = 0
)

// Barre is a single finger pressing strings FromString..ToString at Fret.
// String numbers are 1-based with 1 = highest-pitched string.
type Barre struct {
	FromString int `json:"fromString" yaml:"fromString"`
	ToString   int `json:"toString" yaml:"toString"`
	Fret       int `json:"fret" yaml:"fret"`
}

// Shape is a chord fingering: one fret value per string, lowest-pitched
// string first, plus any barres.
type Shape struct {
	Frets  []int   `json:"frets" yaml:"frets"`
	Barres []Barre `json:"barres" yaml:"barres"`
}

// Window returns the fret window a chord box uses for this shape.
func (s Shape) Window() geometry.FretWindow {
	return geometry.ResolveFretWindow(s.Frets, FretCount)
}

// Notation returns the compact tab notation of the shape, e.g. "x32010".
// Frets above 9 are wrapped in parentheses.
func (s Shape) Notation() string {
	var b strings.Builder
	for _, f := range s.Frets {
		switch {
		case f == Muted:
			b.WriteByte('x')
		case f >= 0 && f <= 9:
			b.WriteString(strconv.Itoa(f))
		default:
			b.WriteString("(" + strconv.Itoa(f) + ")")
		}
	}
	return b.String()
}

// Clone returns a deep copy so callers can never mutate shared reference data.
func (s Shape) Clone() Shape {
	out := Shape{
		Frets:  append([]int(nil), s.Frets...),
		Barres: append([]Barre(nil), s.Barres...),
	}
	if out.Barres == nil {
		out.Barres = []Barre{}
	}
	return out
}
