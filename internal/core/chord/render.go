package chord

import (
	"strconv"

	"github.com/example/fretsvg/internal/core/diagram"
	"github.com/example/fretsvg/internal/core/geometry"
)

// Chord box constants.
const (
	FretCount  = 5
	Width      = 250
	Height     = 300
	PadX       = 40
	PadY       = 50
	NutHeight  = 8
	Foreground = "#000000"
	FontFamily = "Arial"
)

// Layout returns the fixed chord-box layout.
func Layout() geometry.Layout {
	return geometry.Layout{
		Width:    Width,
		Height:   Height,
		PadX:     PadX,
		PadY:     PadY,
		Strings:  geometry.StringCount,
		FretRows: FretCount,
	}
}

// Render draws a chord box for the shape.
// It never fails: frets and barres outside the resolved window are skipped.
func Render(shape Shape) diagram.Diagram {
	l := Layout()
	w := shape.Window()

	fretSpacing := l.FretSpacing()
	dotRadius := fretSpacing / 3.5
	openRadius := dotRadius / 2
	markerY := -fretSpacing / 2

	d := diagram.Diagram{
		Width:      Width,
		Height:     Height,
		OriginX:    PadX,
		OriginY:    PadY,
		FontFamily: FontFamily,
		Foreground: Foreground,
	}

	if !w.IsOpenPosition() {
		d.Add(diagram.Text{
			X:        -PadX / 2.5,
			Y:        fretSpacing * 0.8,
			FontSize: fretSpacing * 0.8,
			Anchor:   diagram.AnchorMiddle,
			Content:  strconv.Itoa(w.Position),
			Fill:     Foreground,
			Class:    "position",
		})
	}

	for i := 0; i <= w.Size; i++ {
		y := l.FretY(i)
		line := diagram.Line{X1: 0, Y1: y, X2: l.DiagramWidth(), Y2: y, Stroke: Foreground, StrokeWidth: 2, Class: "fret"}
		if i == 0 && w.IsOpenPosition() {
			line.StrokeWidth = NutHeight
			line.Class = "nut"
		}
		d.Add(line)
	}

	for i := 0; i < geometry.StringCount; i++ {
		x := l.StringX(i)
		d.Add(diagram.Line{X1: x, Y1: 0, X2: x, Y2: l.DiagramHeight(), Stroke: Foreground, StrokeWidth: 1, Class: "string"})
	}

	for _, b := range shape.Barres {
		if !w.Contains(b.Fret) {
			continue
		}
		y := l.CellCenterY(w.Row(b.Fret))
		x1 := l.StringX(geometry.ChordBarreColumn(b.FromString))
		x2 := l.StringX(geometry.ChordBarreColumn(b.ToString))
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		d.Add(diagram.Rect{
			X:      x1,
			Y:      y - dotRadius,
			Width:  x2 - x1,
			Height: dotRadius * 2,
			RX:     dotRadius,
			RY:     dotRadius,
			Fill:   Foreground,
			Class:  "barre",
		})
	}

	for i, fret := range shape.Frets {
		x := l.StringX(geometry.ChordFretColumn(i))
		switch {
		case fret == Muted:
			d.Add(mutedGlyph(x, markerY, openRadius))
		case fret == Open:
			d.Add(diagram.Circle{CX: x, CY: markerY, R: openRadius, Fill: "none", Stroke: Foreground, StrokeWidth: 2, Class: "open"})
		case w.Contains(fret):
			d.Add(diagram.Circle{CX: x, CY: l.CellCenterY(w.Row(fret)), R: dotRadius, Fill: Foreground, Class: "dot"})
		}
	}

	return d
}

// mutedGlyph returns the "X" drawn above a muted string.
func mutedGlyph(x, y, r float64) diagram.Group {
	return diagram.Group{
		TranslateX: x,
		TranslateY: y,
		Scale:      0.7,
		Class:      "muted",
		Children: []diagram.Element{
			diagram.Line{X1: -r, Y1: -r, X2: r, Y2: r, Stroke: Foreground, StrokeWidth: 3},
			diagram.Line{X1: -r, Y1: r, X2: r, Y2: -r, Stroke: Foreground, StrokeWidth: 3},
		},
	}
}
