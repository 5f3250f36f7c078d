package scale

import (
	"fmt"
	"strconv"

	"github.com/example/fretsvg/internal/core/diagram"
	"github.com/example/fretsvg/internal/core/geometry"
)

// Fretboard constants.
const (
	FretCount  = 12
	MaxFret    = 24
	Width      = 250
	Height     = 620
	PadX       = 40
	PadY       = 60
	NutHeight  = 8
	Foreground = "#000000"
	RootFill   = "#d62728"
	InlayFill  = "#cccccc"
	FontFamily = "Arial"
)

// inlayFrets are the fret numbers that carry decorative inlay markers.
// Fret 12 gets a double marker.
var inlayFrets = []int{3, 5, 7, 9, 12}

// Layout returns the default fretboard layout covering FretCount frets.
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

// Render draws every scale tone from the nut to fret 12 on all six strings.
func Render(p Pattern, key Key) diagram.Diagram {
	return RenderRange(p, key, 0, FretCount)
}

// ValidateRange checks that lo..hi is a usable span of frets.
func ValidateRange(lo, hi int) error {
	if lo < 0 || hi > MaxFret || lo >= hi {
		return fmt.Errorf("fret range %d-%d must satisfy 0 <= from < to <= %d", lo, hi, MaxFret)
	}
	return nil
}

// RenderRange draws scale tones between frets lo and hi. Spans wider than
// FretCount grow the board; the fret spacing stays the same as the default.
// Callers check the range with ValidateRange.
func RenderRange(p Pattern, key Key, lo, hi int) diagram.Diagram {
	root := key.Root
	w := geometry.ResolveSpanWindow(lo, hi, FretCount)
	l := Layout().Grow(w.Size, FretCount)

	fretSpacing := l.FretSpacing()
	dotRadius := fretSpacing / 3.5
	members := p.Membership(root)

	d := diagram.Diagram{
		Width:      l.Width,
		Height:     l.Height,
		OriginX:    PadX,
		OriginY:    PadY,
		FontFamily: FontFamily,
		Foreground: Foreground,
	}

	d.Add(diagram.Text{
		X:        l.DiagramWidth() / 2,
		Y:        -PadY + 22,
		FontSize: 18,
		Anchor:   diagram.AnchorMiddle,
		Content:  key.Name(root) + " " + p.Name,
		Fill:     Foreground,
		Class:    "title",
	})

	if w.Position > 0 {
		d.Add(diagram.Text{
			X:        -PadX / 2.5,
			Y:        fretSpacing * 0.8,
			FontSize: fretSpacing * 0.6,
			Anchor:   diagram.AnchorMiddle,
			Content:  strconv.Itoa(w.Position + 1),
			Fill:     Foreground,
			Class:    "position",
		})
	}

	for _, fret := range inlayFrets {
		row := fret - w.Position
		if row < 1 || row > w.Size {
			continue
		}
		d.Add(inlays(l, row, fret == 12)...)
	}

	for i := 0; i <= w.Size; i++ {
		y := l.FretY(i)
		line := diagram.Line{X1: 0, Y1: y, X2: l.DiagramWidth(), Y2: y, Stroke: Foreground, StrokeWidth: 2, Class: "fret"}
		if i == 0 && w.Position == 0 {
			line.StrokeWidth = NutHeight
			line.Class = "nut"
		}
		d.Add(line)
	}

	for s := 0; s < geometry.StringCount; s++ {
		x := l.StringX(geometry.ScaleStringColumn(s))
		d.Add(diagram.Line{X1: x, Y1: 0, X2: x, Y2: l.DiagramHeight(), Stroke: Foreground, StrokeWidth: 1, Class: "string"})
	}

	for s, open := range OpenStrings {
		x := l.StringX(geometry.ScaleStringColumn(s))
		for fret := w.Position; fret <= w.Position+w.Size; fret++ {
			pc := PitchClass(open, fret)
			if !members[pc] {
				continue
			}
			dot := diagram.Circle{CX: x, CY: toneY(l, fret-w.Position), R: dotRadius, Fill: Foreground, Class: "tone"}
			if pc == mod12(root) {
				dot.Fill = RootFill
				dot.Class = "root"
			}
			d.Add(dot)
		}
	}

	return d
}

// toneY returns the y of a tone on window row. Row 0 sits above the top line.
func toneY(l geometry.Layout, row int) float64 {
	if row == 0 {
		return -l.FretSpacing() / 2
	}
	return l.CellCenterY(row)
}

func inlays(l geometry.Layout, row int, double bool) []diagram.Element {
	r := l.FretSpacing() / 8
	y := l.CellCenterY(row)
	center := l.DiagramWidth() / 2
	if !double {
		return []diagram.Element{diagram.Circle{CX: center, CY: y, R: r, Fill: InlayFill, Class: "inlay"}}
	}
	offset := l.StringSpacing()
	return []diagram.Element{
		diagram.Circle{CX: center - offset, CY: y, R: r, Fill: InlayFill, Class: "inlay"},
		diagram.Circle{CX: center + offset, CY: y, R: r, Fill: InlayFill, Class: "inlay"},
	}
}
