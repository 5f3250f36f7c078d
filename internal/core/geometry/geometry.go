// Package geometry contains the pure coordinate math shared by the diagram renderers.
// This is part of the Functional Core - no I/O, only pure functions.
package geometry

// StringCount is the number of strings on the instrument.
const StringCount = 6

// Layout describes the drawing area of a fretboard diagram.
// All coordinates produced by a Layout are relative to the padded origin,
// so (0, 0) is the top of the first string.
type Layout struct {
	Width    float64 // canvas width
	Height   float64 // canvas height
	PadX     float64
	PadY     float64
	Strings  int // number of vertical string lines
	FretRows int // visible fret count (window size)
}

// DiagramWidth returns the width between the outermost strings.
func (l Layout) DiagramWidth() float64 {
	return l.Width - 2*l.PadX
}

// DiagramHeight returns the height between the nut (or window top) and the last fret line.
func (l Layout) DiagramHeight() float64 {
	return l.Height - 2*l.PadY
}

// StringSpacing returns the horizontal distance between adjacent strings.
func (l Layout) StringSpacing() float64 {
	if l.Strings < 2 {
		return 0
	}
	return l.DiagramWidth() / float64(l.Strings-1)
}

// FretSpacing returns the vertical distance between adjacent fret lines.
func (l Layout) FretSpacing() float64 {
	if l.FretRows < 1 {
		return 0
	}
	return l.DiagramHeight() / float64(l.FretRows)
}

// StringX returns the x coordinate of the string drawn in column i.
func (l Layout) StringX(i int) float64 {
	return float64(i) * l.StringSpacing()
}

// FretY returns the y coordinate of fret line i within the window.
// Line 0 is the nut or the window top.
func (l Layout) FretY(i int) float64 {
	return float64(i) * l.FretSpacing()
}

// CellCenterY returns the vertical center of window row i (i >= 1),
// which is where a fretted dot on that row is drawn.
// Row 0 is the area above the nut used for open and muted markers.
func (l Layout) CellCenterY(i int) float64 {
	return l.FretY(i) - l.FretSpacing()/2
}

// Grow returns a copy of the layout showing rows frets instead of defaultRows,
// with the diagram height scaled so that fret spacing stays constant.
// Layouts are never shrunk.
func (l Layout) Grow(rows, defaultRows int) Layout {
	if rows <= defaultRows || defaultRows < 1 {
		return l
	}
	scaled := l.DiagramHeight() * float64(rows) / float64(defaultRows)
	l.Height = scaled + 2*l.PadY
	l.FretRows = rows
	return l
}
