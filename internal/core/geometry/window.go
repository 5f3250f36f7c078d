package geometry

// FretWindow is the contiguous range of frets visible in a diagram.
// Position is the first visible fret; a window at position 1 starts at the nut.
type FretWindow struct {
	Position int
	Size     int
}

// IsOpenPosition reports whether the window starts at the nut.
// Only an open-position window draws a heavy nut line; any other window
// gets a position-number label instead.
func (w FretWindow) IsOpenPosition() bool {
	return w.Position <= 1
}

// Contains reports whether fret lies inside [Position, Position+Size).
func (w FretWindow) Contains(fret int) bool {
	return fret >= w.Position && fret < w.Position+w.Size
}

// Row returns the 1-based window row for fret. Callers check Contains first.
func (w FretWindow) Row(fret int) int {
	return fret - w.Position + 1
}

// ResolveFretWindow picks the fret window for a chord box.
// Only positive frets are considered. Rules:
// - no fretted notes: position 1
// - lowest fretted note at fret 1 (or below): position 1
// - fretted span of defaultCount or more: position 1
// - otherwise the window starts at the lowest fretted note
func ResolveFretWindow(frets []int, defaultCount int) FretWindow {
	minFret, maxFret, ok := fretRange(frets)
	if !ok || minFret <= 1 || maxFret-minFret >= defaultCount {
		return FretWindow{Position: 1, Size: defaultCount}
	}
	return FretWindow{Position: minFret, Size: defaultCount}
}

// ResolveSpanWindow returns a window starting at lo that covers every fret up
// to hi. The window is never smaller than defaultCount; wider spans grow it.
func ResolveSpanWindow(lo, hi, defaultCount int) FretWindow {
	if lo < 0 {
		lo = 0
	}
	size := hi - lo
	if size < defaultCount {
		size = defaultCount
	}
	return FretWindow{Position: lo, Size: size}
}

// fretRange returns the smallest and largest positive value in frets.
func fretRange(frets []int) (minFret, maxFret int, ok bool) {
	for _, f := range frets {
		if f <= 0 {
			continue
		}
		if !ok {
			minFret, maxFret, ok = f, f, true
			continue
		}
		if f < minFret {
			minFret = f
		}
		if f > maxFret {
			maxFret = f
		}
	}
	return minFret, maxFret, ok
}
