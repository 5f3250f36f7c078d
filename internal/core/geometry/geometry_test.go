package geometry

import (
	"math"
	"testing"
)

func chordLayout() Layout {
	return Layout{Width: 250, Height: 300, PadX: 40, PadY: 50, Strings: 6, FretRows: 5}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayout_Spacing(t *testing.T) {
	l := chordLayout()

	if got := l.DiagramWidth(); got != 170 {
		t.Errorf("DiagramWidth() = %v, want 170", got)
	}
	if got := l.DiagramHeight(); got != 200 {
		t.Errorf("DiagramHeight() = %v, want 200", got)
	}
	if got := l.StringSpacing(); got != 34 {
		t.Errorf("StringSpacing() = %v, want 34", got)
	}
	if got := l.FretSpacing(); got != 40 {
		t.Errorf("FretSpacing() = %v, want 40", got)
	}
}

func TestLayout_Coordinates(t *testing.T) {
	l := chordLayout()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"first string", l.StringX(0), 0},
		{"last string", l.StringX(5), 170},
		{"nut", l.FretY(0), 0},
		{"bottom fret line", l.FretY(5), 200},
		{"first row center", l.CellCenterY(1), 20},
		{"third row center", l.CellCenterY(3), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !almostEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLayout_DegenerateCounts(t *testing.T) {
	l := Layout{Width: 100, Height: 100, Strings: 1, FretRows: 0}
	if l.StringSpacing() != 0 {
		t.Errorf("expected zero string spacing for a single string")
	}
	if l.FretSpacing() != 0 {
		t.Errorf("expected zero fret spacing for zero rows")
	}
}

func TestLayout_Grow(t *testing.T) {
	l := Layout{Width: 250, Height: 600, PadX: 40, PadY: 50, Strings: 6, FretRows: 12}

	grown := l.Grow(15, 12)
	if grown.FretRows != 15 {
		t.Errorf("FretRows = %d, want 15", grown.FretRows)
	}
	if !almostEqual(grown.FretSpacing(), l.FretSpacing()) {
		t.Errorf("fret spacing changed: %v -> %v", l.FretSpacing(), grown.FretSpacing())
	}
	if !almostEqual(grown.Height, 725) {
		t.Errorf("Height = %v, want 725", grown.Height)
	}

	same := l.Grow(10, 12)
	if same != l {
		t.Errorf("Grow with fewer rows should not change the layout")
	}
}

func TestResolveFretWindow(t *testing.T) {
	tests := []struct {
		name         string
		frets        []int
		wantPosition int
	}{
		{"no frets at all", nil, 1},
		{"all muted and open", []int{-1, 0, 0, -1, 0, 0}, 1},
		{"C major open shape", []int{-1, 3, 2, 0, 1, 0}, 1},
		{"F barre at first fret", []int{1, 3, 3, 2, 1, 1}, 1},
		{"B barre at second fret", []int{-1, 2, 4, 4, 4, 2}, 2},
		{"Cm barre at third fret", []int{-1, 3, 5, 5, 4, 3}, 3},
		{"span just inside window", []int{5, 9, -1, -1, -1, -1}, 5},
		{"span equal to window", []int{5, 10, -1, -1, -1, -1}, 1},
		{"span wider than window", []int{3, 12, 0, 0, 0, 0}, 1},
		{"single high fret", []int{-1, -1, -1, 7, -1, -1}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ResolveFretWindow(tt.frets, 5)
			if w.Position != tt.wantPosition {
				t.Errorf("Position = %d, want %d", w.Position, tt.wantPosition)
			}
			if w.Size != 5 {
				t.Errorf("Size = %d, want 5", w.Size)
			}
			if w.IsOpenPosition() != (tt.wantPosition == 1) {
				t.Errorf("IsOpenPosition() = %v for position %d", w.IsOpenPosition(), w.Position)
			}
		})
	}
}

func TestFretWindow_ContainsAndRow(t *testing.T) {
	w := FretWindow{Position: 3, Size: 5}

	for fret, want := range map[int]bool{2: false, 3: true, 7: true, 8: false} {
		if got := w.Contains(fret); got != want {
			t.Errorf("Contains(%d) = %v, want %v", fret, got, want)
		}
	}
	if got := w.Row(3); got != 1 {
		t.Errorf("Row(3) = %d, want 1", got)
	}
	if got := w.Row(7); got != 5 {
		t.Errorf("Row(7) = %d, want 5", got)
	}
}

func TestResolveSpanWindow(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   int
		wantPos  int
		wantSize int
	}{
		{"full neck", 0, 12, 0, 12},
		{"narrow span keeps default", 5, 8, 5, 12},
		{"wide span grows", 0, 17, 0, 17},
		{"negative start clamps", -3, 12, 0, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ResolveSpanWindow(tt.lo, tt.hi, 12)
			if w.Position != tt.wantPos || w.Size != tt.wantSize {
				t.Errorf("got %+v, want position %d size %d", w, tt.wantPos, tt.wantSize)
			}
		})
	}
}

func TestStringMappings(t *testing.T) {
	if got := ChordBarreColumn(6); got != 0 {
		t.Errorf("ChordBarreColumn(6) = %d, want 0", got)
	}
	if got := ChordBarreColumn(1); got != 5 {
		t.Errorf("ChordBarreColumn(1) = %d, want 5", got)
	}
	for i := 0; i < StringCount; i++ {
		if ChordFretColumn(i) != i {
			t.Errorf("ChordFretColumn(%d) = %d", i, ChordFretColumn(i))
		}
		if ScaleStringColumn(i) != i {
			t.Errorf("ScaleStringColumn(%d) = %d", i, ScaleStringColumn(i))
		}
	}
}
