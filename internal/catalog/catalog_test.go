package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	snap, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if len(snap.Chords) != 24 {
		t.Errorf("chords = %d, want 24", len(snap.Chords))
	}
	if len(snap.Scales) == 0 {
		t.Errorf("expected scales in the embedded catalog")
	}
	if len(snap.Progressions) == 0 {
		t.Errorf("expected training sequences in the embedded catalog")
	}

	chords := snap.ChordMap()
	f, ok := chords["F"]
	if !ok {
		t.Fatalf("chord F missing")
	}
	if len(f.Barres) != 1 || f.Barres[0].FromString != 6 || f.Barres[0].ToString != 1 || f.Barres[0].Fret != 1 {
		t.Errorf("F barres = %+v", f.Barres)
	}
	c := chords["C"]
	if c.Notation() != "x32010" {
		t.Errorf("C notation = %q, want x32010", c.Notation())
	}
	if c.Barres == nil {
		t.Errorf("chords without barres should have an empty barre list")
	}

	pent, ok := snap.ScaleMap()["minor pentatonic"]
	if !ok {
		t.Fatalf("minor pentatonic missing")
	}
	if len(pent.Intervals) != 5 {
		t.Errorf("minor pentatonic intervals = %v", pent.Intervals)
	}
}

func TestChordMap_ReturnsCopies(t *testing.T) {
	snap, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	first := snap.ChordMap()
	first["C"].Frets[1] = 9

	if snap.ChordMap()["C"].Frets[1] != 3 {
		t.Errorf("mutating a ChordMap result changed the snapshot")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "chords: [",
			wantErr: "failed to parse catalog",
		},
		{
			name:    "duplicate chord",
			yaml:    "chords:\n  - {name: C, frets: [0,0,0,0,0,0]}\n  - {name: C, frets: [0,0,0,0,0,0]}\n",
			wantErr: `chord "C" already exists`,
		},
		{
			name:    "short chord",
			yaml:    "chords:\n  - {name: C, frets: [0,0,0]}\n",
			wantErr: "exactly 6 frets",
		},
		{
			name:    "bad interval",
			yaml:    "scales:\n  - {name: odd, intervals: [0, 14]}\n",
			wantErr: "outside 0..11",
		},
		{
			name:    "duplicate scale",
			yaml:    "scales:\n  - {name: a, intervals: [0]}\n  - {name: a, intervals: [0]}\n",
			wantErr: `duplicate name "a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := "chords:\n  - name: Power5\n    frets: [5, 7, 7, -1, -1, -1]\nscales:\n  - {name: fifths, intervals: [0, 7]}\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(snap.Chords) != 1 || snap.Chords[0].Name != "Power5" {
		t.Errorf("chords = %+v", snap.Chords)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
