// Package catalog loads the reference data snapshot: named chord shapes,
// scale patterns and the example sequences the progression model is trained on.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/fretsvg/internal/core/chord"
	"github.com/example/fretsvg/internal/core/scale"
)

//go:embed catalog.yaml
var embedded []byte

// NamedChord is a chord shape with its name.
type NamedChord struct {
	Name        string `yaml:"name"`
	chord.Shape `yaml:",inline"`
}

// Snapshot is the immutable reference data loaded at start.
type Snapshot struct {
	Chords       []NamedChord    `yaml:"chords"`
	Scales       []scale.Pattern `yaml:"scales"`
	Progressions [][]string      `yaml:"progressions"`
}

// Default returns the snapshot embedded in the binary.
func Default() (*Snapshot, error) {
	return Parse(embedded)
}

// Load reads a snapshot from a YAML file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML snapshot.
func Parse(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := snap.validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ChordMap indexes the chords by name.
func (s *Snapshot) ChordMap() map[string]chord.Shape {
	out := make(map[string]chord.Shape, len(s.Chords))
	for _, c := range s.Chords {
		out[c.Name] = c.Shape.Clone()
	}
	return out
}

// ScaleMap indexes the scales by name.
func (s *Snapshot) ScaleMap() map[string]scale.Pattern {
	out := make(map[string]scale.Pattern, len(s.Scales))
	for _, p := range s.Scales {
		out[p.Name] = p.Clone()
	}
	return out
}

func (s *Snapshot) validate() error {
	seen := make(map[string]bool, len(s.Chords))
	for _, c := range s.Chords {
		result := chord.CanRegisterChord(chord.RegisterChordContext{
			Name:       c.Name,
			Shape:      c.Shape,
			NameExists: seen[c.Name],
		})
		if err := result.Error(); err != nil {
			return fmt.Errorf("invalid catalog chord %q: %w", c.Name, err)
		}
		seen[c.Name] = true
	}

	scales := make(map[string]bool, len(s.Scales))
	for _, p := range s.Scales {
		if p.Name == "" {
			return fmt.Errorf("invalid catalog scale: name cannot be empty")
		}
		if scales[p.Name] {
			return fmt.Errorf("invalid catalog scale: duplicate name %q", p.Name)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid catalog scale: %w", err)
		}
		scales[p.Name] = true
	}
	return nil
}
