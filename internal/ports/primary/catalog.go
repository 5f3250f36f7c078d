// Package primary defines the primary ports: the operations the outside world
// (HTTP handlers, CLI commands) drives the application through.
package primary

import (
	"context"

	"github.com/example/fretsvg/internal/core/chord"
	"github.com/example/fretsvg/internal/core/scale"
)

// CatalogService defines the primary port for reference data lookups and
// runtime chord registration.
type CatalogService interface {
	// GetChord retrieves a chord by name.
	GetChord(ctx context.Context, name string) (*Chord, error)

	// ListChords retrieves all chords, built-in first, then registrations.
	ListChords(ctx context.Context) ([]*Chord, error)

	// RegisterChord adds a new chord shape for the process lifetime.
	RegisterChord(ctx context.Context, req RegisterChordRequest) (*RegisterChordResponse, error)

	// GetScale retrieves a scale by name.
	GetScale(ctx context.Context, name string) (*Scale, error)

	// ListScales retrieves all scales.
	ListScales(ctx context.Context) ([]*Scale, error)
}

// RegisterChordRequest contains parameters for registering a chord.
type RegisterChordRequest struct {
	Name   string
	Frets  []int
	Barres []chord.Barre
}

// RegisterChordResponse contains the result of registering a chord.
type RegisterChordResponse struct {
	Chord *Chord
}

// Chord represents a chord entity at the port boundary.
type Chord struct {
	Name      string
	Shape     chord.Shape
	Builtin   bool
	CreatedAt string // empty for built-in chords
}

// Scale represents a scale entity at the port boundary.
type Scale struct {
	Pattern scale.Pattern
}
