// Package secondary defines the secondary ports: the interfaces the
// application needs from storage and output adapters.
package secondary

import (
	"context"
	"errors"
)

// Errors reported by persistence adapters.
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// ChordRecord represents a registered chord as stored in persistence.
type ChordRecord struct {
	Name      string
	Frets     []int
	Barres    []BarreRecord
	CreatedAt string
}

// BarreRecord represents one barre of a stored chord.
type BarreRecord struct {
	FromString int `json:"fromString"`
	ToString   int `json:"toString"`
	Fret       int `json:"fret"`
}

// ChordRepository defines the secondary port for runtime chord registrations.
type ChordRepository interface {
	// Create persists a new chord. Returns ErrAlreadyExists if the name is taken.
	Create(ctx context.Context, chord *ChordRecord) error

	// GetByName retrieves a chord by its name. Returns ErrNotFound if missing.
	GetByName(ctx context.Context, name string) (*ChordRecord, error)

	// List retrieves all registered chords in registration order.
	List(ctx context.Context) ([]*ChordRecord, error)
}
