// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/example/fretsvg/internal/ports/secondary"
)

// ChordRepository implements secondary.ChordRepository with SQLite.
type ChordRepository struct {
	db *sql.DB
}

// NewChordRepository creates a new SQLite chord repository.
func NewChordRepository(db *sql.DB) *ChordRepository {
	return &ChordRepository{db: db}
}

// Create persists a new chord.
func (r *ChordRepository) Create(ctx context.Context, chord *secondary.ChordRecord) error {
	frets, err := json.Marshal(chord.Frets)
	if err != nil {
		return fmt.Errorf("failed to encode frets: %w", err)
	}
	barres := chord.Barres
	if barres == nil {
		barres = []secondary.BarreRecord{}
	}
	encodedBarres, err := json.Marshal(barres)
	if err != nil {
		return fmt.Errorf("failed to encode barres: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO chords (name, frets, barres) VALUES (?, ?, ?)",
		chord.Name, string(frets), string(encodedBarres),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("chord %q: %w", chord.Name, secondary.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create chord: %w", err)
	}

	return nil
}

// GetByName retrieves a chord by its name.
func (r *ChordRepository) GetByName(ctx context.Context, name string) (*secondary.ChordRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT name, frets, barres, created_at FROM chords WHERE name = ?",
		name,
	)

	record, err := scanChord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("chord %q: %w", name, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chord: %w", err)
	}

	return record, nil
}

// List retrieves all chords in registration order.
func (r *ChordRepository) List(ctx context.Context) ([]*secondary.ChordRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, frets, barres, created_at FROM chords ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list chords: %w", err)
	}
	defer rows.Close()

	var chords []*secondary.ChordRecord
	for rows.Next() {
		record, err := scanChord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chord: %w", err)
		}
		chords = append(chords, record)
	}

	return chords, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanChord(s scanner) (*secondary.ChordRecord, error) {
	var (
		frets     string
		barres    string
		createdAt time.Time
	)

	record := &secondary.ChordRecord{}
	if err := s.Scan(&record.Name, &frets, &barres, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(frets), &record.Frets); err != nil {
		return nil, fmt.Errorf("failed to decode frets: %w", err)
	}
	if err := json.Unmarshal([]byte(barres), &record.Barres); err != nil {
		return nil, fmt.Errorf("failed to decode barres: %w", err)
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// Ensure ChordRepository implements the interface
var _ secondary.ChordRepository = (*ChordRepository)(nil)
