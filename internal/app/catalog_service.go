package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/fretsvg/internal/catalog"
	"github.com/example/fretsvg/internal/core/chord"
	"github.com/example/fretsvg/internal/core/scale"
	"github.com/example/fretsvg/internal/ports/primary"
	"github.com/example/fretsvg/internal/ports/secondary"
)

// CatalogServiceImpl implements the CatalogService interface.
// Built-in chords and scales come from an immutable snapshot; runtime
// registrations go through the chord repository.
type CatalogServiceImpl struct {
	chords     map[string]chord.Shape
	chordOrder []string
	scales     map[string]scale.Pattern
	scaleOrder []string
	chordRepo  secondary.ChordRepository
}

// NewCatalogService creates a new CatalogService with injected dependencies.
func NewCatalogService(snap *catalog.Snapshot, chordRepo secondary.ChordRepository) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		chords:    snap.ChordMap(),
		scales:    snap.ScaleMap(),
		chordRepo: chordRepo,
	}
	for _, c := range snap.Chords {
		s.chordOrder = append(s.chordOrder, c.Name)
	}
	for _, p := range snap.Scales {
		s.scaleOrder = append(s.scaleOrder, p.Name)
	}
	return s
}

// GetChord retrieves a chord by name.
func (s *CatalogServiceImpl) GetChord(ctx context.Context, name string) (*primary.Chord, error) {
	if shape, ok := s.chords[name]; ok {
		return &primary.Chord{Name: name, Shape: shape.Clone(), Builtin: true}, nil
	}

	record, err := s.chordRepo.GetByName(ctx, name)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("chord definition for %q %w", name, primary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chord: %w", err)
	}
	return s.recordToChord(record), nil
}

// ListChords retrieves all chords, built-in first, then registrations.
func (s *CatalogServiceImpl) ListChords(ctx context.Context) ([]*primary.Chord, error) {
	records, err := s.chordRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chords: %w", err)
	}

	chords := make([]*primary.Chord, 0, len(s.chordOrder)+len(records))
	for _, name := range s.chordOrder {
		chords = append(chords, &primary.Chord{Name: name, Shape: s.chords[name].Clone(), Builtin: true})
	}
	for _, r := range records {
		chords = append(chords, s.recordToChord(r))
	}
	return chords, nil
}

// RegisterChord adds a new chord shape for the process lifetime.
func (s *CatalogServiceImpl) RegisterChord(ctx context.Context, req primary.RegisterChordRequest) (*primary.RegisterChordResponse, error) {
	name := strings.TrimSpace(req.Name)
	shape := chord.Shape{Frets: req.Frets, Barres: req.Barres}.Clone()

	// Guard check
	_, builtin := s.chords[name]
	result := chord.CanRegisterChord(chord.RegisterChordContext{
		Name:       name,
		Shape:      shape,
		NameExists: builtin,
	})
	if !result.Allowed {
		if result.Conflict {
			return nil, fmt.Errorf("%w: %s", primary.ErrConflict, result.Reason)
		}
		return nil, fmt.Errorf("%w: %s", primary.ErrInvalidInput, result.Reason)
	}

	record := &secondary.ChordRecord{
		Name:   name,
		Frets:  shape.Frets,
		Barres: barresToRecords(shape.Barres),
	}
	err := s.chordRepo.Create(ctx, record)
	if errors.Is(err, secondary.ErrAlreadyExists) {
		return nil, fmt.Errorf("%w: chord %q already exists", primary.ErrConflict, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register chord: %w", err)
	}

	// Fetch created chord
	created, err := s.chordRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registered chord: %w", err)
	}

	return &primary.RegisterChordResponse{
		Chord: s.recordToChord(created),
	}, nil
}

// GetScale retrieves a scale by name.
func (s *CatalogServiceImpl) GetScale(ctx context.Context, name string) (*primary.Scale, error) {
	p, ok := s.scales[name]
	if !ok {
		return nil, fmt.Errorf("scale %q %w", name, primary.ErrNotFound)
	}
	return &primary.Scale{Pattern: p.Clone()}, nil
}

// ListScales retrieves all scales.
func (s *CatalogServiceImpl) ListScales(ctx context.Context) ([]*primary.Scale, error) {
	scales := make([]*primary.Scale, len(s.scaleOrder))
	for i, name := range s.scaleOrder {
		scales[i] = &primary.Scale{Pattern: s.scales[name].Clone()}
	}
	return scales, nil
}

// Helper methods

func (s *CatalogServiceImpl) recordToChord(r *secondary.ChordRecord) *primary.Chord {
	barres := make([]chord.Barre, len(r.Barres))
	for i, b := range r.Barres {
		barres[i] = chord.Barre{FromString: b.FromString, ToString: b.ToString, Fret: b.Fret}
	}
	return &primary.Chord{
		Name:      r.Name,
		Shape:     chord.Shape{Frets: append([]int(nil), r.Frets...), Barres: barres},
		CreatedAt: r.CreatedAt,
	}
}

func barresToRecords(barres []chord.Barre) []secondary.BarreRecord {
	out := make([]secondary.BarreRecord, len(barres))
	for i, b := range barres {
		out[i] = secondary.BarreRecord{FromString: b.FromString, ToString: b.ToString, Fret: b.Fret}
	}
	return out
}

// Ensure CatalogServiceImpl implements the interface
var _ primary.CatalogService = (*CatalogServiceImpl)(nil)
