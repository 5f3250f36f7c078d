package app

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/example/fretsvg/internal/core/chord"
	"github.com/example/fretsvg/internal/core/diagram"
	"github.com/example/fretsvg/internal/core/scale"
	"github.com/example/fretsvg/internal/ports/primary"
	"github.com/example/fretsvg/internal/ports/secondary"
)

// DefaultKey is the key used when a scale request names none.
const DefaultKey = "E"

// DiagramServiceImpl implements the DiagramService interface.
type DiagramServiceImpl struct {
	catalog  primary.CatalogService
	encoders map[primary.Format]secondary.DiagramEncoder
}

// NewDiagramService creates a new DiagramService with injected dependencies.
func NewDiagramService(catalog primary.CatalogService, encoders map[primary.Format]secondary.DiagramEncoder) *DiagramServiceImpl {
	return &DiagramServiceImpl{
		catalog:  catalog,
		encoders: encoders,
	}
}

// RenderChord looks up a chord and renders its chord box.
func (s *DiagramServiceImpl) RenderChord(ctx context.Context, req primary.RenderChordRequest) (*primary.RenderResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: chord name not provided", primary.ErrInvalidInput)
	}
	encoder, err := s.encoderFor(req.Format)
	if err != nil {
		return nil, err
	}

	c, err := s.catalog.GetChord(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	return encode(encoder, chord.Render(c.Shape))
}

// RenderScale looks up a scale and renders it across the fretboard in a key.
func (s *DiagramServiceImpl) RenderScale(ctx context.Context, req primary.RenderScaleRequest) (*primary.RenderResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: scale name not provided", primary.ErrInvalidInput)
	}
	encoder, err := s.encoderFor(req.Format)
	if err != nil {
		return nil, err
	}
	key, err := parseKey(req.Key)
	if err != nil {
		return nil, err
	}
	from, to := req.From, req.To
	if from == 0 && to == 0 {
		to = scale.FretCount
	}
	if err := scale.ValidateRange(from, to); err != nil {
		return nil, fmt.Errorf("%w: %s", primary.ErrInvalidInput, err.Error())
	}

	sc, err := s.catalog.GetScale(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	return encode(encoder, scale.RenderRange(sc.Pattern, key, from, to))
}

// ScaleNotes returns the note names of a scale in a key.
func (s *DiagramServiceImpl) ScaleNotes(ctx context.Context, name, key string) ([]string, error) {
	k, err := parseKey(key)
	if err != nil {
		return nil, err
	}

	sc, err := s.catalog.GetScale(ctx, name)
	if err != nil {
		return nil, err
	}
	return sc.Pattern.Notes(k), nil
}

// Helper methods

func (s *DiagramServiceImpl) encoderFor(format primary.Format) (secondary.DiagramEncoder, error) {
	if format == "" {
		format = primary.FormatSVG
	}
	encoder, ok := s.encoders[primary.Format(strings.ToLower(string(format)))]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported format %q", primary.ErrInvalidInput, format)
	}
	return encoder, nil
}

func parseKey(key string) (scale.Key, error) {
	if strings.TrimSpace(key) == "" {
		key = DefaultKey
	}
	k, err := scale.ParseKey(key)
	if err != nil {
		return scale.Key{}, fmt.Errorf("%w: %s", primary.ErrInvalidInput, err.Error())
	}
	return k, nil
}

func encode(encoder secondary.DiagramEncoder, d diagram.Diagram) (*primary.RenderResponse, error) {
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, d); err != nil {
		return nil, fmt.Errorf("failed to encode diagram: %w", err)
	}
	return &primary.RenderResponse{
		ContentType: encoder.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// Ensure DiagramServiceImpl implements the interface
var _ primary.DiagramService = (*DiagramServiceImpl)(nil)
