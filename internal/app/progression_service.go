package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/example/fretsvg/internal/core/progression"
	"github.com/example/fretsvg/internal/ports/primary"
)

// DefaultMaxLength caps suggestion length when none is configured.
const DefaultMaxLength = 32

// ProgressionServiceImpl implements the ProgressionService interface.
type ProgressionServiceImpl struct {
	model     *progression.Model
	maxLength int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewProgressionService creates a new ProgressionService.
// rng is the shared generator used for unseeded requests.
func NewProgressionService(model *progression.Model, maxLength int, rng *rand.Rand) *ProgressionServiceImpl {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ProgressionServiceImpl{
		model:     model,
		maxLength: maxLength,
		rng:       rng,
	}
}

// Suggest generates a progression starting at a chord.
func (s *ProgressionServiceImpl) Suggest(ctx context.Context, req primary.SuggestRequest) (*primary.SuggestResponse, error) {
	start := strings.TrimSpace(req.Start)
	if start == "" {
		return nil, fmt.Errorf("%w: start chord is required", primary.ErrInvalidInput)
	}
	if req.Length < 1 || req.Length > s.maxLength {
		return nil, fmt.Errorf("%w: length must be between 1 and %d (got %d)", primary.ErrInvalidInput, s.maxLength, req.Length)
	}

	if req.Seed != nil {
		rng := rand.New(rand.NewPCG(*req.Seed, *req.Seed))
		return &primary.SuggestResponse{Chords: s.model.Suggest(start, req.Length, rng)}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return &primary.SuggestResponse{Chords: s.model.Suggest(start, req.Length, s.rng)}, nil
}

// Ensure ProgressionServiceImpl implements the interface
var _ primary.ProgressionService = (*ProgressionServiceImpl)(nil)
