package primary

import "context"

// ProgressionService defines the primary port for chord progression suggestions.
type ProgressionService interface {
	// Suggest generates a progression starting at a chord.
	Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error)
}

// SuggestRequest contains parameters for a progression suggestion.
type SuggestRequest struct {
	Start  string
	Length int
	Seed   *uint64 // nil uses the service's shared generator
}

// SuggestResponse contains the suggested progression.
type SuggestResponse struct {
	Chords []string
}
