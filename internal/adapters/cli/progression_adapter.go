package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/fretsvg/internal/ports/primary"
)

// ProgressionAdapter is a thin adapter that translates CLI operations to ProgressionService calls.
type ProgressionAdapter struct {
	service primary.ProgressionService
	out     io.Writer
}

// NewProgressionAdapter creates a new ProgressionAdapter with the given service.
func NewProgressionAdapter(service primary.ProgressionService, out io.Writer) *ProgressionAdapter {
	return &ProgressionAdapter{
		service: service,
		out:     out,
	}
}

// Suggest prints a suggested progression as "C -> G -> Am -> F".
func (a *ProgressionAdapter) Suggest(ctx context.Context, req primary.SuggestRequest) ([]string, error) {
	resp, err := a.service.Suggest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest progression: %w", err)
	}

	fmt.Fprintln(a.out, strings.Join(resp.Chords, " -> "))
	return resp.Chords, nil
}
