package app

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/example/fretsvg/internal/core/progression"
	"github.com/example/fretsvg/internal/ports/primary"
)

func newTestProgressionService(t *testing.T) *ProgressionServiceImpl {
	t.Helper()
	model := progression.NewModel(testSnapshot(t).Progressions)
	return NewProgressionService(model, 0, rand.New(rand.NewPCG(1, 2)))
}

func TestSuggest(t *testing.T) {
	service := newTestProgressionService(t)

	resp, err := service.Suggest(context.Background(), primary.SuggestRequest{Start: "C", Length: 4})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Chords) != 4 || resp.Chords[0] != "C" {
		t.Errorf("expected 4 chords starting at C, got %v", resp.Chords)
	}
}

func TestSuggest_SeedIsReproducible(t *testing.T) {
	service := newTestProgressionService(t)
	seed := uint64(99)
	req := primary.SuggestRequest{Start: "G", Length: 8, Seed: &seed}

	a, err := service.Suggest(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	b, _ := service.Suggest(context.Background(), req)
	for i := range a.Chords {
		if a.Chords[i] != b.Chords[i] {
			t.Fatalf("same seed gave %v and %v", a.Chords, b.Chords)
		}
	}
}

func TestSuggest_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  primary.SuggestRequest
	}{
		{"missing start", primary.SuggestRequest{Length: 4}},
		{"zero length", primary.SuggestRequest{Start: "C", Length: 0}},
		{"too long", primary.SuggestRequest{Start: "C", Length: DefaultMaxLength + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestProgressionService(t)
			_, err := service.Suggest(context.Background(), tt.req)
			if !errors.Is(err, primary.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSuggest_Concurrent(t *testing.T) {
	service := newTestProgressionService(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := service.Suggest(context.Background(), primary.SuggestRequest{Start: "Am", Length: 6})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if len(resp.Chords) != 6 {
				t.Errorf("expected 6 chords, got %d", len(resp.Chords))
			}
		}()
	}
	wg.Wait()
}
