package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/example/fretsvg/internal/catalog"
	"github.com/example/fretsvg/internal/core/diagram"
	"github.com/example/fretsvg/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockChordRepository implements secondary.ChordRepository for testing.
type mockChordRepository struct {
	mu        sync.Mutex
	chords    map[string]*secondary.ChordRecord
	order     []string
	createErr error
	getErr    error
	listErr   error
}

func newMockChordRepository() *mockChordRepository {
	return &mockChordRepository{
		chords: make(map[string]*secondary.ChordRecord),
	}
}

func (m *mockChordRepository) Create(ctx context.Context, chord *secondary.ChordRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.chords[chord.Name]; ok {
		return fmt.Errorf("chord %q: %w", chord.Name, secondary.ErrAlreadyExists)
	}
	copied := *chord
	copied.CreatedAt = "2026-01-01T00:00:00Z"
	m.chords[chord.Name] = &copied
	m.order = append(m.order, chord.Name)
	return nil
}

func (m *mockChordRepository) GetByName(ctx context.Context, name string) (*secondary.ChordRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if chord, ok := m.chords[name]; ok {
		return chord, nil
	}
	return nil, fmt.Errorf("chord %q: %w", name, secondary.ErrNotFound)
}

func (m *mockChordRepository) List(ctx context.Context) ([]*secondary.ChordRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]*secondary.ChordRecord, 0, len(m.order))
	for _, name := range m.order {
		result = append(result, m.chords[name])
	}
	return result, nil
}

// mockEncoder implements secondary.DiagramEncoder for testing.
// It writes the class names of the top-level elements.
type mockEncoder struct {
	contentType string
	encodeErr   error
	last        diagram.Diagram
}

func (m *mockEncoder) ContentType() string { return m.contentType }

func (m *mockEncoder) Encode(w io.Writer, d diagram.Diagram) error {
	if m.encodeErr != nil {
		return m.encodeErr
	}
	m.last = d
	for _, e := range d.Elements {
		fmt.Fprintln(w, diagram.ClassOf(e))
	}
	return nil
}

// testSnapshot loads the embedded catalog or fails the test.
func testSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()
	snap, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return snap
}
