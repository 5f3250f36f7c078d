package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/example/fretsvg/internal/ports/primary"
)

// DiagramAdapter is a thin adapter that translates CLI operations to DiagramService calls.
type DiagramAdapter struct {
	service primary.DiagramService
	out     io.Writer
}

// NewDiagramAdapter creates a new DiagramAdapter with the given service.
func NewDiagramAdapter(service primary.DiagramService, out io.Writer) *DiagramAdapter {
	return &DiagramAdapter{
		service: service,
		out:     out,
	}
}

// RenderChord renders a chord to path, or to the adapter's output when path is empty.
func (a *DiagramAdapter) RenderChord(ctx context.Context, name string, format primary.Format, path string) error {
	resp, err := a.service.RenderChord(ctx, primary.RenderChordRequest{Name: name, Format: format})
	if err != nil {
		return fmt.Errorf("failed to render chord: %w", err)
	}
	return a.write(resp, path)
}

// RenderScale renders a scale to path, or to the adapter's output when path is empty.
// frets is an optional "LO-HI" span; empty means frets 0-12.
func (a *DiagramAdapter) RenderScale(ctx context.Context, name, key, frets string, format primary.Format, path string) error {
	req := primary.RenderScaleRequest{Name: name, Key: key, Format: format}
	if frets != "" {
		from, to, err := ParseFretRange(frets)
		if err != nil {
			return err
		}
		req.From, req.To = from, to
	}

	resp, err := a.service.RenderScale(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to render scale: %w", err)
	}
	return a.write(resp, path)
}

// ScaleNotes prints the notes of a scale in a key, root highlighted.
func (a *DiagramAdapter) ScaleNotes(ctx context.Context, name, key string) ([]string, error) {
	notes, err := a.service.ScaleNotes(ctx, name, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get scale notes: %w", err)
	}

	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes.")
		return notes, nil
	}
	printed := append([]string{rootNote(notes[0])}, notes[1:]...)
	fmt.Fprintf(a.out, "%s\n", heading(fmt.Sprintf("%s %s", notes[0], name)))
	fmt.Fprintln(a.out, strings.Join(printed, " "))
	return notes, nil
}

// ParseFretRange parses a span such as "5-17". Bounds are checked by the service.
func ParseFretRange(s string) (from, to int, err error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid fret range %q: expected LO-HI", s)
	}
	if from, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
		return 0, 0, fmt.Errorf("invalid fret range %q: %w", s, err)
	}
	if to, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
		return 0, 0, fmt.Errorf("invalid fret range %q: %w", s, err)
	}
	return from, to, nil
}

func (a *DiagramAdapter) write(resp *primary.RenderResponse, path string) error {
	if path == "" {
		_, err := a.out.Write(resp.Body)
		return err
	}
	if err := os.WriteFile(path, resp.Body, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(a.out, "✓ Wrote %s (%s, %d bytes)\n", path, resp.ContentType, len(resp.Body))
	return nil
}
