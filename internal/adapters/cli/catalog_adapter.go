package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/fretsvg/internal/core/chord"
	"github.com/example/fretsvg/internal/ports/primary"
)

// CatalogAdapter is a thin adapter that translates CLI operations to CatalogService calls.
type CatalogAdapter struct {
	service primary.CatalogService
	out     io.Writer
}

// NewCatalogAdapter creates a new CatalogAdapter with the given service.
func NewCatalogAdapter(service primary.CatalogService, out io.Writer) *CatalogAdapter {
	return &CatalogAdapter{
		service: service,
		out:     out,
	}
}

// ListChords prints every known chord.
func (a *CatalogAdapter) ListChords(ctx context.Context) ([]*primary.Chord, error) {
	chords, err := a.service.ListChords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chords: %w", err)
	}

	if len(chords) == 0 {
		fmt.Fprintln(a.out, "No chords found.")
		return chords, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSHAPE\tBARRES\tSOURCE")
	fmt.Fprintln(w, "----\t-----\t------\t------")

	for _, c := range chords {
		source := builtinMarker
		if !c.Builtin {
			source = registeredMarker
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			c.Name,
			c.Shape.Notation(),
			len(c.Shape.Barres),
			source,
		)
	}

	w.Flush()
	return chords, nil
}

// ShowChord displays details for a single chord.
func (a *CatalogAdapter) ShowChord(ctx context.Context, name string) (*primary.Chord, error) {
	c, err := a.service.GetChord(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get chord: %w", err)
	}

	window := c.Shape.Window()
	fmt.Fprintf(a.out, "\n%s\n", heading("Chord: "+c.Name))
	fmt.Fprintf(a.out, "Shape:    %s\n", c.Shape.Notation())
	fmt.Fprintf(a.out, "Position: %d\n", window.Position)
	for _, b := range c.Shape.Barres {
		fmt.Fprintf(a.out, "Barre:    fret %d, strings %d-%d\n", b.Fret, b.FromString, b.ToString)
	}
	if c.CreatedAt != "" {
		fmt.Fprintf(a.out, "Created:  %s\n", c.CreatedAt)
	}
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, tabGrid(c.Shape))
	fmt.Fprintln(a.out)

	return c, nil
}

// ListScales prints every known scale.
func (a *CatalogAdapter) ListScales(ctx context.Context) ([]*primary.Scale, error) {
	scales, err := a.service.ListScales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scales: %w", err)
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tINTERVALS")
	fmt.Fprintln(w, "----\t---------")
	for _, s := range scales {
		parts := make([]string, len(s.Pattern.Intervals))
		for i, v := range s.Pattern.Intervals {
			parts[i] = fmt.Sprint(v)
		}
		fmt.Fprintf(w, "%s\t%s\n", s.Pattern.Name, strings.Join(parts, " "))
	}

	w.Flush()
	return scales, nil
}

// tabGrid draws the chord window as text, one line per string from the
// highest-pitched string down, e.g. "e |-0-|---|---|".
func tabGrid(shape chord.Shape) string {
	window := shape.Window()
	labels := []string{"E", "A", "D", "G", "B", "e"}

	var b strings.Builder
	for i := len(shape.Frets) - 1; i >= 0; i-- {
		fret := shape.Frets[i]
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}

		head := " "
		switch fret {
		case chord.Muted:
			head = "x"
		case chord.Open:
			head = "o"
		}
		fmt.Fprintf(&b, "%s %s|", label, head)
		for row := 1; row <= window.Size; row++ {
			if fret > 0 && window.Contains(fret) && window.Row(fret) == row {
				b.WriteString("-*-|")
			} else {
				b.WriteString("---|")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
