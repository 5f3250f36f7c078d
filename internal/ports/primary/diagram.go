package primary

import "context"

// Format names an output encoding for diagrams.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// DiagramService defines the primary port for rendering diagrams.
type DiagramService interface {
	// RenderChord looks up a chord and renders its chord box.
	RenderChord(ctx context.Context, req RenderChordRequest) (*RenderResponse, error)

	// RenderScale looks up a scale and renders it across the fretboard in a key.
	RenderScale(ctx context.Context, req RenderScaleRequest) (*RenderResponse, error)

	// ScaleNotes returns the note names of a scale in a key.
	ScaleNotes(ctx context.Context, name, key string) ([]string, error)
}

// RenderChordRequest contains parameters for rendering a chord box.
type RenderChordRequest struct {
	Name   string
	Format Format // empty means SVG
}

// RenderScaleRequest contains parameters for rendering a scale.
type RenderScaleRequest struct {
	Name   string
	Key    string // empty means E
	Format Format // empty means SVG

	// From and To bound the frets shown. Both zero means frets 0-12.
	From int
	To   int
}

// RenderResponse contains an encoded diagram.
type RenderResponse struct {
	ContentType string
	Body        []byte
}
