package secondary

import (
	"io"

	"github.com/example/fretsvg/internal/core/diagram"
)

// DiagramEncoder defines the secondary port for turning a diagram into bytes.
type DiagramEncoder interface {
	// ContentType returns the MIME type of the encoded output.
	ContentType() string

	// Encode writes the diagram to w.
	Encode(w io.Writer, d diagram.Diagram) error
}
