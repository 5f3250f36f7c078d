// Package raster encodes diagrams as PNG images using the gg 2D renderer.
package raster

import (
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/example/fretsvg/internal/core/diagram"
	"github.com/example/fretsvg/internal/ports/secondary"
)

// ContentType is the MIME type of the encoded output.
const ContentType = "image/png"

// Encoder implements secondary.DiagramEncoder with PNG output.
// Text is drawn with the Go Regular font regardless of the diagram's
// font family.
type Encoder struct {
	once    sync.Once
	source  *text.FontSource
	loadErr error

	// mu serializes drawing; font faces share glyph caches.
	mu sync.Mutex
}

// NewEncoder creates a new PNG encoder. The font is loaded on first use.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// ContentType returns the PNG MIME type.
func (e *Encoder) ContentType() string {
	return ContentType
}

// Encode rasterizes d at its canvas size and writes a PNG to w.
func (e *Encoder) Encode(w io.Writer, d diagram.Diagram) error {
	source, err := e.font()
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	dc := gg.NewContext(int(math.Ceil(d.Width)), int(math.Ceil(d.Height)))
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	p := &painter{dc: dc, source: source, foreground: d.Foreground}
	origin := transform{dx: d.OriginX, dy: d.OriginY, scale: 1}
	for _, el := range d.Elements {
		if err := p.draw(el, origin); err != nil {
			return err
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return errors.Wrap(err, "failed to encode png")
	}
	return nil
}

// Close releases the loaded font.
func (e *Encoder) Close() error {
	if e.source == nil {
		return nil
	}
	return e.source.Close()
}

func (e *Encoder) font() (*text.FontSource, error) {
	e.once.Do(func() {
		e.source, e.loadErr = text.NewFontSource(goregular.TTF)
		if e.loadErr != nil {
			e.loadErr = errors.Wrap(e.loadErr, "failed to load font")
		}
	})
	return e.source, e.loadErr
}

// transform maps diagram coordinates to pixels: p' = (dx, dy) + scale*p.
type transform struct {
	dx, dy, scale float64
}

func (t transform) point(x, y float64) (float64, float64) {
	return t.dx + t.scale*x, t.dy + t.scale*y
}

func (t transform) length(v float64) float64 {
	return t.scale * v
}

func (t transform) then(g diagram.Group) transform {
	x, y := t.point(g.TranslateX, g.TranslateY)
	return transform{dx: x, dy: y, scale: t.scale * g.EffectiveScale()}
}

type painter struct {
	dc         *gg.Context
	source     *text.FontSource
	foreground string
}

func (p *painter) draw(el diagram.Element, t transform) error {
	switch v := el.(type) {
	case diagram.Line:
		x1, y1 := t.point(v.X1, v.Y1)
		x2, y2 := t.point(v.X2, v.Y2)
		p.dc.DrawLine(x1, y1, x2, y2)
		return p.stroke(v.Stroke, t.length(v.StrokeWidth))
	case diagram.Circle:
		cx, cy := t.point(v.CX, v.CY)
		r := t.length(v.R)
		if v.Fill != "none" {
			p.dc.DrawCircle(cx, cy, r)
			if err := p.fill(v.Fill); err != nil {
				return err
			}
		}
		if v.Stroke != "" {
			p.dc.DrawCircle(cx, cy, r)
			return p.stroke(v.Stroke, t.length(v.StrokeWidth))
		}
		return nil
	case diagram.Rect:
		x, y := t.point(v.X, v.Y)
		p.dc.DrawRoundedRectangle(x, y, t.length(v.Width), t.length(v.Height), t.length(math.Max(v.RX, v.RY)))
		return p.fill(v.Fill)
	case diagram.Text:
		x, y := t.point(v.X, v.Y)
		p.dc.SetFont(p.source.Face(t.length(v.FontSize)))
		p.dc.SetHexColor(p.color(v.Fill))
		p.dc.DrawStringAnchored(v.Content, x, y, anchorX(v.Anchor), 0)
		return nil
	case diagram.Group:
		inner := t.then(v)
		for _, child := range v.Children {
			if err := p.draw(child, inner); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Errorf("unsupported element type %q", el.ElementType())
}

func (p *painter) fill(c string) error {
	p.dc.SetHexColor(p.color(c))
	return errors.Wrap(p.dc.Fill(), "failed to fill")
}

func (p *painter) stroke(c string, width float64) error {
	p.dc.SetHexColor(p.color(c))
	p.dc.SetLineWidth(width)
	return errors.Wrap(p.dc.Stroke(), "failed to stroke")
}

func (p *painter) color(c string) string {
	if c == "" || c == "none" {
		return p.foreground
	}
	return c
}

func anchorX(a diagram.Anchor) float64 {
	switch a {
	case diagram.AnchorMiddle:
		return 0.5
	case diagram.AnchorEnd:
		return 1
	}
	return 0
}

// Ensure Encoder implements the interface
var _ secondary.DiagramEncoder = (*Encoder)(nil)
