// Package svg encodes diagrams as self-contained SVG documents.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/example/fretsvg/internal/core/diagram"
	"github.com/example/fretsvg/internal/ports/secondary"
)

// ContentType is the MIME type of the encoded output.
const ContentType = "image/svg+xml; charset=utf-8"

const namespace = "http://www.w3.org/2000/svg"

// Encoder implements secondary.DiagramEncoder with SVG markup.
type Encoder struct{}

// NewEncoder creates a new SVG encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// ContentType returns the SVG MIME type.
func (e *Encoder) ContentType() string {
	return ContentType
}

// Encode writes d as an SVG document to w.
func (e *Encoder) Encode(w io.Writer, d diagram.Diagram) error {
	enc := xml.NewEncoder(w)

	root := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			attr("xmlns", namespace),
			attr("width", num(d.Width)),
			attr("height", num(d.Height)),
			attr("viewBox", fmt.Sprintf("0 0 %s %s", num(d.Width), num(d.Height))),
		},
	}
	if d.FontFamily != "" {
		root.Attr = append(root.Attr, attr("font-family", d.FontFamily))
	}
	if err := enc.EncodeToken(root); err != nil {
		return fmt.Errorf("failed to write svg root: %w", err)
	}

	group := diagram.Group{TranslateX: d.OriginX, TranslateY: d.OriginY, Class: "diagram", Children: d.Elements}
	w2 := &writer{enc: enc, foreground: d.Foreground}
	if err := w2.element(group); err != nil {
		return err
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return fmt.Errorf("failed to close svg root: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("failed to flush svg: %w", err)
	}
	return nil
}

type writer struct {
	enc        *xml.Encoder
	foreground string
}

func (w *writer) element(e diagram.Element) error {
	switch v := e.(type) {
	case diagram.Line:
		return w.empty("line", v.Class,
			attr("x1", num(v.X1)), attr("y1", num(v.Y1)),
			attr("x2", num(v.X2)), attr("y2", num(v.Y2)),
			attr("stroke", w.color(v.Stroke)),
			attr("stroke-width", num(v.StrokeWidth)),
		)
	case diagram.Circle:
		attrs := []xml.Attr{
			attr("cx", num(v.CX)), attr("cy", num(v.CY)), attr("r", num(v.R)),
			attr("fill", w.color(v.Fill)),
		}
		if v.Stroke != "" {
			attrs = append(attrs, attr("stroke", v.Stroke), attr("stroke-width", num(v.StrokeWidth)))
		}
		return w.empty("circle", v.Class, attrs...)
	case diagram.Rect:
		return w.empty("rect", v.Class,
			attr("x", num(v.X)), attr("y", num(v.Y)),
			attr("width", num(v.Width)), attr("height", num(v.Height)),
			attr("rx", num(v.RX)), attr("ry", num(v.RY)),
			attr("fill", w.color(v.Fill)),
		)
	case diagram.Text:
		return w.text(v)
	case diagram.Group:
		return w.group(v)
	}
	return fmt.Errorf("unsupported element type %q", e.ElementType())
}

func (w *writer) group(g diagram.Group) error {
	transform := fmt.Sprintf("translate(%s,%s)", num(g.TranslateX), num(g.TranslateY))
	if s := g.EffectiveScale(); s != 1 {
		transform += fmt.Sprintf(" scale(%s)", num(s))
	}
	start := xml.StartElement{Name: xml.Name{Local: "g"}, Attr: withClass(g.Class, attr("transform", transform))}
	if err := w.enc.EncodeToken(start); err != nil {
		return fmt.Errorf("failed to write group: %w", err)
	}
	for _, child := range g.Children {
		if err := w.element(child); err != nil {
			return err
		}
	}
	if err := w.enc.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("failed to close group: %w", err)
	}
	return nil
}

func (w *writer) text(t diagram.Text) error {
	anchor := t.Anchor
	if anchor == "" {
		anchor = diagram.AnchorStart
	}
	start := xml.StartElement{Name: xml.Name{Local: "text"}, Attr: withClass(t.Class,
		attr("x", num(t.X)), attr("y", num(t.Y)),
		attr("font-size", num(t.FontSize)),
		attr("text-anchor", string(anchor)),
		attr("fill", w.color(t.Fill)),
	)}
	if err := w.enc.EncodeToken(start); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	if err := w.enc.EncodeToken(xml.CharData(t.Content)); err != nil {
		return fmt.Errorf("failed to write text content: %w", err)
	}
	if err := w.enc.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("failed to close text: %w", err)
	}
	return nil
}

func (w *writer) empty(name, class string, attrs ...xml.Attr) error {
	start := xml.StartElement{Name: xml.Name{Local: name}, Attr: withClass(class, attrs...)}
	if err := w.enc.EncodeToken(start); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := w.enc.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}

func (w *writer) color(c string) string {
	if c == "" {
		return w.foreground
	}
	return c
}

func withClass(class string, attrs ...xml.Attr) []xml.Attr {
	if class == "" {
		return attrs
	}
	return append([]xml.Attr{attr("class", class)}, attrs...)
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Ensure Encoder implements the interface
var _ secondary.DiagramEncoder = (*Encoder)(nil)
