// Package diagram defines vector drawing primitives as data structures.
// Renderers in the core build a Diagram; adapters decide how to encode it
// (SVG markup, PNG pixels). Elements describe what to draw, not how.
package diagram

// Element is the base interface for all drawing primitives.
type Element interface {
	// ElementType returns a string identifier for the element type.
	ElementType() string
}

// Line is a straight stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
	Class          string
}

func (Line) ElementType() string { return "line" }

// Circle is a filled and/or stroked circle. Fill "none" leaves it hollow.
type Circle struct {
	CX, CY, R   float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	Class       string
}

func (Circle) ElementType() string { return "circle" }

// Rect is a filled axis-aligned rectangle with optional rounded corners.
type Rect struct {
	X, Y, Width, Height float64
	RX, RY              float64
	Fill                string
	Class               string
}

func (Rect) ElementType() string { return "rect" }

// Anchor is the horizontal alignment of a Text element.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is a single line of text; Y is the baseline.
type Text struct {
	X, Y     float64
	FontSize float64
	Anchor   Anchor
	Content  string
	Fill     string
	Class    string
}

func (Text) ElementType() string { return "text" }

// Group translates and uniformly scales its children.
// Children are drawn in the group's coordinate space: a child point p ends up
// at (TranslateX, TranslateY) + Scale*p.
type Group struct {
	TranslateX, TranslateY float64
	Scale                  float64 // 0 means 1
	Class                  string
	Children               []Element
}

func (Group) ElementType() string { return "group" }

// EffectiveScale returns the group's scale factor, treating 0 as identity.
func (g Group) EffectiveScale() float64 {
	if g.Scale == 0 {
		return 1
	}
	return g.Scale
}

// Diagram is a complete drawing on a fixed canvas.
// Elements are positioned relative to the origin (OriginX, OriginY), which is
// usually the canvas padding.
type Diagram struct {
	Width, Height    float64
	OriginX, OriginY float64
	FontFamily       string
	Foreground       string
	Elements         []Element
}

// Add appends elements to the diagram.
func (d *Diagram) Add(elements ...Element) {
	d.Elements = append(d.Elements, elements...)
}

// Find returns every element (including group children) whose class matches.
func (d Diagram) Find(class string) []Element {
	var out []Element
	walk(d.Elements, func(e Element) {
		if ClassOf(e) == class {
			out = append(out, e)
		}
	})
	return out
}

// Count returns the number of elements with the given class.
func (d Diagram) Count(class string) int {
	return len(d.Find(class))
}

// ClassOf returns the class attribute of an element.
func ClassOf(e Element) string {
	switch v := e.(type) {
	case Line:
		return v.Class
	case Circle:
		return v.Class
	case Rect:
		return v.Class
	case Text:
		return v.Class
	case Group:
		return v.Class
	}
	return ""
}

func walk(elements []Element, fn func(Element)) {
	for _, e := range elements {
		fn(e)
		if g, ok := e.(Group); ok {
			walk(g.Children, fn)
		}
	}
}
