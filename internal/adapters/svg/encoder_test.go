package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/example/fretsvg/internal/core/chord"
	"github.com/example/fretsvg/internal/core/diagram"
	"github.com/example/fretsvg/internal/core/scale"
)

type node struct {
	name  string
	attrs map[string]string
	text  string
}

// parse decodes the document and returns every element in document order.
func parse(t *testing.T, data []byte) []node {
	t.Helper()

	dec := xml.NewDecoder(bytes.NewReader(data))
	var (
		nodes []node
		stack []int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("output is not well-formed XML: %v\n%s", err, data)
		}
		switch v := tok.(type) {
		case xml.StartElement:
			n := node{name: v.Name.Local, attrs: map[string]string{}}
			for _, a := range v.Attr {
				n.attrs[a.Name.Local] = a.Value
			}
			nodes = append(nodes, n)
			stack = append(stack, len(nodes)-1)
		case xml.CharData:
			if len(stack) > 0 {
				nodes[stack[len(stack)-1]].text += string(v)
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	return nodes
}

func byClass(nodes []node, class string) []node {
	var out []node
	for _, n := range nodes {
		if n.attrs["class"] == class {
			out = append(out, n)
		}
	}
	return out
}

func encode(t *testing.T, d diagram.Diagram) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := NewEncoder().Encode(&buf, d); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	return buf.Bytes()
}

func TestEncode_Document(t *testing.T) {
	data := encode(t, chord.Render(chord.Shape{Frets: []int{-1, 3, 2, 0, 1, 0}}))
	nodes := parse(t, data)

	root := nodes[0]
	if root.name != "svg" {
		t.Fatalf("root = %q, want svg", root.name)
	}
	want := map[string]string{"width": "250", "height": "300", "viewBox": "0 0 250 300", "font-family": "Arial"}
	for k, v := range want {
		if root.attrs[k] != v {
			t.Errorf("svg %s = %q, want %q", k, root.attrs[k], v)
		}
	}
	if !strings.Contains(string(data), `xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg namespace")
	}

	if nodes[1].name != "g" || nodes[1].attrs["transform"] != "translate(40,50)" {
		t.Errorf("padding group = %+v", nodes[1])
	}
}

func TestEncode_ChordElements(t *testing.T) {
	nodes := parse(t, encode(t, chord.Render(chord.Shape{Frets: []int{-1, 3, 2, 0, 1, 0}})))

	tests := []struct {
		class string
		name  string
		want  int
	}{
		{"nut", "line", 1},
		{"fret", "line", 5},
		{"string", "line", 6},
		{"dot", "circle", 3},
		{"open", "circle", 2},
		{"muted", "g", 1},
		{"barre", "rect", 0},
		{"position", "text", 0},
	}
	for _, tt := range tests {
		got := byClass(nodes, tt.class)
		if len(got) != tt.want {
			t.Errorf("%s elements = %d, want %d", tt.class, len(got), tt.want)
		}
		for _, n := range got {
			if n.name != tt.name {
				t.Errorf("%s element tag = %q, want %q", tt.class, n.name, tt.name)
			}
		}
	}

	open := byClass(nodes, "open")[0]
	if open.attrs["fill"] != "none" || open.attrs["stroke"] != "#000000" {
		t.Errorf("open marker attrs = %v", open.attrs)
	}
	muted := byClass(nodes, "muted")[0]
	if !strings.Contains(muted.attrs["transform"], "scale(0.7)") {
		t.Errorf("muted transform = %q", muted.attrs["transform"])
	}
}

func TestEncode_Barre(t *testing.T) {
	shape := chord.Shape{
		Frets:  []int{1, 3, 3, 2, 1, 1},
		Barres: []chord.Barre{{FromString: 6, ToString: 1, Fret: 1}},
	}
	nodes := parse(t, encode(t, chord.Render(shape)))

	rects := byClass(nodes, "barre")
	if len(rects) != 1 {
		t.Fatalf("barre rects = %d, want 1", len(rects))
	}
	if rects[0].attrs["x"] != "0" || rects[0].attrs["width"] != "170" {
		t.Errorf("barre x/width = %s/%s, want 0/170", rects[0].attrs["x"], rects[0].attrs["width"])
	}
}

func TestEncode_PositionLabel(t *testing.T) {
	nodes := parse(t, encode(t, chord.Render(chord.Shape{Frets: []int{-1, 5, 7, 7, 6, 5}})))

	labels := byClass(nodes, "position")
	if len(labels) != 1 {
		t.Fatalf("position labels = %d, want 1", len(labels))
	}
	if labels[0].text != "5" || labels[0].attrs["text-anchor"] != "middle" {
		t.Errorf("label = %+v", labels[0])
	}
}

func TestEncode_EscapesText(t *testing.T) {
	d := diagram.Diagram{Width: 10, Height: 10}
	d.Add(diagram.Text{Content: `<R&B "blues">`, Class: "title"})

	nodes := parse(t, encode(t, d))
	titles := byClass(nodes, "title")
	if len(titles) != 1 || titles[0].text != `<R&B "blues">` {
		t.Errorf("title = %+v", titles)
	}
}

func TestEncode_Scale(t *testing.T) {
	p := scale.Pattern{Name: "minor pentatonic", Intervals: []int{0, 3, 5, 7, 10}}
	nodes := parse(t, encode(t, scale.Render(p, scale.Key{Root: 0})))

	if got := len(byClass(nodes, "root")) + len(byClass(nodes, "tone")); got != 36 {
		t.Errorf("scale dots = %d, want 36", got)
	}
	for _, n := range byClass(nodes, "root") {
		if n.attrs["fill"] != scale.RootFill {
			t.Errorf("root fill = %q", n.attrs["fill"])
		}
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.0001, "0"},
		{40, "40"},
		{9.714285714, "9.714"},
		{-16, "-16"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContentType(t *testing.T) {
	if NewEncoder().ContentType() != "image/svg+xml; charset=utf-8" {
		t.Errorf("unexpected content type %q", NewEncoder().ContentType())
	}
}
