package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/fretsvg/internal/core/chord"
	"github.com/example/fretsvg/internal/core/scale"
	"github.com/example/fretsvg/internal/ports/primary"
)

const (
	defaultProgressionLength = 4
	maxRegisterBody          = 64 << 10
)

type chordJSON struct {
	Name      string        `json:"name"`
	Frets     []int         `json:"frets"`
	Barres    []chord.Barre `json:"barres"`
	Notation  string        `json:"notation"`
	Builtin   bool          `json:"builtin"`
	CreatedAt string        `json:"createdAt,omitempty"`
}

type scaleJSON struct {
	Name      string   `json:"name"`
	Intervals []int    `json:"intervals"`
	Key       string   `json:"key,omitempty"`
	Notes     []string `json:"notes,omitempty"`
}

type registerChordJSON struct {
	Name   string        `json:"name"`
	Frets  []int         `json:"frets"`
	Barres []chord.Barre `json:"barres"`
}

type progressionJSON struct {
	Chords []string `json:"chords"`
}

func (s *Server) handleChordDiagram(w http.ResponseWriter, r *http.Request) {
	resp, err := s.diagrams.RenderChord(r.Context(), primary.RenderChordRequest{
		Name:   r.FormValue("chord"),
		Format: primary.Format(r.FormValue("format")),
	})
	if err != nil {
		s.writeError(w, r, err, "error generating chord diagram")
		return
	}
	s.writeBody(w, resp.ContentType, resp.Body)
}

func (s *Server) handleScaleDiagram(w http.ResponseWriter, r *http.Request) {
	req := primary.RenderScaleRequest{
		Name:   r.FormValue("scale"),
		Key:    r.FormValue("key"),
		Format: primary.Format(r.FormValue("format")),
	}
	from, to := r.FormValue("from"), r.FormValue("to")
	if from != "" || to != "" {
		var err error
		if req.From, err = formInt(from, 0); err != nil {
			s.writeError(w, r, fmt.Errorf("%w: from must be an integer", primary.ErrInvalidInput), "")
			return
		}
		if req.To, err = formInt(to, scale.FretCount); err != nil {
			s.writeError(w, r, fmt.Errorf("%w: to must be an integer", primary.ErrInvalidInput), "")
			return
		}
	}

	resp, err := s.diagrams.RenderScale(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err, "error generating scale diagram")
		return
	}
	s.writeBody(w, resp.ContentType, resp.Body)
}

func (s *Server) handleListChords(w http.ResponseWriter, r *http.Request) {
	chords, err := s.catalog.ListChords(r.Context())
	if err != nil {
		s.writeError(w, r, err, "error listing chords")
		return
	}
	out := make([]chordJSON, len(chords))
	for i, c := range chords {
		out[i] = toChordJSON(c)
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetChord(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog.GetChord(r.Context(), r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err, "error loading chord")
		return
	}
	s.writeJSON(w, http.StatusOK, toChordJSON(c))
}

func (s *Server) handleRegisterChord(w http.ResponseWriter, r *http.Request) {
	var req registerChordJSON
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRegisterBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: malformed chord: %s", primary.ErrInvalidInput, err.Error()), "")
		return
	}

	resp, err := s.catalog.RegisterChord(r.Context(), primary.RegisterChordRequest{
		Name:   req.Name,
		Frets:  req.Frets,
		Barres: req.Barres,
	})
	if err != nil {
		s.writeError(w, r, err, "error registering chord")
		return
	}
	s.writeJSON(w, http.StatusCreated, toChordJSON(resp.Chord))
}

func (s *Server) handleListScales(w http.ResponseWriter, r *http.Request) {
	scales, err := s.catalog.ListScales(r.Context())
	if err != nil {
		s.writeError(w, r, err, "error listing scales")
		return
	}
	out := make([]scaleJSON, len(scales))
	for i, sc := range scales {
		out[i] = scaleJSON{Name: sc.Pattern.Name, Intervals: sc.Pattern.Intervals}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetScale(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	sc, err := s.catalog.GetScale(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err, "error loading scale")
		return
	}

	out := scaleJSON{Name: sc.Pattern.Name, Intervals: sc.Pattern.Intervals}
	if key := strings.TrimSpace(r.URL.Query().Get("key")); key != "" {
		notes, err := s.diagrams.ScaleNotes(r.Context(), name, key)
		if err != nil {
			s.writeError(w, r, err, "error loading scale")
			return
		}
		out.Key = key
		out.Notes = notes
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProgression(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := primary.SuggestRequest{Start: q.Get("start"), Length: defaultProgressionLength}

	if v := q.Get("length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("%w: length must be an integer", primary.ErrInvalidInput), "")
			return
		}
		req.Length = n
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("%w: seed must be a non-negative integer", primary.ErrInvalidInput), "")
			return
		}
		req.Seed = &seed
	}

	resp, err := s.progressions.Suggest(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err, "error suggesting progression")
		return
	}
	s.writeJSON(w, http.StatusOK, progressionJSON{Chords: resp.Chords})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// formInt parses an optional integer form value.
func formInt(v string, fallback int) (int, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

func toChordJSON(c *primary.Chord) chordJSON {
	barres := c.Shape.Barres
	if barres == nil {
		barres = []chord.Barre{}
	}
	return chordJSON{
		Name:      c.Name,
		Frets:     c.Shape.Frets,
		Barres:    barres,
		Notation:  c.Shape.Notation(),
		Builtin:   c.Builtin,
		CreatedAt: c.CreatedAt,
	}
}
