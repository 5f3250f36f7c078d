// Package progression contains a first-order Markov model over chord names.
// This is part of the Functional Core - randomness is injected by the caller.
package progression

import "math/rand/v2"

// Edge is a weighted transition to the next chord.
type Edge struct {
	To     string
	Weight int
}

// Model is a fixed transition table built from example sequences.
// It is immutable after NewModel and safe for concurrent reads.
type Model struct {
	vocabulary []string
	edges      map[string][]Edge
}

// NewModel counts chord-to-chord transitions in the training sequences.
// The vocabulary lists every chord seen, in first-seen order.
func NewModel(sequences [][]string) *Model {
	m := &Model{edges: make(map[string][]Edge)}
	seen := make(map[string]bool)
	index := make(map[string]map[string]int)

	for _, seq := range sequences {
		for i, name := range seq {
			if !seen[name] {
				seen[name] = true
				m.vocabulary = append(m.vocabulary, name)
			}
			if i == 0 {
				continue
			}
			from := seq[i-1]
			if index[from] == nil {
				index[from] = make(map[string]int)
			}
			if pos, ok := index[from][name]; ok {
				m.edges[from][pos].Weight++
				continue
			}
			index[from][name] = len(m.edges[from])
			m.edges[from] = append(m.edges[from], Edge{To: name, Weight: 1})
		}
	}

	return m
}

// Vocabulary returns the chords known to the model.
func (m *Model) Vocabulary() []string {
	return append([]string(nil), m.vocabulary...)
}

// Successors returns the recorded transitions out of chord.
func (m *Model) Successors(chord string) []Edge {
	return append([]Edge(nil), m.edges[chord]...)
}

// Next picks the chord that follows current: a weighted pick among recorded
// successors, or a uniform pick from the vocabulary when there are none.
// Returns "" only when the model is empty.
func (m *Model) Next(current string, rng *rand.Rand) string {
	edges := m.edges[current]
	if len(edges) == 0 {
		if len(m.vocabulary) == 0 {
			return ""
		}
		return m.vocabulary[rng.IntN(len(m.vocabulary))]
	}

	total := 0
	for _, e := range edges {
		total += e.Weight
	}
	pick := rng.IntN(total)
	for _, e := range edges {
		if pick < e.Weight {
			return e.To
		}
		pick -= e.Weight
	}
	return edges[len(edges)-1].To
}

// Suggest returns length chord names starting with start.
func (m *Model) Suggest(start string, length int, rng *rand.Rand) []string {
	if length <= 0 {
		return nil
	}
	out := make([]string, 0, length)
	out = append(out, start)
	for len(out) < length {
		next := m.Next(out[len(out)-1], rng)
		if next == "" {
			break
		}
		out = append(out, next)
	}
	return out
}
