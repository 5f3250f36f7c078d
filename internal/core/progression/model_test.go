package progression

import (
	"math/rand/v2"
	"testing"
)

var training = [][]string{
	{"C", "G", "Am", "F"},
	{"C", "Am", "F", "G"},
	{"G", "D", "Em", "C"},
	{"Am", "F", "C", "G"},
}

func TestNewModel_Vocabulary(t *testing.T) {
	m := NewModel(training)

	want := []string{"C", "G", "Am", "F", "D", "Em"}
	got := m.Vocabulary()
	if len(got) != len(want) {
		t.Fatalf("Vocabulary() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vocabulary()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewModel_Weights(t *testing.T) {
	m := NewModel(training)

	tests := []struct {
		from string
		want map[string]int
	}{
		{"C", map[string]int{"G": 2, "Am": 1}},
		{"Am", map[string]int{"F": 3}},
		{"F", map[string]int{"G": 1, "C": 1}},
		{"G", map[string]int{"Am": 1, "D": 1}},
		{"Em", map[string]int{"C": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			edges := m.Successors(tt.from)
			if len(edges) != len(tt.want) {
				t.Fatalf("Successors(%q) = %v, want %v", tt.from, edges, tt.want)
			}
			for _, e := range edges {
				if tt.want[e.To] != e.Weight {
					t.Errorf("edge %s->%s weight = %d, want %d", tt.from, e.To, e.Weight, tt.want[e.To])
				}
			}
		})
	}
}

func TestModel_SuggestFollowsEdges(t *testing.T) {
	m := NewModel(training)
	rng := rand.New(rand.NewPCG(1, 2))

	for run := 0; run < 50; run++ {
		seq := m.Suggest("C", 8, rng)
		if len(seq) != 8 {
			t.Fatalf("len = %d, want 8", len(seq))
		}
		if seq[0] != "C" {
			t.Fatalf("first chord = %q, want C", seq[0])
		}
		for i := 1; i < len(seq); i++ {
			if !hasEdge(m, seq[i-1], seq[i]) {
				t.Errorf("step %s -> %s is not a recorded transition", seq[i-1], seq[i])
			}
		}
	}
}

func TestModel_SuggestReproducibleWithSeed(t *testing.T) {
	m := NewModel(training)

	a := m.Suggest("G", 6, rand.New(rand.NewPCG(42, 7)))
	b := m.Suggest("G", 6, rand.New(rand.NewPCG(42, 7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed gave %v and %v", a, b)
		}
	}
}

func TestModel_UnknownStartFallsBackToVocabulary(t *testing.T) {
	m := NewModel(training)
	rng := rand.New(rand.NewPCG(3, 4))
	vocab := map[string]bool{}
	for _, v := range m.Vocabulary() {
		vocab[v] = true
	}

	seq := m.Suggest("Xmaj9", 3, rng)
	if seq[0] != "Xmaj9" {
		t.Errorf("first chord = %q, want the requested start", seq[0])
	}
	if !vocab[seq[1]] {
		t.Errorf("fallback chord %q is not in the vocabulary", seq[1])
	}
}

func TestModel_WeightedPickDistribution(t *testing.T) {
	m := NewModel(training)
	rng := rand.New(rand.NewPCG(9, 9))

	counts := map[string]int{}
	for i := 0; i < 3000; i++ {
		counts[m.Next("C", rng)]++
	}
	// C -> G has twice the weight of C -> Am
	if counts["G"] < counts["Am"] {
		t.Errorf("expected G to be picked more often than Am, got %v", counts)
	}
	if counts["G"]+counts["Am"] != 3000 {
		t.Errorf("unexpected successors picked: %v", counts)
	}
}

func TestModel_Empty(t *testing.T) {
	m := NewModel(nil)
	rng := rand.New(rand.NewPCG(1, 1))

	if got := m.Suggest("C", 4, rng); len(got) != 1 || got[0] != "C" {
		t.Errorf("Suggest on empty model = %v, want [C]", got)
	}
	if got := m.Suggest("C", 0, rng); got != nil {
		t.Errorf("Suggest with zero length = %v, want nil", got)
	}
}

func hasEdge(m *Model, from, to string) bool {
	for _, e := range m.Successors(from) {
		if e.To == to {
			return true
		}
	}
	return false
}
