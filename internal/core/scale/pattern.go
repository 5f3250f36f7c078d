package scale

import "fmt"

// Pattern is a scale defined by semitone offsets from its root.
type Pattern struct {
	Name      string `json:"name" yaml:"name"`
	Intervals []int  `json:"intervals" yaml:"intervals"`
}

// Validate checks that every interval is a semitone offset in [0, 11].
func (p Pattern) Validate() error {
	if len(p.Intervals) == 0 {
		return fmt.Errorf("scale %q has no intervals", p.Name)
	}
	for _, i := range p.Intervals {
		if i < 0 || i >= Semitones {
			return fmt.Errorf("scale %q has interval %d outside 0..11", p.Name, i)
		}
	}
	return nil
}

// Membership returns the set of pitch classes in the scale for the given root.
func (p Pattern) Membership(root int) [Semitones]bool {
	var set [Semitones]bool
	for _, i := range p.Intervals {
		set[mod12(root+i)] = true
	}
	return set
}

// Contains reports whether pitch class pc belongs to the scale at root.
func (p Pattern) Contains(root, pc int) bool {
	return p.Membership(root)[mod12(pc)]
}

// Notes returns the note names of the scale in key, in interval order.
func (p Pattern) Notes(key Key) []string {
	names := make([]string, 0, len(p.Intervals))
	for _, i := range p.Intervals {
		names = append(names, key.Name(key.Root+i))
	}
	return names
}

// Clone returns a deep copy of the pattern.
func (p Pattern) Clone() Pattern {
	return Pattern{Name: p.Name, Intervals: append([]int(nil), p.Intervals...)}
}
