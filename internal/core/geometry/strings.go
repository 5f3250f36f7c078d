package geometry

// The two diagram types number strings differently. Both mappings are kept
// explicit so a change to one can never flip the other's layout.

// ChordFretColumn maps an index into a chord shape's frets (lowest-pitched
// string first) to its column in a chord box.
func ChordFretColumn(i int) int {
	return i
}

// ChordBarreColumn maps a 1-based barre string number (1 = highest-pitched
// string) to its column in a chord box. The mapping is reversed: string 6
// sits in column 0.
func ChordBarreColumn(stringNumber int) int {
	return StringCount - stringNumber
}

// ScaleStringColumn maps a string index on the scale fretboard (ascending,
// lowest-pitched string first) to its column.
func ScaleStringColumn(i int) int {
	return i
}
