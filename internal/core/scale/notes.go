// Package scale contains the pure business logic for scale patterns:
// key parsing, modulo-12 membership and the fretboard renderer.
package scale

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
)

// Semitones counts pitch classes in an octave.
const Semitones = 12

// keySemitones maps key letters to pitch classes. E is 0 so the open low
// string of a standard-tuned guitar has pitch class 0.
var keySemitones = map[string]int{
	"E": 0, "F": 1, "F#": 2, "Gb": 2, "G": 3, "G#": 4, "Ab": 4,
	"A": 5, "A#": 6, "Bb": 6, "B": 7, "C": 8, "C#": 9, "Db": 9,
	"D": 10, "D#": 11, "Eb": 11,
}

// OpenStrings holds the pitch class of each open string, lowest first (E A D G B E).
var OpenStrings = [6]int{0, 5, 10, 3, 7, 0}

// lowEMidi is the MIDI note number of the open low E string (E2).
const lowEMidi = 40

// sharpNames respells the flat names gomidi produces.
var sharpNames = map[string]string{
	"Db": "C#", "Eb": "D#", "Gb": "F#", "Ab": "G#", "Bb": "A#",
}

// Key is a parsed key: its root pitch class and how accidentals are spelled.
type Key struct {
	Root   int
	Sharps bool
}

// ParseKey resolves a key letter such as "A", "f#" or "Bb". Keys written
// with a sharp spell their accidentals with sharps; all others use flats.
func ParseKey(key string) (Key, error) {
	k := strings.TrimSpace(key)
	if k == "" {
		return Key{}, fmt.Errorf("key cannot be empty")
	}
	k = strings.ToUpper(k[:1]) + strings.ToLower(k[1:])
	semitone, ok := keySemitones[k]
	if !ok {
		return Key{}, fmt.Errorf("unknown key %q", key)
	}
	return Key{Root: semitone, Sharps: strings.HasSuffix(k, "#")}, nil
}

// Name returns the name of pitch class pc spelled for the key.
func (k Key) Name(pc int) string {
	name := NoteName(pc)
	if k.Sharps {
		if sharp, ok := sharpNames[name]; ok {
			return sharp
		}
	}
	return name
}

// Keys returns the natural key letters in pitch order starting from E.
func Keys() []string {
	return []string{"E", "F", "G", "A", "B", "C", "D"}
}

// PitchClass returns the pitch class sounded at fret on a string whose open
// pitch class is open.
func PitchClass(open, fret int) int {
	return mod12(open + fret)
}

// NoteName returns the note name of a pitch class, accidentals as flats.
func NoteName(pc int) string {
	return midi.Note(uint8(lowEMidi + mod12(pc))).Name()
}

func mod12(n int) int {
	n %= Semitones
	if n < 0 {
		n += Semitones
	}
	return n
}
