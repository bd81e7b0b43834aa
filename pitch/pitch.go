// Package pitch maps MIDI note numbers to pitch classes and computes the
// harmonic interval between notes.
//
// In MIDI 1.0 every key has a number, middle C being 60. Keys an octave apart
// share a pitch class:
//
//	0  <-> C
//	1  <-> C# ~ Db
//	...
//	11 <-> B
package pitch

import (
	"strings"

	"github.com/jsphweid/chordanalyser/model"
)

type PitchClass int

const (
	// Default stands in for "no note". It is not a real pitch class.
	Default PitchClass = iota
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var names = [...]string{"N/A", "C", "D♭", "D", "E♭", "E", "F", "F♯", "G", "A♭", "A", "B♭", "B"}

// alternate spellings accepted by ParsePitchClass
var aliases = map[string]PitchClass{
	"C#": CSharp, "C♯": CSharp, "DB": CSharp,
	"D#": DSharp, "D♯": DSharp, "EB": DSharp,
	"F#": FSharp, "GB": FSharp, "G♭": FSharp,
	"G#": GSharp, "G♯": GSharp, "AB": GSharp,
	"A#": ASharp, "A♯": ASharp, "BB": ASharp,
}

// Classify returns the pitch class of n, or Default if there is no note.
func Classify(n model.NullNote) PitchClass {
	if !n.Valid {
		return Default
	}
	return PitchClass(n.Number%12) + C
}

// Name is for display only; compare pitch classes directly.
func (p PitchClass) Name() string {
	if p < C || p > B {
		return names[Default]
	}
	return names[p]
}

func (p PitchClass) String() string {
	return p.Name()
}

// Index is the position within the octave, C=0 through B=11, or -1 for
// Default.
func (p PitchClass) Index() int {
	if p < C || p > B {
		return -1
	}
	return int(p - C)
}

func (p PitchClass) Valid() bool {
	return p.Index() >= 0
}

// ParsePitchClass accepts the display names as well as ASCII spellings such
// as "C#" or "Db". Anything else yields Default and false.
func ParsePitchClass(s string) (PitchClass, bool) {
	s = strings.TrimSpace(s)
	for p := C; p <= B; p++ {
		if strings.EqualFold(s, names[p]) {
			return p, true
		}
	}
	if p, ok := aliases[strings.ToUpper(s)]; ok {
		return p, true
	}
	return Default, false
}
