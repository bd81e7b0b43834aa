package model

import "github.com/jsphweid/chordanalyser/util"

// NoteNumber is a MIDI note number. Middle C is 60.
type NoteNumber = uint8

type Notes = []NoteNumber

// NullNote is a note number that may be absent, e.g. for a control change
// message that carries no key.
type NullNote struct {
	Number NoteNumber
	Valid  bool
}

var NoNote = NullNote{}

func SomeNote(n NoteNumber) NullNote {
	return NullNote{Number: n, Valid: true}
}

// NoteSet is a set of note numbers, unique by value.
type NoteSet map[NoteNumber]struct{}

func (s NoteSet) Has(n NoteNumber) bool {
	_, ok := s[n]
	return ok
}

// Sorted returns the members in ascending order.
func (s NoteSet) Sorted() Notes {
	return util.SortedKeys(s)
}
