package pitch

import "github.com/jsphweid/chordanalyser/model"

const (
	LowestPianoKey  model.NoteNumber = 21  // A0
	HighestPianoKey model.NoteNumber = 108 // C8
)

// slot of each pitch class in the drawn keyboard, counted from the A two
// slots below C; E-F and B-C each leave an empty slot.
var octaveSlots = [12]int{4, 5, 6, 7, 8, 10, 11, 12, 13, 14, 15, 16}

// KeyboardPosition places an 88-key piano note on the drawn keyboard, where
// every octave takes 14 slots and A0 sits at slot 0. Notes off the piano
// report false.
func KeyboardPosition(n model.NoteNumber) (int, bool) {
	if n < LowestPianoKey || n > HighestPianoKey {
		return 0, false
	}
	octave := int(n)/12 - 1
	return 14*octave + octaveSlots[n%12] - 14, true
}
