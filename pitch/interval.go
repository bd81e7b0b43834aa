package pitch

import (
	"github.com/jsphweid/chordanalyser/model"
	"github.com/jsphweid/chordanalyser/util"
)

type Interval int

const (
	Unison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	DiminishedFifth
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
	Octave
	Undefined
)

var intervalNames = [...]string{
	"unison",
	"minor 2nd",
	"major 2nd",
	"minor 3rd",
	"major 3rd",
	"perfect 4th",
	"diminished 5th",
	"perfect 5th",
	"minor 6th",
	"major 6th",
	"minor 7th",
	"major 7th",
	"octave",
	"undefined",
}

func (i Interval) String() string {
	if i < Unison || i > Undefined {
		return intervalNames[Undefined]
	}
	return intervalNames[i]
}

// Semitones is the size of the interval within one octave. Undefined is -1.
func (i Interval) Semitones() int {
	if i < Unison || i >= Undefined {
		return -1
	}
	return int(i)
}

// Between returns the interval between two notes. Notes a whole number of
// octaves apart (but not the same note) are an Octave; otherwise compound
// intervals fold into a single octave, so 60 and 76 are a major 3rd.
func Between(a, b model.NoteNumber) Interval {
	d := util.Abs(int(a) - int(b))
	if d != 0 && d%12 == 0 {
		return Octave
	}
	return Interval(d % 12)
}

// BetweenClasses returns the interval between two pitch classes, measured
// upwards from the lower index. It is Undefined if either side is Default.
// Two pitch classes are never an Octave apart.
func BetweenClasses(a, b PitchClass) Interval {
	if !a.Valid() || !b.Valid() {
		return Undefined
	}
	return Interval(util.Abs(a.Index()-b.Index()) % 12)
}
