package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordanalyser/midi"
	"github.com/jsphweid/chordanalyser/model"
	"github.com/jsphweid/chordanalyser/pitch"
	"github.com/jsphweid/chordanalyser/tracker"
	"github.com/jsphweid/chordanalyser/util"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

type Pair struct {
	Low      model.NoteNumber
	High     model.NoteNumber
	Interval pitch.Interval
}

type Description struct {
	Key       string
	Notes     model.Notes
	Classes   []pitch.PitchClass
	Intervals []Pair
}

func CreateChordKey(notes model.Notes) string {
	sorted := slices.Clone(notes)
	slices.Sort(sorted)
	var res []string
	for _, note := range sorted {
		res = append(res, fmt.Sprintf("%v", note))
	}
	return strings.Join(res, "-")
}

// Describe names the pitch classes in notes and the interval between every
// pair of them, lowest note first.
func Describe(notes model.Notes) Description {
	sorted := slices.Clone(notes)
	slices.Sort(sorted)

	classes := make(map[int]pitch.PitchClass)
	var intervals []Pair
	for i, low := range sorted {
		c := pitch.Classify(model.SomeNote(low))
		classes[c.Index()] = c
		for _, high := range sorted[i+1:] {
			intervals = append(intervals, Pair{Low: low, High: high, Interval: pitch.Between(low, high)})
		}
	}

	var d Description
	d.Key = CreateChordKey(sorted)
	d.Notes = sorted
	for _, idx := range util.SortedKeys(classes) {
		d.Classes = append(d.Classes, classes[idx])
	}
	d.Intervals = intervals
	return d
}

func (d Description) ClassNames() []string {
	var names []string
	for _, c := range d.Classes {
		names = append(names, c.Name())
	}
	return names
}

func (d Description) String() string {
	if len(d.Notes) == 0 {
		return "(silence)"
	}
	var intervals []string
	for _, p := range d.Intervals {
		intervals = append(intervals, fmt.Sprintf("%v-%v %v", p.Low, p.High, p.Interval))
	}
	return fmt.Sprintf("%v [%v] {%v}", d.Key, strings.Join(d.ClassNames(), " "), strings.Join(intervals, ", "))
}

// Replay drives a fresh tracker through events, which must be ordered by
// offset, and returns the sounding notes after the last event at each
// offset. Offsets with no note event, or where nothing sounds, are skipped.
func Replay(events []model.TimedEvent) []model.Chord {
	var chords []model.Chord
	t := tracker.New()
	var touched bool
	for i, evt := range events {
		t.ProcessEvent(evt.Event)
		if evt.Note.Valid && evt.Status != model.Other {
			touched = true
		}
		if i+1 < len(events) && events[i+1].Offset == evt.Offset {
			continue
		}
		if !touched {
			continue
		}
		touched = false
		notes := t.Snapshot().Sorted()
		if len(notes) == 0 {
			continue
		}
		// millis are plenty to place a chord when printing or seeking
		chords = append(chords, model.Chord{Offset: uint32(evt.Offset / 1000), Notes: notes})
	}
	return chords
}

func GetChords(s *smf.SMF) []model.Chord {
	return Replay(midi.Events(s))
}
