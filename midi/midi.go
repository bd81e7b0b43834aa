package midi

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/chordanalyser/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ToEvent reduces a MIDI message to a tracker event. A note-on with velocity
// 0 is a note-off. Messages that are not about notes carry no note.
func ToEvent(msg midi.Message) model.Event {
	var channel, key, velocity uint8
	switch {
	case msg.GetNoteStart(&channel, &key, &velocity):
		return model.NoteOnEvent(key)
	case msg.GetNoteEnd(&channel, &key):
		return model.NoteOffEvent(key)
	default:
		return model.Event{Status: model.Other}
	}
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.Errorf("parsing midi file %v panicked: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}

	return res, nil
}

// Events flattens every track into one stream ordered by absolute time.
// At equal times note-offs come first so a re-struck note is not lost.
func Events(s *smf.SMF) []model.TimedEvent {
	var res []model.TimedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			e := ToEvent(midi.Message(event.Message))
			if e.Status == model.Other {
				continue
			}
			res = append(res, model.TimedEvent{Offset: s.TimeAt(absTicks), Event: e})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Offset != res[j].Offset {
			return res[i].Offset < res[j].Offset
		}
		return res[i].Status == model.NoteOff && res[j].Status != model.NoteOff
	})
	return res
}

func DescribeMessage(msg midi.Message) string {
	return fmt.Sprintf("%v (% X)", msg.String(), []byte(msg))
}
