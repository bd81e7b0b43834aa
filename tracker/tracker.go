// Package tracker keeps the set of notes currently sounding.
//
// Every note number is an independent on/off switch: a note-on turns it on,
// a note-off turns it off, and everything else leaves it alone. Repeated
// note-ons and note-offs for keys that are not down happen on real hardware
// and are absorbed silently.
//
// A Tracker has a single writer. ProcessEvent and Reset must be called from
// one goroutine (or under the caller's own lock) so events apply in receipt
// order; Snapshot and Last may be called from anywhere.
package tracker

import (
	"sync"

	"github.com/jsphweid/chordanalyser/model"
	"github.com/jsphweid/chordanalyser/pitch"
	"github.com/sirupsen/logrus"
)

// Observation is the most recent event seen, kept for diagnostics.
type Observation struct {
	Note   model.NullNote
	Class  pitch.PitchClass
	Status model.EventStatus
}

type Tracker struct {
	log logrus.FieldLogger

	mu     sync.RWMutex
	active model.NoteSet
	last   Observation
}

func New() *Tracker {
	return &Tracker{
		log:    logrus.StandardLogger(),
		active: make(model.NoteSet),
	}
}

func (t *Tracker) ProcessEvent(e model.Event) {
	class := pitch.Classify(e.Note)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = Observation{Note: e.Note, Class: class, Status: e.Status}
	if !e.Note.Valid {
		return
	}

	n := e.Note.Number
	switch e.Status {
	case model.NoteOn:
		if t.active.Has(n) {
			t.log.WithFields(logrus.Fields{"note": n, "class": class}).Debug("note on for a note already on")
			return
		}
		t.active[n] = struct{}{}
	case model.NoteOff:
		if !t.active.Has(n) {
			t.log.WithFields(logrus.Fields{"note": n, "class": class}).Debug("note off for a note not on")
			return
		}
		delete(t.active, n)
	}
}

// Snapshot returns a copy of the active notes. The copy is the caller's and
// does not change as further events arrive.
func (t *Tracker) Snapshot() model.NoteSet {
	t.mu.RLock()
	defer t.mu.RUnlock()

	res := make(model.NoteSet, len(t.active))
	for n := range t.active {
		res[n] = struct{}{}
	}
	return res
}

// Reset turns every note off, e.g. after the source reconnects and any
// pending note-offs are lost.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.active = make(model.NoteSet)
}

func (t *Tracker) Last() Observation {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.last
}
