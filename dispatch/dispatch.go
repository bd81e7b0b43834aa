// Package dispatch is the single writer in front of a tracker. It applies
// events in receipt order and tells a listener, at most once per quiet
// period, what is sounding now.
package dispatch

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordanalyser/model"
	"github.com/jsphweid/chordanalyser/tracker"
	"github.com/sirupsen/logrus"
)

type ChangeFunc func(notes model.NoteSet)

type Dispatcher struct {
	Tracker *tracker.Tracker

	mu       sync.Mutex
	closed   bool
	onChange ChangeFunc
	debounce func(func())
}

// New returns a dispatcher over t. onChange may be nil. It is called on its
// own goroutine once no note event has arrived for wait.
func New(t *tracker.Tracker, wait time.Duration, onChange ChangeFunc) *Dispatcher {
	return &Dispatcher{
		Tracker:  t,
		onChange: onChange,
		debounce: debounce.New(wait),
	}
}

func (d *Dispatcher) Dispatch(e model.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.Tracker.ProcessEvent(e)
	logrus.WithFields(logrus.Fields{
		"status": e.Status,
		"note":   e.Note.Number,
		"valid":  e.Note.Valid,
	}).Debug("dispatched")

	if e.Note.Valid && e.Status != model.Other {
		d.notify()
	}
}

// Reset turns every note off, e.g. when the source reconnects.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.Tracker.Reset()
	d.notify()
}

// Close stops further events and notifications. A notification already
// pending may still fire; it sees the notes as of that moment.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
}

func (d *Dispatcher) notify() {
	if d.onChange == nil {
		return
	}
	d.debounce(func() {
		d.mu.Lock()
		closed := d.closed
		d.mu.Unlock()
		if closed {
			return
		}
		d.onChange(d.Tracker.Snapshot())
	})
}
