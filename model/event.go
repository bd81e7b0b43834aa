package model

type EventStatus int

const (
	Other EventStatus = iota
	NoteOn
	NoteOff
)

func (s EventStatus) String() string {
	switch s {
	case NoteOn:
		return "Note on"
	case NoteOff:
		return "Note off"
	default:
		return "Other"
	}
}

// Event is a single message from the input stream, reduced to what the
// tracker cares about.
type Event struct {
	Note   NullNote
	Status EventStatus
}

func NoteOnEvent(n NoteNumber) Event {
	return Event{Note: SomeNote(n), Status: NoteOn}
}

func NoteOffEvent(n NoteNumber) Event {
	return Event{Note: SomeNote(n), Status: NoteOff}
}

type TimedEvent struct {
	// microseconds from the start of the file
	Offset int64
	Event
}

// ParseEventStatus reads the wire spelling used by the HTTP API. Unknown
// spellings are Other, the same as any non-note MIDI status.
func ParseEventStatus(s string) EventStatus {
	switch s {
	case "noteOn", "note_on", "on":
		return NoteOn
	case "noteOff", "note_off", "off":
		return NoteOff
	default:
		return Other
	}
}
