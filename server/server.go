// Package server exposes a dispatcher's tracker over HTTP for UIs and other
// consumers that are not in this process.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordanalyser/chord"
	"github.com/jsphweid/chordanalyser/dispatch"
	"github.com/jsphweid/chordanalyser/model"
	"github.com/jsphweid/chordanalyser/pitch"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	dispatcher *dispatch.Dispatcher

	mu      sync.RWMutex
	session string
}

func New(d *dispatch.Dispatcher) *Server {
	return &Server{dispatcher: d, session: uuid.New().String()}
}

func (s *Server) Session() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/events", s.HandleEvent).Methods("POST")
	router.HandleFunc("/notes", s.HandleNotes).Methods("GET")
	router.HandleFunc("/last", s.HandleLast).Methods("GET")
	router.HandleFunc("/reset", s.HandleReset).Methods("POST")
	router.HandleFunc("/interval", s.HandleInterval).Methods("GET")
	router.HandleFunc("/interval/classes", s.HandleClassInterval).Methods("GET")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("could not write response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func (s *Server) HandleEvent(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, errors.Wrap(err, "could not read request body"))
		return
	}

	var input model.EventRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, errors.Wrap(err, "could not unmarshal request body"))
		return
	}

	e := model.Event{Status: model.ParseEventStatus(input.Status)}
	if input.Note != nil {
		if *input.Note < 0 || *input.Note > 255 {
			writeError(w, errors.Errorf("note %v out of range", *input.Note))
			return
		}
		e.Note = model.SomeNote(model.NoteNumber(*input.Note))
	}

	s.dispatcher.Dispatch(e)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) HandleNotes(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	notes := s.dispatcher.Tracker.Snapshot()
	session := s.session
	s.mu.RUnlock()

	d := chord.Describe(notes.Sorted())
	res := model.NotesResponse{
		Session:   session,
		Notes:     make([]int, 0, len(d.Notes)),
		Keyboard:  make([]int, 0, len(d.Notes)),
		Key:       d.Key,
		Classes:   make([]string, 0, len(d.Classes)),
		Intervals: make([]model.IntervalPair, 0, len(d.Intervals)),
	}
	for _, n := range d.Notes {
		res.Notes = append(res.Notes, int(n))
		slot, ok := pitch.KeyboardPosition(n)
		if !ok {
			slot = -1
		}
		res.Keyboard = append(res.Keyboard, slot)
	}
	res.Classes = append(res.Classes, d.ClassNames()...)
	for _, p := range d.Intervals {
		res.Intervals = append(res.Intervals, model.IntervalPair{A: int(p.Low), B: int(p.High), Interval: p.Interval.String()})
	}
	writeJSON(w, res)
}

func (s *Server) HandleLast(w http.ResponseWriter, r *http.Request) {
	last := s.dispatcher.Tracker.Last()
	res := model.LastResponse{Class: last.Class.Name(), Status: last.Status.String()}
	if last.Note.Valid {
		n := int(last.Note.Number)
		res.Note = &n
	}
	writeJSON(w, res)
}

func (s *Server) HandleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.dispatcher.Reset()
	s.session = uuid.New().String()
	session := s.session
	s.mu.Unlock()

	logrus.WithField("session", session).Info("reset")
	writeJSON(w, model.SessionResponse{Session: session})
}

func parseNote(s string) (model.NoteNumber, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.Errorf("%q is not a note number", s)
	}
	return model.NoteNumber(n), nil
}

func (s *Server) HandleInterval(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, err := parseNote(q.Get("a"))
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := parseNote(q.Get("b"))
	if err != nil {
		writeError(w, err)
		return
	}
	i := pitch.Between(a, b)
	writeJSON(w, model.IntervalResponse{Interval: i.String(), Semitones: i.Semitones()})
}

// HandleClassInterval answers for pitch class names. An unknown name is the
// default class, so the interval is "undefined" rather than an error.
func (s *Server) HandleClassInterval(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, _ := pitch.ParsePitchClass(q.Get("a"))
	b, _ := pitch.ParsePitchClass(q.Get("b"))
	i := pitch.BetweenClasses(a, b)
	writeJSON(w, model.IntervalResponse{Interval: i.String(), Semitones: i.Semitones()})
}
