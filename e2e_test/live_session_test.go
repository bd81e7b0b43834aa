//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jsphweid/chordanalyser/chord"
	"github.com/jsphweid/chordanalyser/dispatch"
	"github.com/jsphweid/chordanalyser/model"
	"github.com/jsphweid/chordanalyser/server"
	"github.com/jsphweid/chordanalyser/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ts *httptest.Server

	mu       sync.Mutex
	reported []string
)

func TestMain(m *testing.M) {
	d := dispatch.New(tracker.New(), 20*time.Millisecond, func(notes model.NoteSet) {
		mu.Lock()
		defer mu.Unlock()
		reported = append(reported, chord.CreateChordKey(notes.Sorted()))
	})
	ts = httptest.NewServer(server.New(d).Handler())

	exitVal := m.Run()

	ts.Close()
	d.Close()
	os.Exit(exitVal)
}

func post(t *testing.T, path string, body any) *http.Response {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func getNotes(t *testing.T) model.NotesResponse {
	resp, err := http.Get(ts.URL + "/notes")
	require.NoError(t, err)
	defer resp.Body.Close()

	var res model.NotesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func note(n int) *int { return &n }

func lastReported() string {
	mu.Lock()
	defer mu.Unlock()
	if len(reported) == 0 {
		return ""
	}
	return reported[len(reported)-1]
}

func TestChordChangesE2E(t *testing.T) {
	post(t, "/reset", nil)

	for _, n := range []int{60, 64, 67} {
		resp := post(t, "/events", model.EventRequestBody{Note: note(n), Status: "noteOn"})
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	}
	require.Eventually(t, func() bool { return lastReported() == "60-64-67" }, time.Second, 5*time.Millisecond)

	// C major to F major, holding the C
	post(t, "/events", model.EventRequestBody{Note: note(64), Status: "noteOff"})
	post(t, "/events", model.EventRequestBody{Note: note(67), Status: "noteOff"})
	post(t, "/events", model.EventRequestBody{Note: note(65), Status: "noteOn"})
	post(t, "/events", model.EventRequestBody{Note: note(69), Status: "noteOn"})
	require.Eventually(t, func() bool { return lastReported() == "60-65-69" }, time.Second, 5*time.Millisecond)

	notes := getNotes(t)
	assert.Equal(t, []string{"C", "F", "A"}, notes.Classes)
	assert.Equal(t, []model.IntervalPair{
		{A: 60, B: 65, Interval: "perfect 4th"},
		{A: 60, B: 69, Interval: "major 6th"},
		{A: 65, B: 69, Interval: "major 3rd"},
	}, notes.Intervals)
}

func TestResetE2E(t *testing.T) {
	post(t, "/events", model.EventRequestBody{Note: note(62), Status: "noteOn"})
	before := getNotes(t).Session

	resp := post(t, "/reset", nil)
	var session model.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))

	notes := getNotes(t)
	assert.NotEqual(t, before, notes.Session)
	assert.Equal(t, session.Session, notes.Session)
	assert.Empty(t, notes.Notes)
	require.Eventually(t, func() bool { return lastReported() == "" }, time.Second, 5*time.Millisecond)
}
