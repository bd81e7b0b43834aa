package model

type EventRequestBody struct {
	Note   *int   `json:"note,omitempty"`
	Status string `json:"status"`
}

type IntervalPair struct {
	A        int    `json:"a"`
	B        int    `json:"b"`
	Interval string `json:"interval"`
}

type NotesResponse struct {
	Session string `json:"session"`
	Notes   []int  `json:"notes"`
	// slot of each note on the drawn 88-key keyboard, -1 if off the piano
	Keyboard  []int          `json:"keyboard"`
	Key       string         `json:"key"`
	Classes   []string       `json:"classes"`
	Intervals []IntervalPair `json:"intervals"`
}

type LastResponse struct {
	Note   *int   `json:"note"`
	Class  string `json:"class"`
	Status string `json:"status"`
}

type IntervalResponse struct {
	Interval  string `json:"interval"`
	Semitones int    `json:"semitones"`
}

type SessionResponse struct {
	Session string `json:"session"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
