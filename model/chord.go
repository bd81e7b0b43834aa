package model

type Chord struct {
	// milliseconds from the start of the file
	Offset uint32
	Notes  Notes
}
