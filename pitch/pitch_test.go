package pitch

import (
	"fmt"
	"testing"

	"github.com/jsphweid/chordanalyser/model"
	"github.com/stretchr/testify/assert"
)

func TestClassifiesMiddleCOctaves(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(C, Classify(model.SomeNote(60)))
	assert.Equal(CSharp, Classify(model.SomeNote(61)))
	assert.Equal(C, Classify(model.SomeNote(72)))
	assert.Equal(B, Classify(model.SomeNote(71)))
	assert.Equal(C, Classify(model.SomeNote(0)))
	assert.Equal(G, Classify(model.SomeNote(127)))
}

func TestClassifyDependsOnlyOnResidue(t *testing.T) {
	for n := 0; n < 128; n++ {
		got := Classify(model.SomeNote(model.NoteNumber(n)))
		assert.Equal(t, Classify(model.SomeNote(model.NoteNumber(n%12))), got, "note %v", n)
		assert.Equal(t, n%12, got.Index(), "note %v", n)
	}
}

func TestClassifyOutOfMidiRange(t *testing.T) {
	assert.Equal(t, GSharp, Classify(model.SomeNote(200)))
	assert.Equal(t, E, Classify(model.SomeNote(196)))
	assert.Equal(t, DSharp, Classify(model.SomeNote(255)))
}

func TestClassifyAbsentNote(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Default, Classify(model.NoNote))
	assert.Equal("N/A", Classify(model.NoNote).Name())
	assert.Equal(-1, Default.Index())
	assert.False(Default.Valid())
}

func TestPitchClassNames(t *testing.T) {
	expected := []string{"C", "D♭", "D", "E♭", "E", "F", "F♯", "G", "A♭", "A", "B♭", "B"}
	for i, name := range expected {
		p := Classify(model.SomeNote(model.NoteNumber(60 + i)))
		assert.Equal(t, name, p.Name())
		assert.Equal(t, name, fmt.Sprint(p))
	}
}

func TestParsePitchClass(t *testing.T) {
	cases := map[string]PitchClass{
		"C":  C,
		"c":  C,
		"D♭": CSharp,
		"C#": CSharp,
		"Db": CSharp,
		"F#": FSharp,
		"F♯": FSharp,
		"bb": ASharp,
		"B":  B,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			got, ok := ParsePitchClass(in)
			assert.True(t, ok)
			assert.Equal(t, want, got)
		})
	}

	got, ok := ParsePitchClass("H")
	assert.False(t, ok)
	assert.Equal(t, Default, got)
}

func TestKeyboardPosition(t *testing.T) {
	assert := assert.New(t)

	pos, ok := KeyboardPosition(21)
	assert.True(ok)
	assert.Equal(0, pos)

	pos, _ = KeyboardPosition(24)
	assert.Equal(4, pos)

	pos, _ = KeyboardPosition(29)
	assert.Equal(10, pos)

	pos, _ = KeyboardPosition(60)
	assert.Equal(46, pos)

	pos, ok = KeyboardPosition(108)
	assert.True(ok)
	assert.Equal(102, pos)

	_, ok = KeyboardPosition(20)
	assert.False(ok)
	_, ok = KeyboardPosition(109)
	assert.False(ok)
}
