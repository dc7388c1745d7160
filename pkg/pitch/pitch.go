// Package pitch implements the two textual pitch notations and the
// octave arithmetic between them.
package pitch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClass reports a spelling outside the canonical 12-class set.
	ErrInvalidClass = errors.New("invalid pitch class")
	// ErrInvalidNotation reports an input that matches neither notation.
	ErrInvalidNotation = errors.New("invalid pitch notation")
)

// Class is a chromatic pitch class in sharp-only spelling, ordered from C.
type Class int

const (
	C Class = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var classNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// String returns the canonical spelling (e.g. "C#").
func (c Class) String() string {
	if c < C || c > B {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// ParseClass looks up a canonical spelling. The match is exact and
// case-sensitive; anything else fails.
func ParseClass(s string) (Class, error) {
	for i, name := range classNames {
		if s == name {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidClass, s)
}

// Pitch is one concrete pitch in scientific octave numbering
// (octave 4 contains middle C).
type Pitch struct {
	Octave uint8
	Class  Class
}

// Compare orders pitches by octave, then by class. It returns -1, 0 or 1.
func (p Pitch) Compare(o Pitch) int {
	switch {
	case p.Octave != o.Octave:
		if p.Octave < o.Octave {
			return -1
		}
		return 1
	case p.Class != o.Class:
		if p.Class < o.Class {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// String renders the pitch in scientific notation.
func (p Pitch) String() string {
	return p.Scientific()
}

// Format identifies which surface notation produced or should render a Pitch.
type Format string

const (
	FormatScientific  Format = "scientific"
	FormatAlternative Format = "alternative"
	FormatUnknown     Format = "unknown"
)

// PitchWithFormat is a parsed pitch tagged with the notation it came from.
type PitchWithFormat struct {
	Pitch  Pitch
	Format Format
}

// Parse detects which notation s is written in and parses it. The
// scientific grammar is tried first; the two grammars accept disjoint
// languages, so the order is not observable. Failures from either
// grammar collapse into ErrInvalidNotation.
func Parse(s string) (PitchWithFormat, error) {
	if p, err := ParseScientific(s); err == nil {
		return PitchWithFormat{Pitch: p, Format: FormatScientific}, nil
	}
	if p, err := ParseAlternative(s); err == nil {
		return PitchWithFormat{Pitch: p, Format: FormatAlternative}, nil
	}
	return PitchWithFormat{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
}
