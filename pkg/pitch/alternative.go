package pitch

import (
	"fmt"
	"math"
	"strings"
)

// hiUnit is the repeatable register-raising token. Each repetition past
// mid2 raises the register by one.
const hiUnit = "hi"

// registerOctave maps a register word to its base scientific octave.
// The fixed registers cover octaves 0-4; above that the word is one or
// more hiUnit repetitions, counted with a prefix scan rather than a
// pattern engine so parsing stays linear in the input length.
func registerOctave(reg string) (int, bool) {
	switch reg {
	case "lowlowlow":
		return 0, true
	case "lowlow":
		return 1, true
	case "low":
		return 2, true
	case "mid1":
		return 3, true
	case "mid2":
		return 4, true
	}
	n := 0
	for strings.HasPrefix(reg, hiUnit) {
		reg = reg[len(hiUnit):]
		n++
	}
	if n == 0 || reg != "" {
		return 0, false
	}
	return 4 + n, true
}

// ParseAlternative parses the register-word notation: a register token
// immediately followed by a pitch-class spelling, e.g. "mid2C" or "hihiA".
// The classes A, A# and B sit below the register boundary, so they belong
// to the scientific octave one below the register's base octave; at
// register base 0 that octave does not exist and the input is rejected.
func ParseAlternative(s string) (Pitch, error) {
	cut := -1
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'G' {
			cut = i
			break
		}
	}
	if cut <= 0 {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	class, err := ParseClass(s[cut:])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	octave, ok := registerOctave(s[:cut])
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	switch class {
	case A, ASharp, B:
		octave--
	}
	if octave < 0 || octave > math.MaxUint8 {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return Pitch{Octave: uint8(octave), Class: class}, nil
}

// Alternative renders the pitch in register-word notation, e.g. "mid2C".
func (p Pitch) Alternative() string {
	base := int(p.Octave)
	switch p.Class {
	case A, ASharp, B:
		base++
	}
	var reg string
	switch base {
	case 0:
		reg = "lowlowlow"
	case 1:
		reg = "lowlow"
	case 2:
		reg = "low"
	case 3:
		reg = "mid1"
	case 4:
		reg = "mid2"
	default:
		reg = strings.Repeat(hiUnit, base-4)
	}
	return reg + p.Class.String()
}
