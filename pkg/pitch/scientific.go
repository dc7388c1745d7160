package pitch

import (
	"fmt"
	"strconv"
)

// splitClass splits a leading pitch-class spelling (letter plus optional
// sharp) from the rest of s.
func splitClass(s string) (spelling, rest string, ok bool) {
	if len(s) == 0 || s[0] < 'A' || s[0] > 'G' {
		return "", "", false
	}
	if len(s) >= 2 && s[1] == '#' {
		return s[:2], s[2:], true
	}
	return s[:1], s[1:], true
}

// ParseScientific parses scientific pitch notation: a pitch-class
// spelling immediately followed by a decimal octave in 0-255. No sign,
// no leading zeros, no surrounding whitespace.
func ParseScientific(s string) (Pitch, error) {
	spelling, digits, ok := splitClass(s)
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	class, err := ParseClass(spelling)
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	if digits == "" || (len(digits) > 1 && digits[0] == '0') {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	octave, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return Pitch{Octave: uint8(octave), Class: class}, nil
}

// Scientific renders the pitch in scientific notation, e.g. "C#4".
func (p Pitch) Scientific() string {
	return p.Class.String() + strconv.Itoa(int(p.Octave))
}
