package pitch

import "fmt"

// MIDINote returns the MIDI key number for the pitch, using the C4 = 60
// convention, so key = (octave+1)*12 + class. Pitches above G9 (127)
// have no MIDI key.
func (p Pitch) MIDINote() (uint8, error) {
	key := (int(p.Octave)+1)*12 + int(p.Class)
	if key > 127 {
		return 0, fmt.Errorf("pitch %s is above the MIDI note range", p)
	}
	return uint8(key), nil
}
