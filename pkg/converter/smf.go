package converter

import (
	"bytes"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/koyashiro/pitchconv/pkg/pitch"
)

const ticksPerQuarter = 480

// SMFOptions configures the generated preview file.
type SMFOptions struct {
	Tempo    float64 // BPM, defaults to 120
	Velocity uint8   // 1-127, defaults to 100
	Channel  uint8   // 0-15
}

// GenerateSMF creates a Standard MIDI File holding the pitch as a single
// whole note, so a converted pitch can be auditioned in any sequencer.
// Pitches outside the MIDI note range are rejected.
func GenerateSMF(p pitch.Pitch, opts SMFOptions) ([]byte, error) {
	key, err := p.MIDINote()
	if err != nil {
		return nil, err
	}

	if opts.Tempo <= 0 {
		opts.Tempo = 120.0
	}
	if opts.Velocity == 0 || opts.Velocity > 127 {
		opts.Velocity = 100
	}
	if opts.Channel > 15 {
		return nil, fmt.Errorf("invalid MIDI channel %d", opts.Channel)
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track

	// Tempo meta event
	microsecondsPerBeat := uint32(60000000.0 / opts.Tempo)
	tempoData := smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsecondsPerBeat >> 16),
		byte(microsecondsPerBeat >> 8),
		byte(microsecondsPerBeat),
	})
	track.Add(0, tempoData)

	// Time signature (4/4)
	timeSigData := smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08})
	track.Add(0, timeSigData)

	track.Add(0, midi.NoteOn(opts.Channel, key, opts.Velocity))
	track.Add(ticksPerQuarter*4, midi.NoteOff(opts.Channel, key))

	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteSMFFile writes the single-note preview to a file.
func WriteSMFFile(p pitch.Pitch, opts SMFOptions, filename string) error {
	data, err := GenerateSMF(p, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
