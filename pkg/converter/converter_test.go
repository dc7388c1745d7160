package converter

import (
	"strings"
	"testing"

	"github.com/koyashiro/pitchconv/pkg/pitch"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"C4", "mid2C"},
		{"mid2C", "C4"},
		{"C0", "lowlowlowC"},
		{"lowlowlowC", "C0"},
		{"A0", "lowlowA"},
		{"lowlowA", "A0"},
		{"A4", "hiA"},
		{"hiA", "A4"},
		{"A5", "hihiA"},
		{"hihiA", "A5"},
		{"C#4", "mid2C#"},
		{"hiC#", "C#5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Convert(tt.input)
			if err != nil {
				t.Fatalf("Convert(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConvertOctaveCeiling(t *testing.T) {
	// Octave 255 is the last representable octave; its register word is
	// 251 repetitions of the raising unit.
	want := strings.Repeat("hi", 251) + "C"
	got, err := Convert("C255")
	if err != nil {
		t.Fatalf("Convert(%q) returned error: %v", "C255", err)
	}
	if got != want {
		t.Errorf("Convert(%q) = %q, want %q", "C255", got, want)
	}

	back, err := Convert(want)
	if err != nil {
		t.Fatalf("Convert(%q) returned error: %v", want, err)
	}
	if back != "C255" {
		t.Errorf("Convert(%q) = %q, want %q", want, back, "C255")
	}

	// One register higher no longer fits in the octave range.
	if _, err := Convert(strings.Repeat("hi", 252) + "C"); err == nil {
		t.Error("Convert accepted a register word above octave 255")
	}
}

func TestConvertInvalid(t *testing.T) {
	inputs := []string{"", "c4", "C256", "hic", "lowlowlowA", "mid3C", "C4\n"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := Convert(in); err == nil {
				t.Errorf("Convert(%q) succeeded, want error", in)
			}
		})
	}
}

func TestConvertWithFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Result
	}{
		{"C4", Result{Input: "C4", Output: "mid2C", From: pitch.FormatScientific, To: pitch.FormatAlternative}},
		{"mid2C", Result{Input: "mid2C", Output: "C4", From: pitch.FormatAlternative, To: pitch.FormatScientific}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ConvertWithFormat(tt.input)
			if err != nil {
				t.Fatalf("ConvertWithFormat(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ConvertWithFormat(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected pitch.Format
	}{
		{"C4", pitch.FormatScientific},
		{"A#255", pitch.FormatScientific},
		{"mid2C", pitch.FormatAlternative},
		{"hihihiG#", pitch.FormatAlternative},
		{"c4", pitch.FormatUnknown},
		{"", pitch.FormatUnknown},
		{"banana", pitch.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DetectFormat(tt.input); got != tt.expected {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToScientificAndToAlternative(t *testing.T) {
	// Directed conversions are identity renderings when the input is
	// already in the target format.
	tests := []struct {
		input string
		sci   string
		alt   string
	}{
		{"C4", "C4", "mid2C"},
		{"mid2C", "C4", "mid2C"},
		{"hihiA", "A5", "hihiA"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sci, err := ToScientific(tt.input)
			if err != nil {
				t.Fatalf("ToScientific(%q) returned error: %v", tt.input, err)
			}
			if sci != tt.sci {
				t.Errorf("ToScientific(%q) = %q, want %q", tt.input, sci, tt.sci)
			}

			alt, err := ToAlternative(tt.input)
			if err != nil {
				t.Fatalf("ToAlternative(%q) returned error: %v", tt.input, err)
			}
			if alt != tt.alt {
				t.Errorf("ToAlternative(%q) = %q, want %q", tt.input, alt, tt.alt)
			}
		})
	}
}

func TestGetSupportedConversions(t *testing.T) {
	conversions := GetSupportedConversions()

	if len(conversions) != 2 {
		t.Fatalf("GetSupportedConversions() returned %d conversions, want 2", len(conversions))
	}

	expected := []string{
		"scientific -> alternative",
		"alternative -> scientific",
	}

	for i, exp := range expected {
		if conversions[i] != exp {
			t.Errorf("conversions[%d] = %q, want %q", i, conversions[i], exp)
		}
	}
}
