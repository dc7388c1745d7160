// Package converter provides conversion between scientific and
// register-word pitch notations.
package converter

import (
	"github.com/koyashiro/pitchconv/pkg/pitch"
)

// Result holds the outcome of a format-detected conversion.
type Result struct {
	Input  string       `json:"input"`
	Output string       `json:"output"`
	From   pitch.Format `json:"from"`
	To     pitch.Format `json:"to"`
}

// DetectFormat detects the notation of s, or FormatUnknown when it
// matches neither grammar.
func DetectFormat(s string) pitch.Format {
	p, err := pitch.Parse(s)
	if err != nil {
		return pitch.FormatUnknown
	}
	return p.Format
}

// Convert parses s in whichever notation it is written and renders it
// in the other one.
func Convert(s string) (string, error) {
	r, err := ConvertWithFormat(s)
	if err != nil {
		return "", err
	}
	return r.Output, nil
}

// ConvertWithFormat is Convert plus the detected and rendered formats.
func ConvertWithFormat(s string) (Result, error) {
	p, err := pitch.Parse(s)
	if err != nil {
		return Result{}, err
	}

	r := Result{Input: s, From: p.Format}
	switch p.Format {
	case pitch.FormatScientific:
		r.Output = p.Pitch.Alternative()
		r.To = pitch.FormatAlternative
	case pitch.FormatAlternative:
		r.Output = p.Pitch.Scientific()
		r.To = pitch.FormatScientific
	}
	return r, nil
}

// ToScientific parses s in either notation and renders it scientifically.
func ToScientific(s string) (string, error) {
	p, err := pitch.Parse(s)
	if err != nil {
		return "", err
	}
	return p.Pitch.Scientific(), nil
}

// ToAlternative parses s in either notation and renders it as a
// register word.
func ToAlternative(s string) (string, error) {
	p, err := pitch.Parse(s)
	if err != nil {
		return "", err
	}
	return p.Pitch.Alternative(), nil
}

// GetSupportedConversions returns a list of supported conversion paths
func GetSupportedConversions() []string {
	return []string{
		"scientific -> alternative",
		"alternative -> scientific",
	}
}
