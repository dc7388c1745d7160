// Package main is the entry point for pitchconv CLI
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/koyashiro/pitchconv/pkg/api"
	"github.com/koyashiro/pitchconv/pkg/converter"
	"github.com/koyashiro/pitchconv/pkg/pitch"
	"github.com/koyashiro/pitchconv/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile string
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pitchconv [pitch]",
	Short: "Convert between scientific and register-word pitch notations",
	Long: `pitchconv converts a pitch name between scientific pitch notation
(e.g. "C#4") and the register-word notation (e.g. "hiC#", "mid2A").

The input notation is detected automatically and the pitch is printed
in the other one. The pitch is taken from the argument, or from
standard input when no argument is given.

Examples:
  pitchconv C#4
  pitchconv hiC#
  echo mid2A | pitchconv
  pitchconv detect lowlowA
  pitchconv midi A4 -o a4.mid
  pitchconv tui
  pitchconv serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:    cobra.MaximumNArgs(1),
	RunE:    runConvert,
}

var convertCmd = &cobra.Command{
	Use:   "convert [pitch]",
	Short: "Detect the notation and convert to the other one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConvert,
}

var sci2altCmd = &cobra.Command{
	Use:   "sci2alt [pitch]",
	Short: "Render a pitch in register-word notation",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runToAlternative,
}

var alt2sciCmd = &cobra.Command{
	Use:   "alt2sci [pitch]",
	Short: "Render a pitch in scientific notation",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runToScientific,
}

var detectCmd = &cobra.Command{
	Use:   "detect [pitch]",
	Short: "Print the detected notation of a pitch",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDetect,
}

var midiCmd = &cobra.Command{
	Use:   "midi [pitch]",
	Short: "Print the MIDI note number, or write a one-note MIDI file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMIDI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// midi command
	midiCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(sci2altCmd)
	rootCmd.AddCommand(alt2sciCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

// readPitch returns the positional argument, or one line from standard
// input with the trailing newline trimmed.
func readPitch(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, err := readPitch(args)
	if err != nil {
		return err
	}

	output, err := converter.Convert(input)
	if err != nil {
		return err
	}

	fmt.Println(output)
	return nil
}

func runToAlternative(cmd *cobra.Command, args []string) error {
	input, err := readPitch(args)
	if err != nil {
		return err
	}

	output, err := converter.ToAlternative(input)
	if err != nil {
		return err
	}

	fmt.Println(output)
	return nil
}

func runToScientific(cmd *cobra.Command, args []string) error {
	input, err := readPitch(args)
	if err != nil {
		return err
	}

	output, err := converter.ToScientific(input)
	if err != nil {
		return err
	}

	fmt.Println(output)
	return nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	input, err := readPitch(args)
	if err != nil {
		return err
	}

	format := converter.DetectFormat(input)
	if format == pitch.FormatUnknown {
		return fmt.Errorf("unrecognized pitch notation: %q", input)
	}

	fmt.Println(format)
	return nil
}

func runMIDI(cmd *cobra.Command, args []string) error {
	input, err := readPitch(args)
	if err != nil {
		return err
	}

	p, err := pitch.Parse(input)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := converter.WriteSMFFile(p.Pitch, converter.SMFOptions{}, outputFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s -> %s\n", p.Pitch.Scientific(), outputFile)
		return nil
	}

	key, err := p.Pitch.MIDINote()
	if err != nil {
		return err
	}

	fmt.Println(key)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
