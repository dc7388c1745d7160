// Package tui provides a terminal user interface for pitchconv
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/koyashiro/pitchconv/pkg/converter"
)

var (
	// Primary colors
	noteGreen  = lipgloss.Color("#39FF14")
	noteYellow = lipgloss.Color("#FFFF00")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(noteGreen).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(silverGray)

	resultStyle = lipgloss.NewStyle().
			Foreground(noteGreen).
			Bold(true)

	formatStyle = lipgloss.NewStyle().
			Foreground(noteYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(noteGreen).
			Padding(1, 2)
)

// Model represents the TUI model
type Model struct {
	input   textinput.Model
	result  converter.Result
	err     error
	history []converter.Result
	width   int
	height  int
}

// New creates a new TUI model
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "C#4 or hiC#"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	return Model{input: ti}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.err == nil && m.result.Output != "" {
				m.history = append(m.history, m.result)
				m.input.SetValue("")
				m.result = converter.Result{}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	value := m.input.Value()
	if value == "" {
		m.result = converter.Result{}
		m.err = nil
		return m, cmd
	}

	m.result, m.err = converter.ConvertWithFormat(value)
	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(asciiLogo())
	s.WriteString("\n")

	var box strings.Builder
	box.WriteString(titleStyle.Render(" CONVERT PITCH "))
	box.WriteString("\n\n")
	box.WriteString(labelStyle.Render("Pitch: "))
	box.WriteString(m.input.View())
	box.WriteString("\n\n")

	switch {
	case m.input.Value() == "":
		box.WriteString(labelStyle.Render("Type a pitch in either notation"))
	case m.err != nil:
		box.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s", m.err.Error())))
	default:
		box.WriteString(resultStyle.Render(fmt.Sprintf("▸ %s", m.result.Output)))
		box.WriteString("\n")
		box.WriteString(formatStyle.Render(fmt.Sprintf("  %s → %s", m.result.From, m.result.To)))
	}

	s.WriteString(boxStyle.Render(box.String()))

	if len(m.history) > 0 {
		s.WriteString("\n")
		start := 0
		if len(m.history) > 5 {
			start = len(m.history) - 5
		}
		for _, r := range m.history[start:] {
			s.WriteString(labelStyle.Render(fmt.Sprintf("  %s → %s", r.Input, r.Output)))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("enter: keep result • esc: quit"))

	return s.String()
}

func asciiLogo() string {
	logo := `
   ____ ___ _____ ____ _   _  ____ ___  _   ___     __
  |  _ \_ _|_   _/ ___| | | |/ ___/ _ \| \ | \ \   / /
  | |_) | |  | || |   | |_| | |  | | | |  \| |\ \ / /
  |  __/| |  | || |___|  _  | |__| |_| | |\  | \ V /
  |_|  |___| |_| \____|_| |_|\____\___/|_| \_|  \_/
`
	return lipgloss.NewStyle().Foreground(noteGreen).Render(logo)
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
