// Package tui is the interactive read-evaluate loop: type a hand, see its
// score or best crib split, repeat until STOP.
package tui

import (
	"bytes"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/cribbage/internal/analyzer"
	"github.com/lox/cribbage/internal/report"
)

// Prompt is shown above the input box.
const Prompt = "Enter a cribbage hand"

// Model is the Bubble Tea model for the REPL
type Model struct {
	analyzer *analyzer.Analyzer
	logger   *log.Logger

	histogramWidth int
	color          bool
	crib           bool

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	entries  []string
	quitting bool

	// Dimensions
	width  int
	height int
}

// New creates a REPL model. histogramWidth sizes the score chart printed for
// six card deals; color false keeps results plain.
func New(a *analyzer.Analyzer, logger *log.Logger, histogramWidth int, color bool) *Model {
	// Sized properly when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "5H 2C 3C 10S JS QS"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(inputBorderColor).Bold(true)
	ti.Prompt = "> "

	return &Model{
		analyzer:       a,
		logger:         logger.WithPrefix("tui"),
		histogramWidth: histogramWidth,
		color:          color,
		logViewport:    vp,
		input:          ti,
	}
}

// Run starts the REPL on the terminal and blocks until the user quits.
func Run(m *Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the REPL
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		m.resize()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			if m.Submit(line) {
				return m, tea.Quit
			}
			return m, nil
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Submit evaluates one line and appends the outcome to the log. It reports
// whether the line asked the loop to stop. Bad input is logged and the loop
// carries on.
func (m *Model) Submit(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	switch strings.ToUpper(line) {
	case "STOP", "QUIT":
		m.quitting = true
		return true
	case "CRIB":
		m.crib = !m.crib
		m.addEntry(ModeStyle.Render(m.modeLine()))
		return false
	}

	var buf bytes.Buffer
	p := report.New(&buf, m.histogramWidth, m.color)

	result, err := m.analyzer.Analyze(line, m.crib)
	if err != nil {
		m.logger.Debug("Input rejected", "line", line, "error", err)
		p.Error(err)
	} else {
		p.Result(result)
	}

	m.addEntry(EchoStyle.Render("> " + line))
	m.addEntry(strings.TrimRight(buf.String(), "\n"))
	return false
}

// Entries returns everything written to the log so far
func (m *Model) Entries() []string {
	return slices.Clone(m.entries)
}

// Quitting reports whether the user has asked to leave
func (m *Model) Quitting() bool {
	return m.quitting
}

// CribMode reports whether four and five card hands are scored as a crib
func (m *Model) CribMode() bool {
	return m.crib
}

func (m *Model) addEntry(entry string) {
	m.entries = append(m.entries, entry)
	m.logViewport.SetContent(strings.Join(m.entries, "\n"))

	// Only call GotoBottom if viewport has valid dimensions
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) modeLine() string {
	if m.crib {
		return "Scoring hands as crib"
	}
	return "Scoring hands as hand"
}

func (m *Model) resize() {
	// Header, input box and two borders
	w := max(m.width-2, 1)
	h := max(m.height-lipgloss.Height(m.header())-5, 1)

	m.logViewport.Width = w
	m.logViewport.Height = h
	m.input.Width = max(w-len(m.input.Prompt)-1, 1)
	m.logViewport.GotoBottom()
}

func (m *Model) header() string {
	return HeaderStyle.Render(" "+Prompt+" ") + " " +
		InfoStyle.Render("STOP to quit, CRIB to toggle crib scoring")
}

// View renders the REPL
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(logBorderColor).
		Width(m.logViewport.Width).
		Height(m.logViewport.Height)

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(inputBorderColor).
		Width(m.logViewport.Width)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		logStyle.Render(m.logViewport.View()),
		inputStyle.Render(m.input.View()),
	)
}
