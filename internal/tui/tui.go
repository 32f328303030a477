// Package tui is an interactive explorer for draw records: type ten
// card tokens, see the best draw and how to play it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/psychic-poker/internal/display"
	"github.com/lox/psychic-poker/internal/draw"
)

const welcomeText = "Enter five held cards followed by the next five deck cards."

// Model represents the Bubble Tea model for the explorer
type Model struct {
	logger *log.Logger

	// UI components
	history viewport.Model
	input   textinput.Model

	// State
	lines       []string
	styled      *display.Styled
	focusedPane int // 0 = history, 1 = input
	quitting    bool

	// Dimensions
	width  int
	height int
}

// NewModel creates a new explorer model
func NewModel(logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent(welcomeText)

	ti := textinput.New()
	ti.Placeholder = "TH JH QC QD QS QH KH AH 2S 6S"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 100
	ti.PromptStyle = PromptStyle
	ti.Prompt = "> "

	return &Model{
		logger:      logger.WithPrefix("tui"),
		history:     vp,
		input:       ti,
		styled:      display.NewStyled(),
		focusedPane: 1, // Start with input focused
	}
}

// Init initializes the explorer model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the explorer
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.Width = msg.Width - 2
		m.history.Height = msg.Height - 5
		if m.history.Height < 1 {
			m.history.Height = 1
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			// Switch focus between history and input
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				m.submit()
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.history.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.history.ScrollDown(1)
			}
		case "pgup", "b":
			if m.focusedPane == 0 {
				m.history.HalfPageUp()
			}
		case "pgdown", "f":
			if m.focusedPane == 0 {
				m.history.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.history.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.history.GotoBottom()
			}
		}
	}

	// Only update input if it's focused
	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit evaluates the current input line
func (m *Model) submit() {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return
	}
	m.input.SetValue("")

	res, err := draw.EvaluateTokens(strings.Fields(line))
	if err != nil {
		m.logger.Debug("rejected record", "error", err)
		m.append(ErrorStyle.Render(draw.InvalidLine) + "  " + EchoStyle.Render(line))
		return
	}

	m.append(m.styled.Line(res))
	m.append("  " + display.Advice(res))
}

// append adds a line to the history and scrolls to it
func (m *Model) append(line string) {
	m.lines = append(m.lines, line)
	m.history.SetContent(strings.Join(m.lines, "\n"))
	m.history.GotoBottom()
}

// View renders the explorer
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	historyStyle := HistoryStyle
	if m.focusedPane == 0 {
		historyStyle = FocusedHistoryStyle
	}
	historyPane := historyStyle.
		Width(m.history.Width).
		Height(m.history.Height).
		Render(m.history.View())

	inputPane := fmt.Sprintf("%s\n%s",
		m.input.View(),
		HelpStyle.Render("Enter to evaluate • Tab to scroll history • Ctrl+C to quit"))

	return lipgloss.JoinVertical(lipgloss.Top, historyPane, inputPane)
}
