package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/psychic-poker/internal/tui"
)

// ExploreCmd runs the interactive record explorer.
type ExploreCmd struct {
	LogFile string `kong:"help='Write TUI logs to this file'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *ExploreCmd) Run() error {
	// The terminal belongs to the TUI, so logs go to a file or nowhere.
	logWriter := io.Writer(io.Discard)
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logWriter = f
	}

	logger := log.New(logWriter)
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	program := tea.NewProgram(tui.NewModel(logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("explorer exited: %w", err)
	}
	return nil
}
