package main

import (
	"fmt"

	"github.com/lox/psychic-poker/internal/display"
	"github.com/lox/psychic-poker/internal/runner"
)

// SelfTestCmd runs the canonical cases and renders a pass/fail table.
type SelfTestCmd struct {
	NoColor bool `kong:"help='Disable coloured output'"`
}

func (c *SelfTestCmd) Run() error {
	if c.NoColor {
		display.NoColor()
	}

	results := runner.SelfTest()
	fmt.Print(display.SelfTestTable(results))

	if !runner.SelfTestOK(results) {
		return fmt.Errorf("self-test failed")
	}
	return nil
}
