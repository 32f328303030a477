package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/lox/psychic-poker/cmd/psychic-poker/shared"
	"github.com/lox/psychic-poker/internal/config"
	"github.com/lox/psychic-poker/internal/display"
	"github.com/lox/psychic-poker/internal/fileutil"
	"github.com/lox/psychic-poker/internal/runner"
)

// EvalCmd reads draw records line by line and reports the best hand
// for each.
type EvalCmd struct {
	File         string `kong:"arg,optional,help='Input file of records (defaults to stdin)'"`
	Workers      int    `kong:"help='Number of evaluation workers (overrides config)'"`
	Pretty       bool   `kong:"help='Styled output with a category summary'"`
	Output       string `kong:"short='o',help='Write results to a file instead of stdout'"`
	Config       string `kong:"short='c',help='Path to HCL configuration file'"`
	NoColor      bool   `kong:"help='Disable coloured output'"`
	SkipSelfTest bool   `kong:"help='Skip the startup self-test'"`
	Debug        bool   `kong:"help='Enable debug logging'"`
}

func (c *EvalCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Workers > 0 {
		cfg.Eval.Workers = c.Workers
	}
	if c.Pretty {
		cfg.Eval.Pretty = true
	}
	if c.SkipSelfTest {
		cfg.Eval.SkipSelfTest = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := shared.SetupLoggerFromConfig(cfg.Log.Level, cfg.Log.Format, c.Debug)

	if c.NoColor {
		display.NoColor()
	}

	if !cfg.Eval.SkipSelfTest {
		results := runner.SelfTest()
		if !runner.SelfTestOK(results) {
			logger.Warn().Msg("not all self-test cases passed")
		}
	}

	in := io.Reader(os.Stdin)
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	opts := []runner.Option{runner.WithWorkers(cfg.Eval.Workers)}
	if cfg.Eval.Pretty {
		opts = append(opts, runner.WithRenderer(display.NewStyled()))
	}
	r := runner.NewRunner(logger, opts...)

	out := io.Writer(os.Stdout)
	var buf bytes.Buffer
	if c.Output != "" {
		out = &buf
	}

	ctx := shared.SetupSignalHandler()
	stats, err := r.Run(ctx, in, out)
	if err != nil {
		return err
	}

	if c.Output != "" {
		if err := fileutil.WriteFileAtomic(c.Output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if cfg.Eval.Pretty && stats.Records > 0 {
		fmt.Println()
		fmt.Print(display.Summary(stats))
	}
	return nil
}

// loadConfig reads the named file, or the default path if none was
// given. Only an explicitly named file is required to exist.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load(config.DefaultPath)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return config.Load(path)
}
