// Package config loads the optional HCL configuration file shared by
// the command-line tools.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is where the tools look for configuration unless told
// otherwise.
const DefaultPath = "psychic-poker.hcl"

// Config represents the complete tool configuration. Every block is
// optional; missing blocks and attributes fall back to defaults.
type Config struct {
	Eval   *EvalSettings   `hcl:"eval,block"`
	Server *ServerSettings `hcl:"server,block"`
	Log    *LogSettings    `hcl:"log,block"`
}

// EvalSettings contains line pipeline configuration
type EvalSettings struct {
	Workers      int  `hcl:"workers,optional"`
	Pretty       bool `hcl:"pretty,optional"`
	SkipSelfTest bool `hcl:"skip_self_test,optional"`
}

// ServerSettings contains WebSocket service configuration
type ServerSettings struct {
	Address            string `hcl:"address,optional"`
	IdleTimeoutSeconds int    `hcl:"idle_timeout_seconds,optional"`
}

// LogSettings contains log output configuration
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Eval: &EvalSettings{
			Workers: 1,
		},
		Server: &ServerSettings{
			Address:            ":8080",
			IdleTimeoutSeconds: 60,
		},
		Log: &LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from an HCL file. A missing file is not an
// error; it yields the defaults.
func Load(filename string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	defaults := Default()
	if config.Eval == nil {
		config.Eval = defaults.Eval
	}
	if config.Eval.Workers == 0 {
		config.Eval.Workers = defaults.Eval.Workers
	}
	if config.Server == nil {
		config.Server = defaults.Server
	}
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.IdleTimeoutSeconds == 0 {
		config.Server.IdleTimeoutSeconds = defaults.Server.IdleTimeoutSeconds
	}
	if config.Log == nil {
		config.Log = defaults.Log
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}
	if config.Log.Format == "" {
		config.Log.Format = defaults.Log.Format
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Eval.Workers < 1 {
		return fmt.Errorf("eval workers must be at least 1, got %d", c.Eval.Workers)
	}

	if c.Server.Address == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if c.Server.IdleTimeoutSeconds < 1 {
		return fmt.Errorf("server idle timeout must be at least 1 second, got %d", c.Server.IdleTimeoutSeconds)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	return nil
}
