package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lox/psychic-poker/cmd/psychic-poker/shared"
	"github.com/lox/psychic-poker/internal/server"
)

// ServeCmd runs the WebSocket record-evaluation service.
type ServeCmd struct {
	Addr        string        `kong:"help='Server address (overrides config)'"`
	IdleTimeout time.Duration `kong:"help='Disconnect clients idle for this long (overrides config)'"`
	Config      string        `kong:"short='c',help='Path to HCL configuration file'"`
	Debug       bool          `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Address = c.Addr
	}
	if c.IdleTimeout > 0 {
		cfg.Server.IdleTimeoutSeconds = int(c.IdleTimeout / time.Second)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := shared.SetupLoggerFromConfig(cfg.Log.Level, cfg.Log.Format, c.Debug)

	srvCfg := server.Config{
		Addr:        cfg.Server.Address,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}
	s := server.NewServer(logger, server.WithConfig(srvCfg))

	logger.Info().
		Str("address", srvCfg.Addr).
		Dur("idle_timeout", srvCfg.IdleTimeout).
		Msg("starting record service")

	ctx := shared.SetupSignalHandlerWithLogger(logger)

	serverErr := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
