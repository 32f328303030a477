// Package server exposes record evaluation over WebSocket. Each text
// message is one record line; the reply is the line the evaluation
// pipeline would print for it.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Config holds the server tunables
type Config struct {
	Addr        string
	IdleTimeout time.Duration
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		IdleTimeout: 60 * time.Second,
	}
}

// Server represents the WebSocket evaluation service
type Server struct {
	config      Config
	upgrader    websocket.Upgrader
	connections map[*Connection]bool
	register    chan *Connection
	unregister  chan *Connection
	logger      zerolog.Logger
	clock       quartz.Clock
	httpServer  *http.Server
	mu          sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
}

// Option configures a Server
type Option func(*Server)

// WithConfig sets a custom configuration
func WithConfig(config Config) Option {
	return func(s *Server) {
		s.config = config
	}
}

// WithClock sets a custom clock (for tests)
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// NewServer creates a new WebSocket evaluation server
func NewServer(logger zerolog.Logger, opts ...Option) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		config: DefaultConfig(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		logger:      logger.With().Str("component", "server").Logger(),
		clock:       quartz.NewReal(),
		ctx:         ctx,
		cancel:      cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler serving /ws and /health
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start runs the connection loop and serves HTTP on the configured
// address. It blocks until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	go s.run()

	s.httpServer = &http.Server{
		Addr:    s.config.Addr,
		Handler: s.Handler(),
	}

	s.logger.Info().Str("addr", s.config.Addr).Msg("starting server")
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP listener and closes every connection
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}

	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()

	return err
}

// run handles connection lifecycle
func (s *Server) run() {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info().Int("total", total).Msg("client connected")

		case conn := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.connections[conn]; ok {
				delete(s.connections, conn)
				_ = conn.Close()
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info().Int("total", total).Msg("client disconnected")

		case <-s.ctx.Done():
			return
		}
	}
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to upgrade connection")
		return
	}

	client := NewConnection(conn, s.logger, s.clock, s.config.IdleTimeout)
	s.register <- client
	client.Start()

	go func() {
		<-client.ctx.Done()
		select {
		case s.unregister <- client:
		case <-s.ctx.Done():
		}
	}()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}
