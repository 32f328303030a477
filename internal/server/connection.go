package server

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/psychic-poker/internal/draw"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512
)

// Connection represents a WebSocket connection to a client. Every
// inbound text message is treated as one record line and answered
// with its result line.
type Connection struct {
	conn        *websocket.Conn
	send        chan string
	logger      zerolog.Logger
	clock       quartz.Clock
	idleTimeout time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, logger zerolog.Logger, clock quartz.Clock, idleTimeout time.Duration) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:        conn,
		send:        make(chan string, 64),
		logger:      logger.With().Str("component", "conn").Logger(),
		clock:       clock,
		idleTimeout: idleTimeout,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// readPump evaluates inbound record lines. Clients idle for longer
// than the idle timeout are disconnected.
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	var idle *quartz.Timer
	if c.idleTimeout > 0 {
		idle = c.clock.AfterFunc(c.idleTimeout, func() {
			c.logger.Info().Dur("idle_timeout", c.idleTimeout).Msg("closing idle connection")
			_ = c.Close()
		})
		defer idle.Stop()
	}

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error().Err(err).Msg("websocket error")
			}
			return
		}
		if idle != nil {
			idle.Reset(c.idleTimeout)
		}

		tokens := strings.Fields(string(data))
		if len(tokens) == 0 {
			continue
		}
		c.reply(c.evaluate(tokens))
	}
}

// evaluate produces the result line for one record
func (c *Connection) evaluate(tokens []string) string {
	res, err := draw.EvaluateTokens(tokens)
	if err != nil {
		c.logger.Debug().Err(err).Strs("tokens", tokens).Msg("rejected record")
		return draw.InvalidLine
	}
	return res.String()
}

// reply queues a line for the write pump
func (c *Connection) reply(line string) {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed, this is expected during shutdown
			c.logger.Debug().Interface("recovered", r).Msg("send on closed connection")
		}
	}()

	select {
	case c.send <- line:
	case <-c.ctx.Done():
	default:
		c.logger.Warn().Msg("send buffer full, closing connection")
		_ = c.Close()
	}
}

// writePump writes queued lines and keeps the connection alive with
// pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case line, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
				c.logger.Error().Err(err).Msg("failed to write message")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}
