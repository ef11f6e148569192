package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/internal/host"
	"github.com/lox/uno-cli/uno"
)

// Connection represents a WebSocket connection to a browser. Each
// connection plays its own game against its own host.
type Connection struct {
	conn        *websocket.Conn
	send        chan *ServerMessage
	host        *host.Host
	unsubscribe func()
	logger      *log.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once
}

// NewConnection creates a new connection wrapper around h
func NewConnection(conn *websocket.Conn, h *host.Host, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Connection{
		conn:   conn,
		send:   make(chan *ServerMessage, 256),
		host:   h,
		logger: logger.WithPrefix("conn").With("host_id", h.ID()),
		ctx:    ctx,
		cancel: cancel,
	}
	c.unsubscribe = h.Subscribe(c)
	return c
}

// Start begins handling the connection and deals the first game
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()

	if _, err := c.host.Start(); err != nil {
		c.sendError(err)
	}
}

// Close closes the connection and its host
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		c.unsubscribe()
		_ = c.host.Close()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// Done is closed once the connection shuts down
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// OnEvent implements host.Subscriber
func (c *Connection) OnEvent(event host.Event) {
	_ = c.SendMessage(NewStateMessage(event))
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *ServerMessage) error {
	defer func() {
		if r := recover(); r != nil {
			// The send channel is closed during shutdown.
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		go func() { _ = c.Close() }()
		return ErrConnectionClosed
	}
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096
)

var (
	ErrConnectionClosed = websocket.ErrCloseSent
)

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}
		c.handleMessage(msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
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

// handleMessage turns a client message into a host intent. State updates
// reach the client through OnEvent; only failures are answered here.
func (c *Connection) handleMessage(msg ClientMessage) {
	c.logger.Debug("Received message", "type", msg.Type)

	var err error
	switch msg.Type {
	case MessageTypeStart:
		_, err = c.host.Restart()
	case MessageTypePlay:
		if msg.CardID == "" {
			err = fmt.Errorf("%w: play needs card_id", errInvalidMessage)
			break
		}
		_, err = c.host.PlayCard(uno.CardID(msg.CardID))
	case MessageTypeDraw:
		_, err = c.host.DrawCard()
	case MessageTypeChooseColor:
		var color uno.Color
		color, err = uno.ParseColor(msg.Color)
		if err != nil {
			err = fmt.Errorf("%w: %w", game.ErrInvalidColor, err)
			break
		}
		_, err = c.host.ChooseColor(color)
	case MessageTypePass:
		_, err = c.host.Pass()
	default:
		err = fmt.Errorf("%w: unknown type %q", errInvalidMessage, msg.Type)
	}

	if err != nil {
		c.sendError(err)
	}
}

func (c *Connection) sendError(err error) {
	c.logger.Debug("Rejected message", "error", err)
	_ = c.SendMessage(NewErrorMessage(err))
}
