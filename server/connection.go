package server

import (
	"encoding/json"
	"log/slog"

	"github.com/gorilla/websocket"
)

// Connection wraps a websocket with a buffered outbound queue drained by
// WritePump.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
	log  *slog.Logger
}

// MessageHandler handles one inbound frame.
type MessageHandler interface {
	HandleMessage(conn *Connection, message []byte)
}

// NewConnection wraps ws.
func NewConnection(ws *websocket.Conn, log *slog.Logger) *Connection {
	return &Connection{ws: ws, send: make(chan []byte, 16), log: log}
}

// ReadPump feeds frames to h until the peer goes away, then closes the send
// queue so WritePump exits.
func (c *Connection) ReadPump(h MessageHandler) {
	defer close(c.send)
	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("read failed", "remote", c.ws.RemoteAddr().String(), "err", err)
			}
			return
		}
		h.HandleMessage(c, message)
	}
}

// WritePump writes queued frames until the queue is closed.
func (c *Connection) WritePump() {
	defer c.ws.Close()
	for message := range c.send {
		w, err := c.ws.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// SendMessage queues msg as JSON. A full queue drops the connection.
func (c *Connection) SendMessage(msg interface{}) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	select {
	case c.send <- b:
	default:
		c.log.Warn("send queue full, closing", "remote", c.ws.RemoteAddr().String())
		c.ws.Close()
	}
	return nil
}
