package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches a connection to the hub as a watcher of one run.
func ServeWs(hub *Hub, c *websocket.Conn, runID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, RunID: runID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
