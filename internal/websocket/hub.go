package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"witt-interpreter-be/internal/pkg/logger"
)

type Hub struct {
	// Registered clients map: RunID -> list of watchers (multi-tab)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance delivery
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.RunID] = append(h.clients[client.RunID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Watcher registered", map[string]interface{}{"run_id": client.RunID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.RunID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.RunID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.RunID]) == 0 {
					delete(h.clients, client.RunID)
					h.logger.Info("Hub", "Run has no watchers left", map[string]interface{}{"run_id": client.RunID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send delivers a progress message to every watcher of a run, locally and,
// when Redis is configured, on the other instances too.
func (h *Hub) Send(runID uuid.UUID, message []byte) {
	h.mu.RLock()
	clients, localFound := h.clients[runID]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- message:
			default:
				h.logger.Warn("Hub", "Watcher buffer full, dropping connection", map[string]interface{}{"run_id": runID})
				close(client.Send)
				h.unregister <- client
			}
		}
	}

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_run_id": runID.String(),
			"message":       json.RawMessage(message),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "run_events", jsonPayload)
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "run_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetRunID string          `json:"target_run_id"`
			Message     json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		runID, err := uuid.Parse(payload.TargetRunID)
		if err != nil {
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[runID]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					close(client.Send)
					h.unregister <- client
				}
			}
		}
	}
}
