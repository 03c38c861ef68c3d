package handlers

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"glade.dev/internal/models"
	"glade.dev/internal/services"
)

const (
	// pongWait is how long a client may stay silent before its
	// connection is considered dead.
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	writeWait  = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// liveClient is one connected renderer client
type liveClient struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *liveClient) writeJSON(value any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(value)
}

func (c *liveClient) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// LiveHub pushes world envelopes to websocket clients: the current world
// on connect, the rebuilt one after each reload.
type LiveHub struct {
	worlds *services.WorldService
	logger *slog.Logger

	mu      sync.Mutex
	clients map[*liveClient]struct{}
}

// NewLiveHub creates a new LiveHub
func NewLiveHub(ws *services.WorldService, logger *slog.Logger) *LiveHub {
	return &LiveHub{
		worlds:  ws,
		logger:  logger,
		clients: make(map[*liveClient]struct{}),
	}
}

// HandleLive handles GET /api/live - upgrades to a websocket, sends the
// current world and then streams events until the client goes away
func (h *LiveHub) HandleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := &liveClient{id: uuid.NewString(), conn: conn}
	h.add(client)
	defer func() {
		h.remove(client)
		_ = conn.Close()
		h.logger.Info("live client disconnected", "client", client.id)
	}()
	h.logger.Info("live client connected", "client", client.id)

	env, err := h.worlds.Default()
	if err != nil {
		h.logger.Error("world snapshot failed", "client", client.id, "error", err)
		return
	}
	if err := client.writeJSON(models.LiveEvent{Type: "world", World: env}); err != nil {
		return
	}

	stop := make(chan struct{})
	defer close(stop)
	go h.pingLoop(client, stop)

	// Read loop. Clients send nothing the hub acts on; reading here
	// detects disconnects and keeps the deadline fresh via pongs.
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends an event to every connected client, dropping clients
// whose writes fail.
func (h *LiveHub) Broadcast(event models.LiveEvent) {
	h.mu.Lock()
	clients := make([]*liveClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.writeJSON(event); err != nil {
			h.logger.Warn("live write failed", "client", c.id, "error", err)
			_ = c.conn.Close()
			h.remove(c)
		}
	}
}

func (h *LiveHub) pingLoop(client *liveClient, stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := client.ping(); err != nil {
				return
			}
		}
	}
}

func (h *LiveHub) add(c *liveClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *LiveHub) remove(c *liveClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}
