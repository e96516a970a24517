package event

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	logPrefix    = "event"
	sendQueueLen = 32
	writeTimeout = 10 * time.Second
)

// Event names published by the lifecycle operations.
const (
	RequestNew     = "request:new"
	RequestUpdated = "request:updated"
	RequestComment = "request:comment"
)

// Publisher is the send side of the fan-out consumed by the API server.
type Publisher interface {
	Broadcast(event string, payload interface{})
}

// Broker adds subscriber registration on top of publishing.
type Broker interface {
	Publisher
	Register(ws *websocket.Conn)
}

// Message is the wire format of a broadcast event.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Hub fans every published event out to all currently connected clients.
// There is no per-client filtering and no replay of missed events; clients
// filter by ownership on their side. Every connected client therefore sees
// every request's metadata.
type Hub struct {
	log *log.Entry

	mu    sync.RWMutex
	conns map[*connection]struct{}
}

type connection struct {
	ws   *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		log:   log.WithField("prefix", logPrefix),
		conns: make(map[*connection]struct{}),
	}
}

// Register adopts an upgraded websocket connection. The hub owns the
// connection from here on and closes it when the peer goes away or falls
// too far behind.
func (h *Hub) Register(ws *websocket.Conn) {
	c := &connection{
		ws:   ws,
		send: make(chan []byte, sendQueueLen),
	}

	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	go h.readPump(c)
}

// Broadcast publishes an event to every connected client. It never blocks
// and never reports failure to the caller; a client whose queue is full is
// dropped.
func (h *Hub) Broadcast(event string, payload interface{}) {
	data, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		h.log.WithError(err).Error("marshal broadcast payload")
		return
	}

	// sends happen under the read lock and channel close under the write
	// lock, so a send can never hit a closed channel
	h.mu.RLock()
	var slow []*connection
	for c := range h.conns {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.Warn("dropping slow event subscriber")
		h.unregister(c)
	}
}

// ConnCount returns the number of connected subscribers.
func (h *Hub) ConnCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := make([]*connection, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		h.unregister(c)
	}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	_, ok := h.conns[c]
	if ok {
		delete(h.conns, c)
	}
	h.mu.Unlock()

	if ok {
		close(c.send)
		_ = c.ws.Close()
	}
}

func (h *Hub) writePump(c *connection) {
	for data := range c.send {
		_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
			h.unregister(c)
			return
		}
	}
}

// readPump discards inbound frames; its job is noticing the peer closing.
func (h *Hub) readPump(c *connection) {
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			h.unregister(c)
			return
		}
	}
}
