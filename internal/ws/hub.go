package ws

import (
	"log"
	"sync"
)

// Hub owns the set of live listing-page connections. Membership changes
// funnel through Run so each client's send channel has exactly one
// closer.
type Hub struct {
	mu    sync.RWMutex
	conns map[*Client]struct{}

	joins  chan *Client
	leaves chan *Client
	events chan []byte

	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		conns:  make(map[*Client]struct{}),
		joins:  make(chan *Client, 128),
		leaves: make(chan *Client, 128),
		events: make(chan []byte, 1024),
		logger: logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.joins:
			if c == nil {
				continue
			}
			h.mu.Lock()
			h.conns[c] = struct{}{}
			n := len(h.conns)
			h.mu.Unlock()
			h.logf("WS connected | total_clients=%d", n)

		case c := <-h.leaves:
			if c == nil {
				continue
			}
			h.drop(c)

		case msg := <-h.events:
			h.dispatch(msg)
		}
	}
}

// dispatch fans one event out to every connection. A client whose send
// buffer is full is removed right here, under the lock; re-queueing it
// through the leave channel would have Run blocking on its own queue
// once enough clients stall in a single broadcast.
func (h *Hub) dispatch(msg []byte) {
	h.mu.Lock()
	for c := range h.conns {
		select {
		case c.send <- msg:
		default:
			delete(h.conns, c)
			close(c.send)
			h.logf("WS dropped slow client | total_clients=%d", len(h.conns))
		}
	}
	h.mu.Unlock()
}

func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	_, ok := h.conns[c]
	if ok {
		delete(h.conns, c)
		close(c.send)
	}
	n := len(h.conns)
	h.mu.Unlock()
	if ok {
		h.logf("WS disconnected | total_clients=%d", n)
	}
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}

func (h *Hub) Register(c *Client) {
	if h == nil {
		return
	}
	h.joins <- c
}

func (h *Hub) Unregister(c *Client) {
	if h == nil {
		return
	}
	h.leaves <- c
}

func (h *Hub) Broadcast(msg []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- msg:
	default:
		h.logf("WS broadcast dropped | reason=buffer_full")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
