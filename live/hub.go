package live

import (
	"encoding/json"
	"sync"
	"time"
)

// Client is one connected admin browser tab.
type Client struct {
	Send   chan []byte
	Room   string
	UserID string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	quit       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg, 64),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil {
				if conns[c] {
					delete(conns, c)
					close(c.Send)
				}
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()

		case <-h.quit:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.quit)
}

// outboundPayload is what every connected admin receives.
type outboundPayload struct {
	Action    string `json:"action"` // "submitted", "approved", "deleted"
	EventID   string `json:"eventid"`
	Title     string `json:"title,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// roomAdmin is the single room used for moderation notices.
const roomAdmin = "admin"

var defaultHub = NewHub()

// Start runs the package hub. Call once from main.
func Start() {
	go defaultHub.Run()
}

// Shutdown closes every connected client and stops the package hub.
func Shutdown() {
	defaultHub.Stop()
}

// Notify broadcasts an event lifecycle notice to connected admins. It never
// blocks the caller: delivery rides on the hub's buffered client channels.
func Notify(action, eventID, title string) {
	out := outboundPayload{
		Action:    action,
		EventID:   eventID,
		Title:     title,
		Timestamp: time.Now().Unix(),
	}
	data, err := json.Marshal(out)
	if err != nil {
		return
	}
	// Dropped when the hub is stopped or saturated; notices are advisory.
	select {
	case defaultHub.broadcast <- broadcastMsg{Room: roomAdmin, Data: data}:
	default:
	}
}
