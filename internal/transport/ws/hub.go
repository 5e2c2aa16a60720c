package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Reviewer feed message types
const (
	MsgSessionStarted   MessageType = "session_started"
	MsgAnswerRecorded   MessageType = "answer_recorded"
	MsgSessionCompleted MessageType = "session_completed"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans live session events out to every connected reviewer
type Hub struct {
	reviewerConns map[*Connection]bool

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one reviewer's WebSocket connection
type Connection struct {
	ReviewerID string
	Send       chan []byte
	Hub        *Hub
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		reviewerConns: make(map[*Connection]bool),
		register:      make(chan *Connection),
		unregister:    make(chan *Connection),
		broadcast:     make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.reviewerConns[conn] = true
			h.mu.Unlock()
			log.Printf("Reviewer %s connected to the feed", conn.ReviewerID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.reviewerConns[conn] {
				delete(h.reviewerConns, conn)
				close(conn.Send)
				log.Printf("Reviewer %s disconnected from the feed", conn.ReviewerID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg)
			for conn := range h.reviewerConns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToReviewers sends a message to all connected reviewers (implements service.Broadcaster)
func (h *Hub) BroadcastToReviewers(msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &Message{
		Type:    MessageType(msgType),
		Payload: data,
	}
}
