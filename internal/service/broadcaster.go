package service

// Broadcaster interface for the reviewer WebSocket feed (avoids import cycle)
type Broadcaster interface {
	BroadcastToReviewers(msgType string, payload interface{})
}
