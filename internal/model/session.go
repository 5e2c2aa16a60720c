package model

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

type Session struct {
	ID             string        `json:"id" bson:"_id"`
	Nickname       string        `json:"nickname" bson:"nickname"`
	Status         SessionStatus `json:"status" bson:"status"`
	CatalogVersion string        `json:"catalogVersion" bson:"catalogVersion"`
	StartedAt      time.Time     `json:"startedAt" bson:"startedAt"`
	CompletedAt    *time.Time    `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// SessionState is the full Redis working state for a session
type SessionState struct {
	Session
	Order   []string `json:"order"`   // shuffled presentation order
	Queue   []string `json:"queue"`   // remaining question IDs
	Current string   `json:"current"` // question ID on screen now
}

// StartSessionRequest is the request body for starting a session
type StartSessionRequest struct {
	Nickname string `json:"nickname"`
}

// StartSessionResponse is returned when a session starts
type StartSessionResponse struct {
	SessionID     string    `json:"sessionId"`
	Token         string    `json:"token"`
	QuestionCount int       `json:"questionCount"`
	FirstQuestion *Question `json:"firstQuestion,omitempty"`
}
