package model

import "github.com/golang-jwt/jwt/v5"

// ReviewerClaims are JWT claims for reviewer authentication
type ReviewerClaims struct {
	ReviewerID string `json:"reviewerId"`
	jwt.RegisteredClaims
}

// ParticipantClaims are JWT claims for session-scoped participant tokens
type ParticipantClaims struct {
	SessionID     string `json:"sessionId"`
	ParticipantID string `json:"participantId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for reviewer login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token      string `json:"token"`
	ReviewerID string `json:"reviewerId"`
}
