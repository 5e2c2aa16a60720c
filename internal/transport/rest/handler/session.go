package handler

import (
	"encoding/json"
	"net/http"
	"tableread/internal/model"
	"tableread/internal/service"
	"tableread/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// SessionHandler handles the participant flow
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Start opens a new questionnaire session
// @Summary Start a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body model.StartSessionRequest true "Participant nickname"
// @Success 201 {object} model.StartSessionResponse
// @Failure 400 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Nickname == "" {
		writeError(w, http.StatusBadRequest, "nickname is required")
		return
	}

	resp, err := h.sessionSvc.Start(r.Context(), req.Nickname)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// GetCurrentQuestion returns the question the participant should see now
// @Summary Current question
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Security ParticipantToken
// @Router /sessions/{id}/question/current [get]
func (h *SessionHandler) GetCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	question, err := h.sessionSvc.GetCurrentQuestion(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := map[string]interface{}{
		"done":     question == nil,
		"question": question,
	}

	writeJSON(w, http.StatusOK, response)
}

// RecordAnswer stores a raw answer and advances the queue
// @Summary Record an answer
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body model.RecordAnswerRequest true "Question ID and raw value"
// @Success 200 {object} model.RecordAnswerResponse
// @Failure 401 {object} map[string]string
// @Security ParticipantToken
// @Router /sessions/{id}/answers [post]
func (h *SessionHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var req model.RecordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.sessionSvc.RecordAnswer(r.Context(), sessionID, &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Skip passes over the current question without recording anything
// @Summary Skip a question
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param questionId path string true "Question ID"
// @Success 200 {object} model.RecordAnswerResponse
// @Failure 401 {object} map[string]string
// @Security ParticipantToken
// @Router /sessions/{id}/questions/{questionId}/skip [post]
func (h *SessionHandler) Skip(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	questionID := mux.Vars(r)["questionId"]

	resp, err := h.sessionSvc.Skip(r.Context(), sessionID, questionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Complete freezes the session and scores it. The response only
// acknowledges; the computed profile stays on the reviewer side.
// @Summary Complete a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security ParticipantToken
// @Router /sessions/{id}/complete [post]
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	answeredCount, err := h.sessionSvc.Complete(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "completed",
		"answeredCount": answeredCount,
	})
}
