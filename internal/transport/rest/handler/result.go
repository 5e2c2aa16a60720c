package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"tableread/internal/service"
	"tableread/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// ResultHandler handles reviewer-side result endpoints
type ResultHandler struct {
	resultSvc  *service.ResultService
	sessionSvc *service.SessionService
}

// NewResultHandler creates a new result handler
func NewResultHandler(resultSvc *service.ResultService, sessionSvc *service.SessionService) *ResultHandler {
	return &ResultHandler{
		resultSvc:  resultSvc,
		sessionSvc: sessionSvc,
	}
}

// ListSessions returns the most recently started sessions
// @Summary List sessions
// @Tags results
// @Produce json
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Security ReviewerToken
// @Router /sessions [get]
func (h *ResultHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	reviewerID := middleware.GetReviewerID(r.Context())
	if reviewerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limitStr := r.URL.Query().Get("limit")
	limit := int64(50)
	if limitStr != "" {
		if n, err := strconv.ParseInt(limitStr, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	sessions, err := h.sessionSvc.ListSessions(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// GetResult returns the full record for one completed session
// @Summary Session result
// @Tags results
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} model.ResultRecord
// @Failure 404 {object} map[string]string
// @Security ReviewerToken
// @Router /results/{sessionId} [get]
func (h *ResultHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	reviewerID := middleware.GetReviewerID(r.Context())
	if reviewerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	record, err := h.resultSvc.GetResult(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "result not found")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Export downloads one result record as a JSON file
// @Summary Export a result
// @Tags results
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} model.ResultRecord
// @Failure 404 {object} map[string]string
// @Security ReviewerToken
// @Router /results/{sessionId}/export [get]
func (h *ResultHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	reviewerID := middleware.GetReviewerID(r.Context())
	if reviewerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	record, err := h.resultSvc.GetResult(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "result not found")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="result_%s.json"`, sessionID))
	writeJSON(w, http.StatusOK, record)
}

// PersonaStats returns completion counts per persona
// @Summary Persona distribution
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Security ReviewerToken
// @Router /stats/personas [get]
func (h *ResultHandler) PersonaStats(w http.ResponseWriter, r *http.Request) {
	reviewerID := middleware.GetReviewerID(r.Context())
	if reviewerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	counts, err := h.resultSvc.PersonaDistribution(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"personas": counts})
}
