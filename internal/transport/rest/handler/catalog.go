package handler

import (
	"net/http"
	"tableread/internal/scoring"
)

// CatalogHandler serves the fixed question catalog
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Get returns every question in catalog order
// @Summary Question catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /catalog [get]
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	questions := scoring.Catalog()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":   scoring.CatalogVersion,
		"count":     len(questions),
		"questions": questions,
	})
}
