package handler

import (
	"net/http"

	"github.com/barodex/barodex/internal/refdb"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string `json:"status"`
	Items  int    `json:"items,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz(db *refdb.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The database is loaded before the server starts, so liveness
		// implies readiness; report the item count for quick sanity checks.
		respondJSON(w, http.StatusOK, HealthResponse{
			Status: "ok",
			Items:  db.Len(),
		})
	}
}
