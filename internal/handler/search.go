package handler

import (
	"net/http"
	"time"

	"github.com/barodex/barodex/internal/metrics"
	"github.com/barodex/barodex/internal/refdb"
)

// SearchHit is one row of a search response, best matches first.
type SearchHit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Positions []int  `json:"positions,omitempty"`
}

// HandleSearch runs a fuzzy name search over the database
// @Summary Search items
// @Description Fuzzy search over item display names
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} SearchHit
// @Router /api/v1/search [get]
func HandleSearch(db *refdb.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		start := time.Now()
		results := db.Search(query)
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
		metrics.SearchesPerformed.Inc()

		// Empty slice, not null, so clients can iterate unconditionally.
		hits := make([]SearchHit, len(results))
		for i, result := range results {
			hits[i] = SearchHit{
				ID:        db.ItemID(result.Item),
				Name:      result.Name,
				Score:     result.Score,
				Positions: result.Positions,
			}
		}
		respondJSON(w, http.StatusOK, hits)
	}
}
