package handler

import (
	"net/http"

	"github.com/salihsuliman/queue-up/internal/api/response"
	"github.com/salihsuliman/queue-up/internal/services/directory"
)

// StatsHandler handles directory statistics
type StatsHandler struct {
	directory *directory.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(dir *directory.Service) *StatsHandler {
	return &StatsHandler{directory: dir}
}

// Get handles GET /api/v1/directory/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.directory.Stats()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsFromModel(stats))
}
