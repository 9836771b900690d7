package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salihsuliman/queue-up/internal/api/response"
	"github.com/salihsuliman/queue-up/internal/model"
	"github.com/salihsuliman/queue-up/internal/services/directory"
)

// PlayersHandler handles directory-wide player endpoints
type PlayersHandler struct {
	directory *directory.Service
}

// NewPlayersHandler creates a new players handler
func NewPlayersHandler(dir *directory.Service) *PlayersHandler {
	return &PlayersHandler{directory: dir}
}

// List handles GET /api/v1/players
func (h *PlayersHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.PlayerListFromModel(h.directory.AllPlayers()))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayersHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.directory.PlayerByID(playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
