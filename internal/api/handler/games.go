package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salihsuliman/queue-up/internal/api/response"
	"github.com/salihsuliman/queue-up/internal/model"
	"github.com/salihsuliman/queue-up/internal/services/directory"
	"github.com/salihsuliman/queue-up/internal/services/search"
)

// GamesHandler handles game catalog and per-game search endpoints
type GamesHandler struct {
	directory *directory.Service
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(dir *directory.Service) *GamesHandler {
	return &GamesHandler{directory: dir}
}

// List handles GET /api/v1/games
func (h *GamesHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GameListFromModel(h.directory.Games()))
}

// Get handles GET /api/v1/games/{id}
func (h *GamesHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	game, err := h.directory.GameByID(gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Players handles GET /api/v1/games/{id}/players
//
// Recognized query parameters: age (min-max), profession, location,
// rank -- each optional, with absent/"all" meaning no constraint --
// plus until, which is echoed back but never filtered on.
func (h *GamesHandler) Players(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	if _, err := h.directory.GameByID(gameID); err != nil {
		WriteError(w, err)
		return
	}

	filter, err := search.ParseQuery(r.URL.Query())
	if err != nil {
		WriteError(w, err)
		return
	}

	players := search.Apply(h.directory.PlayersForGame(gameID), filter)
	until := r.URL.Query().Get("until")

	response.JSON(w, http.StatusOK, response.SearchResultFromModel(gameID, until, players))
}

// FilterOptions handles GET /api/v1/games/{id}/filters
func (h *GamesHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	if _, err := h.directory.GameByID(gameID); err != nil {
		WriteError(w, err)
		return
	}

	options := search.OptionsFor(h.directory.PlayersForGame(gameID))
	response.JSON(w, http.StatusOK, response.FilterOptionsFromModel(options))
}
