package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JunFolioGame/API-BackEnd/internal/api/middleware"
	"github.com/JunFolioGame/API-BackEnd/internal/api/request"
	"github.com/JunFolioGame/API-BackEnd/internal/api/response"
	"github.com/JunFolioGame/API-BackEnd/internal/model"
	"github.com/JunFolioGame/API-BackEnd/internal/services/session"
)

// SessionHandler handles game session endpoints
type SessionHandler struct {
	sessions session.ControllerInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions session.ControllerInterface) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	bounds := model.TeamBounds{
		TeamMin:        req.TeamMin,
		TeamMax:        req.TeamMax,
		TeamPlayersMin: req.TeamPlayersMin,
		TeamPlayersMax: req.TeamPlayersMax,
	}

	sess, err := h.sessions.Create(r.Context(), player.ID, bounds)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(sess))
}

// Get handles GET /api/v1/sessions/{code}
// Only the session creator can read the lobby.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.SessionID(mux.Vars(r)["code"])

	sess, err := h.sessions.Get(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Join handles POST /api/v1/sessions/{code}/join
func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.SessionID(mux.Vars(r)["code"])

	if err := h.sessions.Join(r.Context(), code, player.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Finalize handles POST /api/v1/sessions/{code}/finalize
func (h *SessionHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.SessionID(mux.Vars(r)["code"])

	sess, partition, err := h.sessions.Finalize(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FinalizeResponseFromModel(sess, partition))
}
