package handler

import (
	"encoding/json"
	"net/http"

	"github.com/JunFolioGame/API-BackEnd/internal/api/middleware"
	"github.com/JunFolioGame/API-BackEnd/internal/api/request"
	"github.com/JunFolioGame/API-BackEnd/internal/api/response"
	"github.com/JunFolioGame/API-BackEnd/internal/services/directory"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	directory *directory.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(dir *directory.Service) *PlayerHandler {
	return &PlayerHandler{
		directory: dir,
	}
}

// CreateGuest handles POST /api/v1/players/guest
// An empty or absent display name falls back to the directory default.
func (h *PlayerHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Allow empty body for an anonymous guest
		req = request.CreateGuestRequest{}
	}

	token, err := h.directory.CreateGuest(r.Context(), req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromToken(token))
}

// Register handles POST /api/v1/players/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	token, err := h.directory.Register(r.Context(), req.Username, req.Password, req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromToken(token))
}

// Login handles POST /api/v1/players/login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	token, err := h.directory.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromToken(token))
}

// GetMe handles GET /api/v1/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Logout handles POST /api/v1/players/logout
func (h *PlayerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetToken(r.Context())
	if token != nil {
		h.directory.InvalidateToken(token.Value)
	}
	response.NoContent(w)
}
