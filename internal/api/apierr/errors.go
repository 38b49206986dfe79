package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JunFolioGame/API-BackEnd/internal/model"
	"github.com/JunFolioGame/API-BackEnd/internal/services/directory"
)

// APIError represents an API error response
type APIError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail carries per-field context on validation failures
type ErrorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidBounds       = "INVALID_BOUNDS"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeSessionFull         = "SESSION_FULL"
	CodeNotEnoughPlayers    = "NOT_ENOUGH_PLAYERS"
	CodeInfeasiblePartition = "INFEASIBLE_PARTITION"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Bounds validation carries per-field violations
	var boundsErr *model.InvalidBoundsError
	if errors.As(err, &boundsErr) {
		details := make([]ErrorDetail, len(boundsErr.Violations))
		for i, v := range boundsErr.Violations {
			details[i] = ErrorDetail{Field: v.Field, Reason: v.Reason}
		}
		return &httpError{http.StatusBadRequest, APIError{
			Code:    CodeInvalidBounds,
			Message: "Invalid team bounds",
			Details: details,
		}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodePlayerNotFound, Message: "Player not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeSessionNotFound, Message: "Session not found"}}
	case errors.Is(err, model.ErrSessionFull):
		return &httpError{http.StatusConflict, APIError{Code: CodeSessionFull, Message: "Session lobby is full"}}
	case errors.Is(err, model.ErrNotEnoughPlayers):
		return &httpError{http.StatusConflict, APIError{Code: CodeNotEnoughPlayers, Message: "Not enough players to form teams"}}
	case errors.Is(err, model.ErrInfeasiblePartition):
		return &httpError{http.StatusConflict, APIError{Code: CodeInfeasiblePartition, Message: "Lobby cannot be partitioned within the configured bounds"}}

	// Map directory errors
	case errors.Is(err, directory.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{Code: CodeInvalidCredentials, Message: "Invalid username or password"}}
	case errors.Is(err, directory.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{Code: CodeUnauthorized, Message: "Invalid or expired token"}}
	case errors.Is(err, directory.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{Code: CodeUsernameExists, Message: "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{Code: CodeUnauthorized, Message: "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
