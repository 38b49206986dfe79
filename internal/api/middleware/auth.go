package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/JunFolioGame/API-BackEnd/internal/api/apierr"
	"github.com/JunFolioGame/API-BackEnd/internal/model"
	"github.com/JunFolioGame/API-BackEnd/internal/services/directory"
)

type contextKey string

const (
	playerContextKey contextKey = "player"
	tokenContextKey  contextKey = "token"
)

// Auth creates authentication middleware
func Auth(dir *directory.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			token, err := dir.ValidateToken(raw)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, tokenContextKey, token)
			ctx = context.WithValue(ctx, playerContextKey, &token.Player)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the request
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := r.Cookie("token")
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetPlayer returns the authenticated player from the request context
func GetPlayer(ctx context.Context) *model.Player {
	player, _ := ctx.Value(playerContextKey).(*model.Player)
	return player
}

// GetToken returns the token from the request context
func GetToken(ctx context.Context) *directory.Token {
	token, _ := ctx.Value(tokenContextKey).(*directory.Token)
	return token
}

// MustGetPlayer returns the authenticated player or panics
func MustGetPlayer(ctx context.Context) *model.Player {
	player := GetPlayer(ctx)
	if player == nil {
		panic("no player in context - auth middleware not applied?")
	}
	return player
}
