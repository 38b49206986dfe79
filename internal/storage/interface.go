package storage

import (
	"context"

	"github.com/JunFolioGame/API-BackEnd/internal/model"
)

// Storage defines the interface for data persistence.
//
// Implementations return copies of stored values: callers may mutate what
// they get back without affecting the store until they Save again.
// Serialization of concurrent check-then-act sequences is the caller's
// concern (the session controller holds a per-session lock around them).
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, code model.SessionID) (*model.Session, error)
	SessionExists(ctx context.Context, code model.SessionID) (bool, error)
	DeleteSession(ctx context.Context, code model.SessionID) error
}
