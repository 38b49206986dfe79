// Package session implements the game session lobby: creation, concurrent
// joins under the capacity invariant, and the one-shot finalization that
// partitions the lobby into teams.
package session

import (
	"context"
	"log/slog"

	"github.com/JunFolioGame/API-BackEnd/internal/dependencies/clock"
	"github.com/JunFolioGame/API-BackEnd/internal/dependencies/random"
	"github.com/JunFolioGame/API-BackEnd/internal/locking"
	"github.com/JunFolioGame/API-BackEnd/internal/model"
	"github.com/JunFolioGame/API-BackEnd/internal/services/partition"
	"github.com/JunFolioGame/API-BackEnd/internal/storage"
)

const (
	// CodeLength is the length of generated session codes
	CodeLength = 6
	// CodeAlphabet is the characters used in session codes
	CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// DisplayNameResolver is the player directory seam: it resolves a player id
// into the display name recorded in the lobby entry.
type DisplayNameResolver interface {
	ResolveDisplayName(ctx context.Context, id model.PlayerID) (string, error)
}

// Controller owns session lifecycle and lobby membership.
//
// Mutating operations on one session (Join, Finalize) are serialized by a
// per-session lock held across the whole load-check-mutate-save unit, so the
// capacity check and the admit can never interleave. Different sessions do
// not contend.
type Controller struct {
	storage     storage.Storage
	partitioner *partition.Service
	resolver    DisplayNameResolver
	clock       clock.Clock
	random      random.Random
	locks       *locking.Keyed
	logger      *slog.Logger
}

// NewController creates a new session controller
func NewController(
	storage storage.Storage,
	partitioner *partition.Service,
	resolver DisplayNameResolver,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     storage,
		partitioner: partitioner,
		resolver:    resolver,
		clock:       clock,
		random:      random,
		locks:       locking.New(),
		logger:      logger,
	}
}

// Create validates the bounds, generates a unique session code and stores a
// new active session with an empty lobby. Every violated bound is reported,
// not just the first.
func (c *Controller) Create(ctx context.Context, creatorID model.PlayerID, bounds model.TeamBounds) (*model.Session, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	now := c.clock.Now()

	for {
		code := model.SessionID(c.random.Code(CodeLength, CodeAlphabet))

		// Hold the candidate's lock across exists-check and save so two
		// creators drawing the same code cannot both claim it
		c.locks.Lock(string(code))
		exists, err := c.storage.SessionExists(ctx, code)
		if err != nil {
			c.locks.Unlock(string(code))
			return nil, err
		}
		if exists {
			c.locks.Unlock(string(code))
			continue
		}

		session := &model.Session{
			Code:      code,
			CreatorID: creatorID,
			Bounds:    bounds,
			Lobby:     []model.LobbyMember{},
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = c.storage.SaveSession(ctx, session)
		c.locks.Unlock(string(code))
		if err != nil {
			return nil, err
		}

		c.logger.Info("session created",
			slog.String("code", string(code)),
			slog.String("creator", string(creatorID)),
			slog.Int("capacity", bounds.Capacity()),
		)
		return session, nil
	}
}

// Get returns the session for its creator. Anyone else, and any unknown
// code, gets ErrSessionNotFound.
func (c *Controller) Get(ctx context.Context, code model.SessionID, requesterID model.PlayerID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}
	if session.CreatorID != requesterID {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// Join admits a player into the session lobby. Joining a lobby the player is
// already in is a no-op success. Admitting past the capacity bound fails
// with ErrSessionFull; unknown or finalized sessions fail with
// ErrSessionNotFound.
func (c *Controller) Join(ctx context.Context, code model.SessionID, playerID model.PlayerID) error {
	// An unknown code answers not-found before the directory is consulted,
	// so a lapsed guest record never masks the session error
	exists, err := c.storage.SessionExists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrSessionNotFound
	}

	// Resolve the display name before taking the session lock so directory
	// latency never extends the critical section
	displayName, err := c.resolver.ResolveDisplayName(ctx, playerID)
	if err != nil {
		return err
	}

	c.locks.Lock(string(code))
	defer c.locks.Unlock(string(code))

	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return err
	}
	if !session.Active {
		return model.ErrSessionNotFound
	}

	if session.GetMember(playerID) != nil {
		return nil
	}

	if len(session.Lobby)+1 > session.Bounds.Capacity() {
		return model.ErrSessionFull
	}

	session.Lobby = append(session.Lobby, model.LobbyMember{
		PlayerID:    playerID,
		DisplayName: displayName,
		JoinedAt:    c.clock.Now(),
	})
	session.UpdatedAt = c.clock.Now()

	return c.storage.SaveSession(ctx, session)
}

// Finalize closes the session and partitions its lobby into teams. Only the
// creator may finalize, exactly once; the snapshot taken here is the one
// partitioned, and no join can land after it. The session is left inactive
// with its final team count recorded.
func (c *Controller) Finalize(ctx context.Context, code model.SessionID, requesterID model.PlayerID) (*model.Session, *model.Partition, error) {
	c.locks.Lock(string(code))
	defer c.locks.Unlock(string(code))

	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if !session.Active || session.CreatorID != requesterID {
		return nil, nil, model.ErrSessionNotFound
	}

	if len(session.Lobby) < session.Bounds.MinPopulation() {
		return nil, nil, model.ErrNotEnoughPlayers
	}

	result, err := c.partitioner.Partition(session.Lobby, session.Bounds)
	if err != nil {
		// Infeasible bounds are a logic fault, not a lobby-population
		// problem; surface them rather than returning an empty partition
		c.logger.Error("session partition failed",
			slog.String("code", string(code)),
			slog.Int("lobby_size", len(session.Lobby)),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}

	now := c.clock.Now()
	teamCount := result.TeamCount()
	session.Active = false
	session.FinalTeamCount = &teamCount
	session.FinalizedAt = &now
	session.UpdatedAt = now

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, nil, err
	}

	c.logger.Info("session finalized",
		slog.String("code", string(code)),
		slog.Int("players", len(session.Lobby)),
		slog.Int("teams", teamCount),
	)
	return session, result, nil
}

// ControllerInterface is the caller-facing surface, for dependency injection
type ControllerInterface interface {
	Create(ctx context.Context, creatorID model.PlayerID, bounds model.TeamBounds) (*model.Session, error)
	Get(ctx context.Context, code model.SessionID, requesterID model.PlayerID) (*model.Session, error)
	Join(ctx context.Context, code model.SessionID, playerID model.PlayerID) error
	Finalize(ctx context.Context, code model.SessionID, requesterID model.PlayerID) (*model.Session, *model.Partition, error)
}

var _ ControllerInterface = (*Controller)(nil)
