// Package directory is the player directory: it issues player identities,
// authenticates registered players, and resolves player ids to display
// names for lobby entries.
package directory

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JunFolioGame/API-BackEnd/internal/dependencies/clock"
	"github.com/JunFolioGame/API-BackEnd/internal/model"
	"github.com/JunFolioGame/API-BackEnd/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameExists     = errors.New("username already exists")
)

// Token represents an issued authentication token
type Token struct {
	Value     string
	PlayerID  model.PlayerID
	Player    model.Player
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Config holds configuration for the directory service
type Config struct {
	TokenDuration time.Duration
}

// DefaultConfig returns default directory configuration
func DefaultConfig() Config {
	return Config{
		TokenDuration: 24 * time.Hour,
	}
}

// Service issues player identities and authentication tokens. Tokens are
// held in memory; players are persisted through storage.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu     sync.RWMutex
	tokens map[string]*Token

	tokenDuration time.Duration
}

// New creates a new directory service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = DefaultConfig().TokenDuration
	}
	return &Service{
		storage:       storage,
		clock:         clock,
		logger:        logger,
		tokens:        make(map[string]*Token),
		tokenDuration: cfg.TokenDuration,
	}
}

// CreateGuest creates an anonymous player and issues a token. An empty
// display name falls back to the directory default.
func (s *Service) CreateGuest(ctx context.Context, displayName string) (*Token, error) {
	if displayName == "" {
		displayName = model.DefaultDisplayName
	}

	player := &model.Player{
		ID:          model.PlayerID(uuid.NewString()),
		DisplayName: displayName,
		IsGuest:     true,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("guest player created", slog.String("player", string(player.ID)))
	return s.issueToken(player)
}

// Register creates a registered player account and issues a token
func (s *Service) Register(ctx context.Context, username, password, displayName string) (*Token, error) {
	_, err := s.storage.GetRegisteredPlayerByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if displayName == "" {
		displayName = model.DefaultDisplayName
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:          model.PlayerID(uuid.NewString()),
		DisplayName: displayName,
		IsGuest:     false,
		CreatedAt:   now,
	}

	registered := &model.RegisteredPlayer{
		PlayerID:     player.ID,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	if err := s.storage.SaveRegisteredPlayer(ctx, registered); err != nil {
		return nil, err
	}

	s.logger.Info("player registered", slog.String("player", string(player.ID)))
	return s.issueToken(player)
}

// Login authenticates a registered player and issues a token
func (s *Service) Login(ctx context.Context, username, password string) (*Token, error) {
	rp, err := s.storage.GetRegisteredPlayerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rp.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	player, err := s.storage.GetPlayer(ctx, rp.PlayerID)
	if err != nil {
		return nil, err
	}

	return s.issueToken(player)
}

// ValidateToken checks a token value and returns the token if still valid
func (s *Service) ValidateToken(value string) (*Token, error) {
	s.mu.RLock()
	token, ok := s.tokens[value]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidToken
	}

	if s.clock.Now().After(token.ExpiresAt) {
		s.mu.Lock()
		delete(s.tokens, value)
		s.mu.Unlock()
		return nil, ErrInvalidToken
	}

	return token, nil
}

// InvalidateToken removes a token
func (s *Service) InvalidateToken(value string) {
	s.mu.Lock()
	delete(s.tokens, value)
	s.mu.Unlock()
}

// ResolveDisplayName resolves a player id to its display name
func (s *Service) ResolveDisplayName(ctx context.Context, id model.PlayerID) (string, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return "", err
	}
	return player.DisplayName, nil
}

// issueToken creates a new token for a player
func (s *Service) issueToken(player *model.Player) (*Token, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	token := &Token{
		Value:     "tok_" + base64.RawURLEncoding.EncodeToString(raw),
		PlayerID:  player.ID,
		Player:    *player,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenDuration),
	}

	s.mu.Lock()
	s.tokens[token.Value] = token
	s.mu.Unlock()

	return token, nil
}
