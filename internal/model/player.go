package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// DefaultDisplayName is used when a player does not provide a name
const DefaultDisplayName = "Player"

// Player represents a participant known to the player directory
type Player struct {
	ID          PlayerID
	DisplayName string
	IsGuest     bool // true for unregistered players
	CreatedAt   time.Time
}

// RegisteredPlayer extends Player with authentication data
// Stored separately so password hashes never travel with lobby data
type RegisteredPlayer struct {
	PlayerID     PlayerID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
