package model

import (
	"errors"
	"fmt"
	"strings"
)

// BoundsLimit is the largest value any team bound may take
const BoundsLimit = 32767

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Session errors. An unknown code, an already-finalized session and a
	// requester who is not the creator are deliberately indistinguishable.
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionFull      = errors.New("session lobby is full")
	ErrNotEnoughPlayers = errors.New("not enough players to finalize")

	// Partition errors
	ErrInfeasiblePartition = errors.New("no feasible team partition for the given bounds")
)

// BoundsViolation describes a single invalid field in a TeamBounds
type BoundsViolation struct {
	Field  string
	Reason string
}

// InvalidBoundsError reports every violated field of a TeamBounds,
// not just the first one found
type InvalidBoundsError struct {
	Violations []BoundsViolation
}

// Error implements the error interface
func (e *InvalidBoundsError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Reason)
	}
	return "invalid team bounds: " + strings.Join(parts, "; ")
}
