package model

import "time"

// SessionID is the short, human-shareable code identifying a game session
type SessionID string

// TeamBounds holds the team-shape constraints supplied at session creation.
// TeamMin/TeamMax bound the number of teams, TeamPlayersMin/TeamPlayersMax
// bound the players per team. All bounds are inclusive.
type TeamBounds struct {
	TeamMin        int
	TeamMax        int
	TeamPlayersMin int
	TeamPlayersMax int
}

// Capacity returns the maximum lobby population the bounds allow
func (b TeamBounds) Capacity() int {
	return b.TeamMax * b.TeamPlayersMax
}

// MinPopulation returns the smallest lobby that can be finalized
func (b TeamBounds) MinPopulation() int {
	return b.TeamMin * b.TeamPlayersMin
}

// Validate checks every bound and returns an InvalidBoundsError listing
// all violated fields, or nil if the bounds are well-formed
func (b TeamBounds) Validate() error {
	var violations []BoundsViolation

	check := func(field string, value int) {
		if value < 1 {
			violations = append(violations, BoundsViolation{Field: field, Reason: "must be at least 1"})
		} else if value > BoundsLimit {
			violations = append(violations, BoundsViolation{Field: field, Reason: "exceeds the allowed maximum"})
		}
	}
	check("team_min", b.TeamMin)
	check("team_max", b.TeamMax)
	check("team_players_min", b.TeamPlayersMin)
	check("team_players_max", b.TeamPlayersMax)

	if b.TeamMin >= 1 && b.TeamMax >= 1 && b.TeamMax < b.TeamMin {
		violations = append(violations, BoundsViolation{Field: "team_max", Reason: "must not be less than team_min"})
	}
	if b.TeamPlayersMin >= 1 && b.TeamPlayersMax >= 1 && b.TeamPlayersMax < b.TeamPlayersMin {
		violations = append(violations, BoundsViolation{Field: "team_players_max", Reason: "must not be less than team_players_min"})
	}

	if len(violations) > 0 {
		return &InvalidBoundsError{Violations: violations}
	}
	return nil
}

// LobbyMember is a player's entry in a session lobby
type LobbyMember struct {
	PlayerID    PlayerID
	DisplayName string
	JoinedAt    time.Time
}

// Session is the aggregate root for a game session lobby.
// The lobby preserves join order; round-robin team assignment depends on it.
type Session struct {
	Code           SessionID
	CreatorID      PlayerID
	Bounds         TeamBounds
	Lobby          []LobbyMember
	Active         bool // true from creation until successful finalization
	FinalTeamCount *int // set only at finalization
	CreatedAt      time.Time
	UpdatedAt      time.Time
	FinalizedAt    *time.Time
}

// GetMember returns the lobby entry for the given player, or nil if absent
func (s *Session) GetMember(playerID PlayerID) *LobbyMember {
	for i := range s.Lobby {
		if s.Lobby[i].PlayerID == playerID {
			return &s.Lobby[i]
		}
	}
	return nil
}
