package response

import (
	"github.com/JunFolioGame/API-BackEnd/internal/model"
	"github.com/JunFolioGame/API-BackEnd/internal/services/directory"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player Player `json:"player"`
	Token  string `json:"token"`
}

// AuthResponseFromToken creates an AuthResponse from an issued token
func AuthResponseFromToken(t *directory.Token) AuthResponse {
	return AuthResponse{
		Player: PlayerFromModel(&t.Player),
		Token:  t.Value,
	}
}

// TeamBounds represents session team bounds
type TeamBounds struct {
	TeamMin        int `json:"team_min"`
	TeamMax        int `json:"team_max"`
	TeamPlayersMin int `json:"team_players_min"`
	TeamPlayersMax int `json:"team_players_max"`
}

// TeamBoundsFromModel converts model.TeamBounds
func TeamBoundsFromModel(b model.TeamBounds) TeamBounds {
	return TeamBounds{
		TeamMin:        b.TeamMin,
		TeamMax:        b.TeamMax,
		TeamPlayersMin: b.TeamPlayersMin,
		TeamPlayersMax: b.TeamPlayersMax,
	}
}

// LobbyMember represents a lobby member
type LobbyMember struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
}

// LobbyMemberFromModel converts model.LobbyMember
func LobbyMemberFromModel(m model.LobbyMember) LobbyMember {
	return LobbyMember{
		PlayerID:    string(m.PlayerID),
		DisplayName: m.DisplayName,
	}
}

// Session represents a game session in API responses
type Session struct {
	Code           string        `json:"code"`
	CreatorID      string        `json:"creator_id"`
	Bounds         TeamBounds    `json:"bounds"`
	Lobby          []LobbyMember `json:"lobby"`
	Capacity       int           `json:"capacity"`
	Active         bool          `json:"active"`
	FinalTeamCount *int          `json:"final_team_count"`
}

// SessionFromModel converts model.Session
func SessionFromModel(s *model.Session) Session {
	lobby := make([]LobbyMember, len(s.Lobby))
	for i, m := range s.Lobby {
		lobby[i] = LobbyMemberFromModel(m)
	}

	return Session{
		Code:           string(s.Code),
		CreatorID:      string(s.CreatorID),
		Bounds:         TeamBoundsFromModel(s.Bounds),
		Lobby:          lobby,
		Capacity:       s.Bounds.Capacity(),
		Active:         s.Active,
		FinalTeamCount: s.FinalTeamCount,
	}
}

// FinalizeResponse is the response after finalizing a session
type FinalizeResponse struct {
	Session   Session         `json:"session"`
	TeamCount int             `json:"team_count"`
	Teams     [][]LobbyMember `json:"teams"`
}

// FinalizeResponseFromModel converts a finalized session and its partition
func FinalizeResponseFromModel(s *model.Session, p *model.Partition) FinalizeResponse {
	teams := make([][]LobbyMember, len(p.Teams))
	for i, team := range p.Teams {
		teams[i] = make([]LobbyMember, len(team))
		for j, m := range team {
			teams[i][j] = LobbyMemberFromModel(m)
		}
	}

	return FinalizeResponse{
		Session:   SessionFromModel(s),
		TeamCount: p.TeamCount(),
		Teams:     teams,
	}
}
