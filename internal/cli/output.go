package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Session:
		o.printSession(v)
	case FinalizeResult:
		o.printFinalizeResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player Player `json:"player"`
	Token  string `json:"token"`
}

// TeamBounds response type
type TeamBounds struct {
	TeamMin        int `json:"team_min"`
	TeamMax        int `json:"team_max"`
	TeamPlayersMin int `json:"team_players_min"`
	TeamPlayersMax int `json:"team_players_max"`
}

// LobbyMember response type
type LobbyMember struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
}

// Session response type
type Session struct {
	Code           string        `json:"code"`
	CreatorID      string        `json:"creator_id"`
	Bounds         TeamBounds    `json:"bounds"`
	Lobby          []LobbyMember `json:"lobby"`
	Capacity       int           `json:"capacity"`
	Active         bool          `json:"active"`
	FinalTeamCount *int          `json:"final_team_count"`
}

// FinalizeResult response type
type FinalizeResult struct {
	Session   Session         `json:"session"`
	TeamCount int             `json:"team_count"`
	Teams     [][]LobbyMember `json:"teams"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printSession(s Session) {
	state := "active"
	if !s.Active {
		state = "finalized"
	}
	fmt.Printf("Session: %s\n", s.Code)
	fmt.Printf("State: %s\n", state)
	fmt.Printf("Teams: %d-%d of %d-%d players\n",
		s.Bounds.TeamMin, s.Bounds.TeamMax, s.Bounds.TeamPlayersMin, s.Bounds.TeamPlayersMax)
	if s.FinalTeamCount != nil {
		fmt.Printf("Final Team Count: %d\n", *s.FinalTeamCount)
	}
	fmt.Printf("Lobby (%d/%d):\n", len(s.Lobby), s.Capacity)
	for _, m := range s.Lobby {
		fmt.Printf("  - %s (%s)\n", m.DisplayName, m.PlayerID)
	}
}

func (o *Output) printFinalizeResult(f FinalizeResult) {
	fmt.Printf("Session: %s\n", f.Session.Code)
	fmt.Printf("Teams: %d\n", f.TeamCount)
	for i, team := range f.Teams {
		fmt.Printf("Team %d (%d players):\n", i+1, len(team))
		for _, m := range team {
			fmt.Printf("  - %s (%s)\n", m.DisplayName, m.PlayerID)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
