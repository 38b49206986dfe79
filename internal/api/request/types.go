package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateSessionRequest is the request body for creating a game session
type CreateSessionRequest struct {
	TeamMin        int `json:"team_min"`
	TeamMax        int `json:"team_max"`
	TeamPlayersMin int `json:"team_players_min"`
	TeamPlayersMax int `json:"team_players_max"`
}
