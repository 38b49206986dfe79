package redis

import (
	"fmt"

	"github.com/JunFolioGame/API-BackEnd/internal/model"
)

// Key prefix for all session-backend data
const keyPrefix = "gsession"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// sessionKey returns the Redis key for a Session
func sessionKey(code model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, code)
}
