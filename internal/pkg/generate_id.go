package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a unique identifier for a game.
func GenerateGameID() string {
	return uuid.NewString()
}
