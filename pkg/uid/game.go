package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier used to correlate a game's log lines.
func GenerateGameID() string {
	return uuid.NewString()
}
