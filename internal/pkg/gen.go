package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const gameIDUpperBound = 99999999

// GenerateGameID - generates a short numeric identifier for a game room.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(gameIDUpperBound))
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return n.String(), nil
}
