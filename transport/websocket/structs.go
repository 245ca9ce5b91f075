package websocket

import (
	"encoding/json"

	"github.com/playgrid/tictactoe-backend/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ConnectPayload carries an optional existing player id; an empty id asks the
// server to mint a new player.
type ConnectPayload struct {
	Player struct {
		ID string `json:"id"`
	} `json:"player"`
}

// NewGamePayload configures a game against the bot. Both fields are
// optional: difficulty falls back to the server default, mark to X (the
// human opens).
type NewGamePayload struct {
	Difficulty string `json:"difficulty,omitempty"`
	Mark       string `json:"mark,omitempty"`
}

type TurnPayload struct {
	Cell int `json:"cell"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}
