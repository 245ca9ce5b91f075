package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
)

var errNotConnected = errors.New("player is not connected")

// handleConnect - resolves or creates the player for this connection.
func (that *Server) handleConnect(ctx context.Context, sess *session, message *Message) error {
	var payload ConnectPayload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal connect payload: %w", err)
		}
	}

	player, err := that.uGame.GetOrCreatePlayer(ctx, payload.Player.ID)
	if err != nil {
		if sendErr := that.sendMessage(sess, message.Action, ResponsePayload{Error: "failed to connect"}); sendErr != nil {
			return fmt.Errorf("failed to send error response: %w", sendErr)
		}
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	sess.playerID = player.ID

	return that.sendMessage(sess, message.Action, ResponsePayload{Player: player})
}

// handleNewGame - starts a game against the bot for the connected player.
func (that *Server) handleNewGame(ctx context.Context, sess *session, message *Message) error {
	if sess.playerID == "" {
		return that.sendMessage(sess, message.Action, ResponsePayload{Error: errNotConnected.Error()})
	}

	var payload NewGamePayload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal new game payload: %w", err)
		}
	}

	game, err := that.uGame.StartGame(ctx, sess.playerID, payload.Difficulty, payload.Mark)
	if err != nil {
		if isBadStartRequest(err) {
			return that.sendMessage(sess, message.Action, ResponsePayload{Error: err.Error()})
		}

		if sendErr := that.sendMessage(sess, message.Action, ResponsePayload{Error: "failed to start game"}); sendErr != nil {
			return fmt.Errorf("failed to send error response: %w", sendErr)
		}
		return fmt.Errorf("failed to start game: %w", err)
	}

	return that.sendMessage(sess, message.Action, ResponsePayload{Player: game.HumanPlayer(), Game: game})
}

// handleGameTurn - applies the player's move. Rejected moves are not fatal:
// the unchanged game comes back with the error text so the client re-prompts.
func (that *Server) handleGameTurn(ctx context.Context, sess *session, message *Message) error {
	if sess.playerID == "" {
		return that.sendMessage(sess, message.Action, ResponsePayload{Error: errNotConnected.Error()})
	}

	var payload TurnPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal turn payload: %w", err)
	}

	game, err := that.uGame.MakeTurn(ctx, sess.playerID, payload.Cell)
	if err != nil {
		if isRetryableTurnError(err) {
			return that.sendMessage(sess, message.Action, ResponsePayload{Game: game, Error: err.Error()})
		}

		if sendErr := that.sendMessage(sess, message.Action, ResponsePayload{Error: "failed to make turn"}); sendErr != nil {
			return fmt.Errorf("failed to send error response: %w", sendErr)
		}
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return that.sendMessage(sess, message.Action, ResponsePayload{Game: game})
}

// isBadStartRequest tells a bad game:new payload (client corrects and
// retries) from a server fault.
func isBadStartRequest(err error) bool {
	return errors.Is(err, apperror.ErrInvalidMark) ||
		errors.Is(err, apperror.ErrUnknownDifficulty)
}

// isRetryableTurnError tells a bad move (client retries) from a server fault.
func isRetryableTurnError(err error) bool {
	return errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrGameIsNotStarted) ||
		errors.Is(err, apperror.ErrGameFinished)
}
