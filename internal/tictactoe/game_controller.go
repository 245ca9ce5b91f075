package tictactoe

import (
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
	"github.com/playgrid/tictactoe-backend/internal/entity"
)

// MakeTurn applies a validated move to the game: the cell must exist, be
// empty and belong to the side whose turn it is. A rejected move leaves the
// game untouched so the client can retry.
func MakeTurn(game *entity.Game, mark string, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = mark
	updateGameStatus(game, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark string, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return apperror.ErrInvalidCell
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - re-derives the game status from the board after a move.
func updateGameStatus(game *entity.Game, mark string) {
	switch winner := Outcome(&game.Board); winner {
	case entity.PlayerX, entity.PlayerO, entity.PlayerTie:
		game.Winner = winner
		game.Status = entity.StatusFinished
		game.Turn = ""
	default:
		game.Turn = ToggleMark(mark)
	}
}
