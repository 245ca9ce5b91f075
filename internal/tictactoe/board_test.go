package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/tictactoe-backend/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestOutcome(t *testing.T) {
	t.Run("Winner on a row", func(t *testing.T) {
		// Given: player X holds the top row
		board := [9]string{x, x, x, o, o, e, e, e, e}

		// Then: X should be reported as the winner
		require.Equal(t, entity.PlayerX, Outcome(&board))
	})

	t.Run("Winner on a column", func(t *testing.T) {
		// Given: player O holds the middle column
		board := [9]string{x, o, e, x, o, e, e, o, x}

		// Then: O should be reported as the winner
		require.Equal(t, entity.PlayerO, Outcome(&board))
	})

	t.Run("Winner on a diagonal", func(t *testing.T) {
		// Given: player X holds the main diagonal
		board := [9]string{x, o, e, o, x, e, e, e, x}

		// Then: X should be reported as the winner
		require.Equal(t, entity.PlayerX, Outcome(&board))
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a board with free cells and no three-in-a-row
		board := [9]string{x, o, x, e, o, e, x, e, e}

		// Then: the game should still be ongoing
		require.Equal(t, "", Outcome(&board))
	})

	t.Run("Tie on a full board", func(t *testing.T) {
		// Given: a full board with no three-in-a-row
		board := [9]string{o, x, o, x, x, o, x, o, x}

		// Then: the game should be a tie
		assert.Equal(t, entity.PlayerTie, Outcome(&board))
	})
}

func TestEmptyCells(t *testing.T) {
	t.Run("Ascending order", func(t *testing.T) {
		// Given: X on cells 0 and 1, O on cells 4 and 6
		board := [9]string{x, x, e, e, o, e, o, e, e}

		// When: listing the free cells
		cells := EmptyCells(&board)

		// Then: exactly the free cells come back, lowest index first
		require.Equal(t, []int{2, 3, 5, 7, 8}, cells)
	})

	t.Run("Full board", func(t *testing.T) {
		// Given: a full board
		board := [9]string{o, x, o, x, x, o, x, o, x}

		// Then: there are no free cells
		assert.Empty(t, EmptyCells(&board))
	})

	t.Run("Single free cell", func(t *testing.T) {
		// Given: a board with one free cell left
		board := [9]string{x, o, o, o, x, x, x, o, e}

		// Then: only that cell is listed
		require.Equal(t, []int{8}, EmptyCells(&board))
	})
}

func TestApplyUndo(t *testing.T) {
	// Given: a mid-game board
	board := [9]string{x, x, e, e, o, e, o, e, e}
	before := board

	// When: a move is applied and then undone
	applyMove(&board, 2, x)
	require.Equal(t, x, board[2])
	undoMove(&board, 2)

	// Then: the board equals its pre-call state
	require.Equal(t, before, board)
}

func TestApply_CompletesLine(t *testing.T) {
	// Given: X on cells 0 and 1, O on cells 4 and 6, X to move
	board := [9]string{x, x, e, e, o, e, o, e, e}

	// When: X takes cell 2
	applyMove(&board, 2, x)

	// Then: X wins on the top row
	require.Equal(t, entity.PlayerX, Outcome(&board))
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, entity.PlayerO, ToggleMark(entity.PlayerX))
	assert.Equal(t, entity.PlayerX, ToggleMark(entity.PlayerO))
}
