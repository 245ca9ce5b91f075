package tictactoe

import "github.com/playgrid/tictactoe-backend/internal/entity"

// WinCombos lists the 8 three-in-a-row lines of the board: 3 rows, 3 columns
// and both diagonals. Cells are indexed row-major, 0 through 8.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome derives the game result from the board alone: the winning mark if
// some line holds three of it, entity.PlayerTie when the board is full with
// no winner, and the empty string while the game is still going.
func Outcome(board *[9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return ""
		}
	}

	return entity.PlayerTie
}

// EmptyCells returns the indices of free cells in ascending order. The search
// engine walks candidates in exactly this order, which is what makes its
// tie-breaking deterministic.
func EmptyCells(board *[9]string) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// applyMove and undoMove are the unchecked mutators the search engine pairs
// around every recursive call. Legality is the caller's problem; MakeTurn is
// the validated path.
func applyMove(board *[9]string, cell int, mark string) {
	board[cell] = mark
}

func undoMove(board *[9]string, cell int) {
	board[cell] = entity.EmptyCell
}

// ToggleMark returns the mark of the other side.
func ToggleMark(mark string) string {
	if mark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
