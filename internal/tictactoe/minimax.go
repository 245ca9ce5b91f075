package tictactoe

import (
	"errors"
	"math"
	"math/rand"

	"github.com/playgrid/tictactoe-backend/internal/entity"
)

// NoMove is returned instead of a cell index when search hits a terminal or
// cut-off position and has nothing to play.
const NoMove = -1

// ErrNoMove reports a BestMove call on a board that is already decided.
var ErrNoMove = errors.New("no move available: board is terminal")

// Heuristic scores a non-terminal board from the bot's perspective. Values
// must stay strictly inside (-1, 1) so a cut-off estimate can never outrank
// a proven win or loss.
type Heuristic func(board *[9]string, botMark string) float64

// positionWeights favor the center over the corners and the corners over the
// edges.
var positionWeights = [9]float64{
	2, 1, 2,
	1, 3, 1,
	2, 1, 2,
}

// PositionHeuristic is the default cut-off estimate: the weight difference
// between the bot's cells and the opponent's, normalized below 1.
func PositionHeuristic(board *[9]string, botMark string) float64 {
	var score float64

	for i, cell := range board {
		switch cell {
		case botMark:
			score += positionWeights[i]
		case entity.EmptyCell:
		default:
			score -= positionWeights[i]
		}
	}

	return score / 16
}

// Engine picks moves for one side by exhaustive minimax search with
// alpha-beta pruning. The full game tree is at most 9 plies deep, so
// unbounded search is cheap; the depth cap and the heuristic only exist to
// dumb the bot down.
type Engine struct {
	botMark      string
	opponentMark string

	maxDepth  int // 0 means unbounded
	heuristic Heuristic

	randomChance float64
	rng          *rand.Rand
}

type Option func(*Engine)

// WithMaxDepth caps recursion at the given number of plies; positions cut off
// there are scored by the engine's heuristic instead of the terminal outcome.
func WithMaxDepth(depth int) Option {
	return func(that *Engine) {
		that.maxDepth = depth
	}
}

func WithHeuristic(heuristic Heuristic) Option {
	return func(that *Engine) {
		that.heuristic = heuristic
	}
}

// WithRandomChance makes BestMove return a uniformly random legal cell with
// probability p instead of searching.
func WithRandomChance(p float64, rng *rand.Rand) Option {
	return func(that *Engine) {
		that.randomChance = p
		that.rng = rng
	}
}

func NewEngine(botMark string, opts ...Option) *Engine {
	engine := &Engine{
		botMark:      botMark,
		opponentMark: ToggleMark(botMark),
		heuristic:    PositionHeuristic,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// BestMove returns the cell the bot should play on the given board. The board
// is passed by value, so the caller's copy is never touched.
func (that *Engine) BestMove(board [9]string) (int, error) {
	if that.randomChance > 0 && that.rng.Float64() < that.randomChance {
		return that.randomMove(&board)
	}

	_, move := that.Search(&board, true, math.Inf(-1), math.Inf(1))
	if move == NoMove {
		return NoMove, ErrNoMove
	}

	return move, nil
}

func (that *Engine) randomMove(board *[9]string) (int, error) {
	if Outcome(board) != "" {
		return NoMove, ErrNoMove
	}

	cells := EmptyCells(board)
	if len(cells) == 0 {
		return NoMove, ErrNoMove
	}

	return cells[that.rng.Intn(len(cells))], nil
}

// Search returns the game value of the position and the move that achieves
// it, or NoMove on a terminal position. The value is +1 when the bot can
// force a win, -1 when the opponent can, 0 for a forced draw. The board is
// shared scratch space for the whole recursion: every apply is paired with an
// undo, so the board is back in its input shape when Search returns.
func (that *Engine) Search(board *[9]string, maximizing bool, alpha, beta float64) (float64, int) {
	return that.search(board, maximizing, alpha, beta, 0)
}

func (that *Engine) search(board *[9]string, maximizing bool, alpha, beta float64, depth int) (float64, int) {
	switch Outcome(board) {
	case that.botMark:
		return 1, NoMove
	case that.opponentMark:
		return -1, NoMove
	case entity.PlayerTie:
		return 0, NoMove
	}

	if that.maxDepth > 0 && depth >= that.maxDepth {
		return that.heuristic(board, that.botMark), NoMove
	}

	mark := that.botMark
	bestValue := math.Inf(-1)
	if !maximizing {
		mark = that.opponentMark
		bestValue = math.Inf(1)
	}

	bestMove := NoMove
	for _, cell := range EmptyCells(board) {
		applyMove(board, cell, mark)
		value, _ := that.search(board, !maximizing, alpha, beta, depth+1)
		undoMove(board, cell)

		if maximizing {
			// Strict comparison: among equal moves the lowest index wins.
			if value > bestValue {
				bestValue, bestMove = value, cell
			}
			alpha = math.Max(alpha, value)
		} else {
			if value < bestValue {
				bestValue, bestMove = value, cell
			}
			beta = math.Min(beta, value)
		}

		// Remaining siblings cannot change the result at this node.
		if beta <= alpha {
			break
		}
	}

	return bestValue, bestMove
}
