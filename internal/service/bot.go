package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/internal/tictactoe"
)

var ErrBotNotFound = errors.New("bot player not found")

const (
	mediumSearchDepth  = 2
	mediumRandomChance = 0.3
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	rng *rand.Rand
}

func NewBotService() BotService {
	return &botService{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint: gosec // game moves, not secrets
	}
}

// MakeTurn picks a cell for the bot seat via adversarial search and applies
// it through the validated rules.
func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	engine := that.engineFor(game.Difficulty, botPlayer.Mark)

	cell, err := engine.BestMove(game.Board)
	if err != nil {
		return fmt.Errorf("failed to pick bot move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, botPlayer.Mark, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// engineFor maps a difficulty level to a search engine. Hard plays the full
// game tree and never loses; easy is uniform random; medium searches two
// plies with the positional heuristic and still blunders now and then.
func (that *botService) engineFor(difficulty, mark string) *tictactoe.Engine {
	switch difficulty {
	case entity.DifficultyEasy:
		return tictactoe.NewEngine(mark, tictactoe.WithRandomChance(1, that.rng))
	case entity.DifficultyMedium:
		return tictactoe.NewEngine(mark,
			tictactoe.WithMaxDepth(mediumSearchDepth),
			tictactoe.WithRandomChance(mediumRandomChance, that.rng),
		)
	default:
		return tictactoe.NewEngine(mark)
	}
}
