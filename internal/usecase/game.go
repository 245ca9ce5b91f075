package usecase

import (
	"context"
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
	"github.com/playgrid/tictactoe-backend/internal/entity"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	StartGame(ctx context.Context, playerID, difficulty, humanMark string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
	UpdatePlayer(ctx context.Context, player *entity.Player) error
}

type gamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, difficulty, humanMark string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type gameUseCase struct {
	playerService   playerService
	gamePlayService gamePlayService

	defaultDifficulty string
}

func NewGameUseCase(playerService playerService, gamePlayService gamePlayService, defaultDifficulty string) GameUseCase {
	return &gameUseCase{
		playerService:   playerService,
		gamePlayService: gamePlayService,

		defaultDifficulty: defaultDifficulty,
	}
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player, err := that.playerService.CreatePlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// StartGame opens a game against the bot. An empty difficulty falls back to
// the configured default; an empty mark seats the human as X, the opening
// side. Anything else must be a known value: a mark outside X/O would seat
// the human on a side the turn order never reaches.
func (that *gameUseCase) StartGame(ctx context.Context, playerID, difficulty, humanMark string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	switch difficulty {
	case "":
		difficulty = that.defaultDifficulty
	case entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard:
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownDifficulty, difficulty)
	}

	switch humanMark {
	case "":
		humanMark = entity.PlayerX
	case entity.PlayerX, entity.PlayerO:
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidMark, humanMark)
	}

	game, err := that.gamePlayService.GetOrCreateGame(ctx, player, difficulty, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, playerID, cell)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.gamePlayService.CleanupGame(ctx, game)
	}

	return game, nil
}
