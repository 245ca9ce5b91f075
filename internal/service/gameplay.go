package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/internal/tictactoe"
)

var ErrNoHumanSeat = errors.New("no human player in game")

type GamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, difficulty, humanMark string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
	}
}

// MakeTurn applies the human's move and, while the game is still open, the
// bot's reply. A rejected move comes back with the unchanged game so the
// client can re-prompt.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.IsWaiting() {
		return game, apperror.ErrGameIsNotStarted
	}

	if err = tictactoe.MakeTurn(game, player.Mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// GetOrCreateGame returns the player's in-flight game, or starts a fresh one
// against the bot. The human takes the requested mark; X always opens, so
// handing the bot X makes it move first.
func (that *gamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player, difficulty, humanMark string) (*entity.Game, error) {
	if player.GameID == "" {
		game, err := that.createGame(ctx, player, difficulty, humanMark)
		if err != nil {
			return nil, fmt.Errorf("failed to create new game: %w", err)
		}

		return game, nil
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player, difficulty, humanMark string) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, player, difficulty, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err = that.addBotToGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to add bot to game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) addBotToGame(ctx context.Context, game *entity.Game) error {
	human := game.HumanPlayer()
	if human == nil {
		return ErrNoHumanSeat
	}

	botPlayer := entity.NewBotPlayer(game.ID, tictactoe.ToggleMark(human.Mark))

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	if err := that.playerService.UpdatePlayer(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed to update bot player: %w", err)
	}

	// X opens: if the bot got X, it plays before the human sees the board.
	if botPlayer.Mark == entity.PlayerX {
		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game with bot: %w", err)
	}

	return nil
}

// CleanupGame drops a finished game from storage and detaches its players.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "CleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.GameID = ""
		player.Mark = ""
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update player", "player", player.ID, "error", err)
		}
	}
}
