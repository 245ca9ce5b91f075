package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: creating a new game instance
	game := NewGame("123", DifficultyHard)

	// Then: the game should have the expected initial state
	expectedGame := &Game{
		ID:         "123",
		Board:      [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:       PlayerX,
		Winner:     "",
		Status:     StatusWaiting,
		Difficulty: DifficultyHard,
	}

	require.NotNil(t, game)
	require.Equal(t, expectedGame, game)
}

func TestGame_StatusChecks(t *testing.T) {
	game := NewGame("123", DifficultyEasy)

	assert.True(t, game.IsWaiting())
	assert.False(t, game.IsOngoing())
	assert.False(t, game.IsFinished())

	game.Status = StatusOngoing
	assert.True(t, game.IsOngoing())

	game.Status = StatusFinished
	assert.True(t, game.IsFinished())
}

func TestGame_Seats(t *testing.T) {
	t.Run("Both seats filled", func(t *testing.T) {
		// Given: a game with a human and a bot
		game := NewGame("123", DifficultyHard)
		human := &Player{ID: "p1", Mark: PlayerX, GameID: game.ID}
		bot := NewBotPlayer(game.ID, PlayerO)
		game.Players = []*Player{human, bot}

		// Then: each seat lookup should find its player
		require.Equal(t, human, game.HumanPlayer())
		require.Equal(t, bot, game.BotPlayer())
	})

	t.Run("No bot seated yet", func(t *testing.T) {
		// Given: a game with only a human seat
		game := NewGame("123", DifficultyHard)
		game.Players = []*Player{{ID: "p1", Mark: PlayerX}}

		// Then: the bot seat lookup should come back empty
		assert.Nil(t, game.BotPlayer())
	})
}

func TestNewBotPlayer(t *testing.T) {
	bot := NewBotPlayer("42", PlayerO)

	assert.True(t, bot.IsBot())
	assert.Equal(t, "bot:42", bot.ID)
	assert.Equal(t, PlayerO, bot.Mark)
	assert.Equal(t, "42", bot.GameID)
}
