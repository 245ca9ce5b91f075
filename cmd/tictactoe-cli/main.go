package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/internal/service"
	"github.com/playgrid/tictactoe-backend/internal/tictactoe"
)

// main - plays a console game against the bot, no server required.
func main() {
	difficulty := flag.String("difficulty", entity.DifficultyHard, "bot difficulty: easy, medium or hard")
	botFirst := flag.Bool("bot-first", false, "give the bot X so it opens the game")
	flag.Parse()

	if err := run(*difficulty, *botFirst); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(difficulty string, botFirst bool) error {
	switch difficulty {
	case entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard:
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownDifficulty, difficulty)
	}

	humanMark := entity.PlayerX
	if botFirst {
		humanMark = entity.PlayerO
	}

	game := entity.NewGame("local", difficulty)
	human := &entity.Player{ID: "human", Mark: humanMark, GameID: game.ID}
	bot := entity.NewBotPlayer(game.ID, tictactoe.ToggleMark(humanMark))
	game.Players = []*entity.Player{human, bot}
	game.Status = entity.StatusOngoing

	botService := service.NewBotService()

	// X opens: when the bot holds X it moves before the first prompt.
	if bot.Mark == entity.PlayerX {
		if err := botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to open: %w", err)
		}
	}

	reader := bufio.NewReader(os.Stdin)
	render(game)

	for game.IsOngoing() {
		cell, err := promptCell(reader, humanMark)
		if err != nil {
			return err
		}

		if err = tictactoe.MakeTurn(game, humanMark, cell); err != nil {
			fmt.Println("invalid move, try again:", err)
			continue
		}

		if game.IsOngoing() {
			if err = botService.MakeTurn(game); err != nil {
				return fmt.Errorf("bot failed to move: %w", err)
			}
		}

		render(game)
	}

	switch game.Winner {
	case entity.PlayerTie:
		fmt.Println("Draw.")
	case humanMark:
		fmt.Println("You win!")
	default:
		fmt.Println("Bot wins.")
	}

	return nil
}

// promptCell re-prompts until the input parses as a cell index. Legality
// against the board is checked by MakeTurn, not here.
func promptCell(reader *bufio.Reader, mark string) (int, error) {
	for {
		fmt.Printf("your move as %s (0-8): ", mark)

		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, errors.New("input closed")
			}
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		cell, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("enter a number between 0 and 8")
			continue
		}

		return cell, nil
	}
}

// render prints the grid, showing the cell index on free cells.
func render(game *entity.Game) {
	fmt.Println()
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			i := row*3 + col
			cell := game.Board[i]
			if cell == entity.EmptyCell {
				cell = strconv.Itoa(i)
			}
			cells = append(cells, cell)
		}
		fmt.Println(" " + strings.Join(cells, " | "))
		if row < 2 {
			fmt.Println("---+---+---")
		}
	}
	fmt.Println()
}
