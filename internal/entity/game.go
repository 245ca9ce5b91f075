package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Bot strength levels. Easy plays random cells, medium mixes shallow search
// with occasional random cells, hard searches the full game tree.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Game struct {
	ID         string    `json:"id"`
	Board      [9]string `json:"board"`
	Winner     string    `json:"winner,omitempty"`
	Status     string    `json:"status"`
	Turn       string    `json:"player_turn,omitempty"`
	Difficulty string    `json:"difficulty,omitempty"`
	Players    []*Player `json:"players,omitempty"`
}

func NewGame(id, difficulty string) *Game {
	return &Game{
		ID:         id,
		Board:      [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:       PlayerX,
		Status:     StatusWaiting,
		Difficulty: difficulty,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

// BotPlayer returns the bot seat of the game, or nil if the bot has not been
// seated yet.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

// HumanPlayer returns the human seat of the game, or nil.
func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}
	return nil
}
