package model

// GameStatus is the state of a game: intro -> playing -> ended.
type GameStatus string

const (
	StatusIntro   GameStatus = "intro"
	StatusPlaying GameStatus = "playing"
	StatusEnded   GameStatus = "ended"
)

// GameState is a read-only view of a game in progress.
type GameState struct {
	ID            string        `json:"id"`
	Status        GameStatus    `json:"status"`
	CurrentRound  int           `json:"current_round"`
	MaxRounds     int           `json:"max_rounds"`
	Budget        float64       `json:"budget"`
	ActiveActions []string      `json:"active_actions"`
	Selected      []string      `json:"selected"`
	History       []RoundResult `json:"history"`
}

// Latest returns the most recent round, or nil before the game starts.
func (s *GameState) Latest() *RoundResult {
	if len(s.History) == 0 {
		return nil
	}
	return &s.History[len(s.History)-1]
}
