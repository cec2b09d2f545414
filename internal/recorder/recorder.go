package recorder

import "github.com/informaticalaredo/GrowthMaster/internal/model"

// RoundSnapshot holds one simulated round and the budget after it.
type RoundSnapshot struct {
	GameID string
	Result *model.RoundResult
	Budget float64
}

// GameEvent records a finished game.
type GameEvent struct {
	GameID         string
	Policy         string // "manual" for interactive play
	Rounds         int
	InitialBudget  float64
	FinalBudget    float64
	TotalNetProfit float64
	FinalCR        float64
	Events         int
}

// BatchEvent records the outcome distribution of a batch run.
type BatchEvent struct {
	RunID      string
	Policy     string
	Games      int
	Seed       uint64
	MeanBudget float64
	P10Budget  float64
	P50Budget  float64
	P90Budget  float64
	MeanCR     float64
}

// Recorder keeps an append-only log of simulation output for analysis.
type Recorder interface {
	RecordRound(snap *RoundSnapshot) error
	RecordGame(evt *GameEvent) error
	RecordBatch(evt *BatchEvent) error
	Close() error
}
