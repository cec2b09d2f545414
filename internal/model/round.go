package model

// Polarity tells whether an event helps or hurts.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityNeutral  Polarity = "neutral"
)

// RandomEvent is a one-round perturbation drawn by the engine.
type RandomEvent struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Polarity    Polarity `json:"polarity"`
	Effect      Impact   `json:"effect"`
}

// RoundResult is the immutable snapshot of one simulated round.
type RoundResult struct {
	Round        int           `json:"round"`
	Metrics      FunnelMetrics `json:"metrics"`
	Rates        Rates         `json:"rates"`
	Financials   Financials    `json:"financials"`
	ActionsTaken []string      `json:"actions_taken"`
	Event        *RandomEvent  `json:"event,omitempty"`
}

// HasEvent reports whether an event fired this round.
func (r *RoundResult) HasEvent() bool { return r.Event != nil }
