package calculator

import (
	"errors"

	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

// Summary aggregates a game history.
type Summary struct {
	Rounds         int
	TotalRevenue   float64
	TotalNetProfit float64
	TotalPurchases int
	BestRound      int // round with the highest net profit
	WorstRound     int
	BaselineCR     float64
	FinalCR        float64
	CRLift         float64 // FinalCR / BaselineCR, 0 when the baseline is 0
	Events         int
	InitialBudget  float64
	FinalBudget    float64
}

// Summarize computes totals over history. Round 0 is the baseline and is
// excluded from the totals and the best/worst ranking, matching the budget
// which it never changes.
func Summarize(history []model.RoundResult, initialBudget, finalBudget float64) (Summary, error) {
	if len(history) == 0 {
		return Summary{}, errors.New("empty history")
	}
	// Best and worst only rank played weeks; a bare baseline ranks itself.
	first := history[0]
	if len(history) > 1 {
		first = history[1]
	}
	s := Summary{
		Rounds:        len(history) - 1,
		BaselineCR:    history[0].Rates.CRTotal,
		FinalCR:       history[len(history)-1].Rates.CRTotal,
		BestRound:     first.Round,
		WorstRound:    first.Round,
		InitialBudget: initialBudget,
		FinalBudget:   finalBudget,
	}
	best, worst := first.Financials.NetProfit, first.Financials.NetProfit
	for i, r := range history {
		if r.Event != nil {
			s.Events++
		}
		if i == 0 {
			continue
		}
		if r.Financials.NetProfit > best {
			best, s.BestRound = r.Financials.NetProfit, r.Round
		}
		if r.Financials.NetProfit < worst {
			worst, s.WorstRound = r.Financials.NetProfit, r.Round
		}
		s.TotalRevenue += r.Financials.Revenue
		s.TotalNetProfit += r.Financials.NetProfit
		s.TotalPurchases += r.Metrics.Purchases
	}
	if s.BaselineCR > 0 {
		s.CRLift = s.FinalCR / s.BaselineCR
	}
	return s, nil
}
