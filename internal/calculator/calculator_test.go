package calculator

import (
	"math"
	"testing"

	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

func round(n int, purchases, sessions int, revenue, net float64, event bool) model.RoundResult {
	r := model.RoundResult{
		Round:      n,
		Metrics:    model.FunnelMetrics{Sessions: sessions, Purchases: purchases},
		Rates:      model.Rates{CRTotal: float64(purchases) / float64(sessions)},
		Financials: model.Financials{Revenue: revenue, NetProfit: net},
	}
	if event {
		r.Event = &model.RandomEvent{ID: "x"}
	}
	return r
}

func TestSummarize(t *testing.T) {
	history := []model.RoundResult{
		round(0, 76, 10000, 4940, -1789, false),
		round(1, 84, 10200, 5460, -3451, true),
		round(2, 120, 10400, 7800, 500, false),
	}
	s, err := Summarize(history, 25000, 20049)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Rounds != 2 {
		t.Errorf("expected 2 rounds, got %d", s.Rounds)
	}
	if s.TotalRevenue != 5460+7800 || s.TotalPurchases != 204 {
		t.Errorf("unexpected totals: revenue=%.0f purchases=%d", s.TotalRevenue, s.TotalPurchases)
	}
	if s.TotalNetProfit != -2951 {
		t.Errorf("expected net -2951, got %.0f", s.TotalNetProfit)
	}
	if s.BestRound != 2 || s.WorstRound != 1 {
		t.Errorf("best=%d worst=%d", s.BestRound, s.WorstRound)
	}
	if s.Events != 1 {
		t.Errorf("expected 1 event, got %d", s.Events)
	}
	wantLift := (120.0 / 10400) / (76.0 / 10000)
	if math.Abs(s.CRLift-wantLift) > 1e-9 {
		t.Errorf("expected lift %.4f, got %.4f", wantLift, s.CRLift)
	}
}

func TestSummarize_BestWorstSkipBaseline(t *testing.T) {
	history := []model.RoundResult{
		round(0, 76, 10000, 4940, -1789, false),
		round(1, 90, 10200, 5850, -500, false),
		round(2, 110, 10400, 7150, 800, false),
	}
	s, err := Summarize(history, 25000, 25300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BestRound != 2 || s.WorstRound != 1 {
		t.Errorf("expected best=2 worst=1, got best=%d worst=%d", s.BestRound, s.WorstRound)
	}

	s, err = Summarize(history[:1], 25000, 25000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BestRound != 0 || s.WorstRound != 0 || s.Rounds != 0 {
		t.Errorf("baseline only: best=%d worst=%d rounds=%d", s.BestRound, s.WorstRound, s.Rounds)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if _, err := Summarize(nil, 0, 0); err == nil {
		t.Error("expected error for empty history")
	}
}

func TestStats(t *testing.T) {
	values := []float64{4, 1, 3, 2, 5}
	if m, _ := Mean(values); m != 3 {
		t.Errorf("mean: expected 3, got %.2f", m)
	}
	if sd, _ := StdDev(values); math.Abs(sd-math.Sqrt(2)) > 1e-9 {
		t.Errorf("stddev: expected sqrt(2), got %.4f", sd)
	}
	tests := []struct {
		p, want float64
	}{
		{0, 1}, {50, 3}, {100, 5}, {25, 2}, {90, 4.6},
	}
	for _, tt := range tests {
		got, err := Percentile(values, tt.p)
		if err != nil {
			t.Fatalf("p%.0f: %v", tt.p, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("p%.0f: expected %.2f, got %.2f", tt.p, tt.want, got)
		}
	}
	if values[0] != 4 {
		t.Error("Percentile must not sort its input")
	}
	if _, err := Percentile(values, 101); err == nil {
		t.Error("expected error for p > 100")
	}
	if _, err := Mean(nil); err == nil {
		t.Error("expected error for empty mean")
	}
}
