package report

import (
	"strings"
	"testing"

	"github.com/informaticalaredo/GrowthMaster/internal/batch"
	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/engine"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{25000, "$25,000"},
		{-1789, "-$1,789"},
		{0, "$0"},
		{3210.6, "$3,211"},
	}
	for _, tt := range tests {
		if got := Money(tt.v); got != tt.want {
			t.Errorf("Money(%v): expected %q, got %q", tt.v, tt.want, got)
		}
	}
}

func TestFormatRound(t *testing.T) {
	r := engine.New(catalog.DefaultEconomics(), catalog.Default(), engine.Sequence(0.1, 0.6)).CalculateRound(0, nil, nil)
	out := FormatRound(&r, 25000)
	for _, want := range []string{"Week 0", "12,500", "Influencer mention", "[+]", "$25,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestFormatCatalog_Marks(t *testing.T) {
	out := FormatCatalog(catalog.Default(), []string{"seo_opt"}, []string{"reviews"})
	if !strings.Contains(out, "[*] seo_opt") || !strings.Contains(out, "[+] reviews") {
		t.Errorf("missing marks:\n%s", out)
	}
	if strings.Count(out, "(TOFU)") != 1 {
		t.Errorf("expected one TOFU header:\n%s", out)
	}
}

func TestFormatStatus(t *testing.T) {
	out := FormatStatus(model.GameState{ID: "g", Status: model.StatusPlaying, CurrentRound: 2, MaxRounds: 8})
	if !strings.Contains(out, "Week 2 of 8") || !strings.Contains(out, "Active: -") {
		t.Errorf("unexpected status:\n%s", out)
	}
}

func TestFormatBatch(t *testing.T) {
	out := FormatBatch(&batch.Outcome{RunID: "r", Policy: "greedy", Games: 1000, MeanBudget: 12345, Bankrupt: 250})
	for _, want := range []string{"1,000", "$12,345", "25.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}
