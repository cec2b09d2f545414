package player

import (
	"reflect"
	"testing"

	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/engine"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

func baselineState(budget float64) model.GameState {
	r := engine.New(catalog.DefaultEconomics(), catalog.Default(), engine.NoEvent()).CalculateRound(0, nil, nil)
	return model.GameState{
		Status:       model.StatusPlaying,
		CurrentRound: 1,
		Budget:       budget,
		History:      []model.RoundResult{r},
	}
}

func TestGreedy_TargetsBottleneck(t *testing.T) {
	picks := (&Greedy{}).Choose(baselineState(25000), catalog.Default(), 3)
	if len(picks) != 3 {
		t.Fatalf("expected 3 picks, got %v", picks)
	}
	// add-to-cart is the baseline bottleneck; reviews is its cheapest lever.
	if picks[0] != "reviews" || picks[1] != "media_quality" {
		t.Errorf("unexpected picks: %v", picks)
	}
}

func TestGreedy_RespectsBudget(t *testing.T) {
	picks := (&Greedy{Reserve: 500}).Choose(baselineState(2000), catalog.Default(), 3)
	var total float64
	cat := catalog.Default()
	for _, id := range picks {
		a, _ := cat.Lookup(id)
		total += a.Cost
	}
	if total > 1500 {
		t.Errorf("spent %.0f over available 1500: %v", total, picks)
	}
	if got := (&Greedy{}).Choose(baselineState(0), cat, 3); len(got) != 0 {
		t.Errorf("expected no picks without budget, got %v", got)
	}
}

func TestGreedy_NoHistory(t *testing.T) {
	if got := (&Greedy{}).Choose(model.GameState{Budget: 1e6}, catalog.Default(), 3); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestScripted(t *testing.T) {
	s := &Scripted{Plan: map[int][]string{1: {"a", "b", "c", "d"}, 2: {"e"}}}
	st := model.GameState{CurrentRound: 1}
	if got := s.Choose(st, nil, 3); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("expected plan truncated to limit, got %v", got)
	}
	st.CurrentRound = 3
	if got := s.Choose(st, nil, 3); len(got) != 0 {
		t.Errorf("expected no picks for unplanned round, got %v", got)
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"greedy", "scripted", "idle"} {
		if New(name, nil) == nil {
			t.Errorf("policy %s not registered", name)
		}
	}
	if New("random", nil) != nil {
		t.Error("expected nil for unknown policy")
	}
}
