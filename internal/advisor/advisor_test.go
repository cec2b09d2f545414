package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/engine"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

type stubAdvisor struct {
	text string
	err  error
}

func (s stubAdvisor) Advise(context.Context, Snapshot) (string, error) { return s.text, s.err }

func TestAdviseOrFallback(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		a    Advisor
		want string
	}{
		{"ok", stubAdvisor{text: "do X"}, "do X"},
		{"error", stubAdvisor{err: errors.New("boom")}, FallbackAdvice},
		{"blank", stubAdvisor{text: "  \n"}, EmptyAdvice},
	}
	for _, tt := range tests {
		if got := AdviseOrFallback(ctx, tt.a, Snapshot{}); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestBottleneck_Baseline(t *testing.T) {
	r := engine.New(catalog.DefaultEconomics(), catalog.Default(), engine.NoEvent()).CalculateRound(0, nil, nil)
	st, ok := Bottleneck(SnapshotOf(&r))
	if !ok {
		t.Fatal("expected a bottleneck")
	}
	// atc 0.12/0.35 leaves the most headroom at baseline.
	if st.Metric != model.MetricATCRate {
		t.Errorf("expected add to cart bottleneck, got %s", st.Name)
	}
}

func TestBottleneck_AllCapped(t *testing.T) {
	c := engine.RateCeilings
	s := Snapshot{ViewRate: c.ViewRate, ATCRate: c.ATCRate, CheckoutRate: c.CheckoutRate, PurchaseRate: c.PurchaseRate}
	if _, ok := Bottleneck(s); ok {
		t.Error("expected no bottleneck when every stage is capped")
	}
}

func TestCandidates_CheapestFirstSkippingActive(t *testing.T) {
	got := Candidates(catalog.Default(), model.MetricPurchaseRate, []string{"trust_badges"})
	if len(got) == 0 {
		t.Fatal("expected candidates")
	}
	for i, a := range got {
		if a.ID == "trust_badges" {
			t.Error("active action must be skipped")
		}
		if i > 0 && got[i-1].Cost > a.Cost {
			t.Errorf("not sorted by cost at %d", i)
		}
	}
	if got[0].ID != "abandoned_cart_email" {
		t.Errorf("expected abandoned_cart_email first, got %s", got[0].ID)
	}
}

func TestRuleAdvisor_Advise(t *testing.T) {
	r := engine.New(catalog.DefaultEconomics(), catalog.Default(), engine.NoEvent()).CalculateRound(0, nil, nil)
	text, err := NewRuleAdvisor(nil).Advise(context.Background(), SnapshotOf(&r))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "add to cart") {
		t.Errorf("expected bottleneck in advice, got %q", text)
	}
	if strings.Count(text, "\n- ") != 2 {
		t.Errorf("expected 2 tactics, got %q", text)
	}
	if !strings.Contains(text, "negative") {
		t.Errorf("expected negative profit hint, got %q", text)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRuleAdvisor(nil).Advise(ctx, SnapshotOf(&r)); err == nil {
		t.Error("expected error on cancelled context")
	}
}
