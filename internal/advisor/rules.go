package advisor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/engine"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

// Stage is a funnel step with its rate and ceiling.
type Stage struct {
	Name    string
	Metric  model.Metric
	Rate    float64
	Ceiling float64
}

// Headroom is the share of the ceiling not yet reached.
func (s Stage) Headroom() float64 {
	if s.Ceiling == 0 {
		return 0
	}
	return 1 - s.Rate/s.Ceiling
}

// Stages lists the four funnel steps of a snapshot in funnel order.
func Stages(s Snapshot) []Stage {
	c := engine.RateCeilings
	return []Stage{
		{"product view", model.MetricViewRate, s.ViewRate, c.ViewRate},
		{"add to cart", model.MetricATCRate, s.ATCRate, c.ATCRate},
		{"checkout", model.MetricCheckoutRate, s.CheckoutRate, c.CheckoutRate},
		{"purchase", model.MetricPurchaseRate, s.PurchaseRate, c.PurchaseRate},
	}
}

// Bottleneck returns the stage furthest from its ceiling. ok is false when
// every stage is already capped.
func Bottleneck(s Snapshot) (Stage, bool) {
	var best Stage
	found := false
	for _, st := range Stages(s) {
		if st.Headroom() <= 0 {
			continue
		}
		if !found || st.Headroom() > best.Headroom() {
			best, found = st, true
		}
	}
	return best, found
}

// Candidates returns inactive catalog actions that multiply metric, cheapest first.
func Candidates(cat *catalog.Catalog, metric model.Metric, active []string) []model.Action {
	taken := model.NewActionSet(active...)
	var out []model.Action
	for _, a := range cat.Actions() {
		if taken.Has(a.ID) {
			continue
		}
		for _, imp := range a.Impacts {
			if imp.Metric == metric && imp.Multiplier > 1 {
				out = append(out, a)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	return out
}

// RuleAdvisor names the funnel bottleneck and suggests up to two tactics from
// the catalog. It works offline and never fails.
type RuleAdvisor struct {
	Catalog *catalog.Catalog
}

func NewRuleAdvisor(cat *catalog.Catalog) *RuleAdvisor {
	if cat == nil {
		cat = catalog.Default()
	}
	return &RuleAdvisor{Catalog: cat}
}

func (r *RuleAdvisor) Advise(ctx context.Context, s Snapshot) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var b strings.Builder

	metric := model.MetricSessions
	if st, ok := Bottleneck(s); ok {
		b.WriteString(fmt.Sprintf("Biggest bottleneck: %s at %.1f%% (ceiling %.0f%%).", st.Name, st.Rate*100, st.Ceiling*100))
		metric = st.Metric
	} else {
		b.WriteString("Every stage is at its ceiling; only traffic can still grow.")
	}

	tactics := Candidates(r.Catalog, metric, s.ActiveActions)
	if len(tactics) == 0 && metric != model.MetricSessions {
		tactics = Candidates(r.Catalog, model.MetricSessions, s.ActiveActions)
	}
	if len(tactics) > 2 {
		tactics = tactics[:2]
	}
	for _, a := range tactics {
		b.WriteString(fmt.Sprintf("\n- %s (%s, $%.0f)", a.Name, a.Category.Label(), a.Cost))
	}
	if s.NetProfit < 0 {
		b.WriteString(fmt.Sprintf("\nNet profit is negative ($%.0f); favor one-time actions to avoid maintenance fees.", s.NetProfit))
	}
	return b.String(), nil
}
