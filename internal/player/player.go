package player

import (
	"github.com/informaticalaredo/GrowthMaster/internal/advisor"
	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

// Policy picks the actions to select before a round is confirmed.
type Policy interface {
	Name() string
	Choose(state model.GameState, cat *catalog.Catalog, limit int) []string
}

// New returns the policy registered under name, or nil.
func New(name string, plan map[int][]string) Policy {
	switch name {
	case "greedy":
		return &Greedy{}
	case "scripted":
		return &Scripted{Plan: plan}
	case "idle":
		return Idle{}
	default:
		return nil
	}
}

// Greedy attacks the current bottleneck with the cheapest affordable actions.
// Reserve is budget kept untouched after paying for the selection.
type Greedy struct {
	Reserve float64
}

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) Choose(state model.GameState, cat *catalog.Catalog, limit int) []string {
	latest := state.Latest()
	if latest == nil || limit <= 0 {
		return nil
	}
	snap := advisor.SnapshotOf(latest)

	metric := model.MetricSessions
	if st, ok := advisor.Bottleneck(snap); ok {
		metric = st.Metric
	}
	candidates := advisor.Candidates(cat, metric, state.ActiveActions)
	if metric != model.MetricSessions {
		candidates = append(candidates, advisor.Candidates(cat, model.MetricSessions, state.ActiveActions)...)
	}

	seen := model.NewActionSet()
	available := state.Budget - g.Reserve
	var picks []string
	for _, a := range candidates {
		if len(picks) >= limit {
			break
		}
		if seen.Has(a.ID) || a.Cost > available {
			continue
		}
		seen.Add(a.ID)
		available -= a.Cost
		picks = append(picks, a.ID)
	}
	return picks
}

// Scripted replays a fixed plan keyed by round index.
type Scripted struct {
	Plan map[int][]string
}

func (s *Scripted) Name() string { return "scripted" }

func (s *Scripted) Choose(state model.GameState, _ *catalog.Catalog, limit int) []string {
	ids := s.Plan[state.CurrentRound]
	if len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Idle never selects anything; it measures organic growth alone.
type Idle struct{}

func (Idle) Name() string { return "idle" }

func (Idle) Choose(model.GameState, *catalog.Catalog, int) []string { return nil }
