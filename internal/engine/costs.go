package engine

import "github.com/informaticalaredo/GrowthMaster/internal/model"

// NewlyActivated returns active minus the actions already taken in prev.
// With no previous round every active id is new.
func NewlyActivated(active model.ActionSet, prev *model.RoundResult) model.ActionSet {
	newly := active.Clone()
	if prev == nil {
		return newly
	}
	for _, id := range prev.ActionsTaken {
		newly.Remove(id)
	}
	return newly
}

// financials derives the money side of a round.
// Recurring actions pay MaintenanceRate of their cost every round; one-time
// actions pay their full cost only on the round they are first activated.
func (e *Engine) financials(m model.FunnelMetrics, aov float64, actions []model.Action, newly model.ActionSet) model.Financials {
	revenue := float64(m.Purchases) * aov
	grossProfit := revenue * e.econ.Margin

	var maintenance, oneTime float64
	for _, a := range actions {
		switch {
		case !a.OneTime:
			maintenance += a.Cost * e.econ.MaintenanceRate
		case newly.Has(a.ID):
			oneTime += a.Cost
		}
	}

	ads := e.econ.AdsCostPerRound
	totalCosts := e.econ.FixedCosts + ads + maintenance + oneTime

	purchases := m.Purchases
	if purchases < 1 {
		purchases = 1
	}

	return model.Financials{
		Revenue:     revenue,
		GrossProfit: grossProfit,
		NetProfit:   grossProfit - totalCosts,
		CAC:         ads / float64(purchases),
		ROI:         (grossProfit - ads) / ads,
		TotalCosts:  totalCosts,
	}
}
