package engine

import "github.com/informaticalaredo/GrowthMaster/internal/model"

// roundState is the in-progress state of a single round calculation.
type roundState struct {
	rates     model.Rates
	sessions  float64
	aov       float64
	retention float64
}

// mutators maps each metric to the state variable it multiplies.
// New metrics are added here together with the model.Metric constant.
var mutators = map[model.Metric]func(st *roundState, m float64){
	model.MetricViewRate:     func(st *roundState, m float64) { st.rates.ViewRate *= m },
	model.MetricATCRate:      func(st *roundState, m float64) { st.rates.ATCRate *= m },
	model.MetricCheckoutRate: func(st *roundState, m float64) { st.rates.CheckoutRate *= m },
	model.MetricPurchaseRate: func(st *roundState, m float64) { st.rates.PurchaseRate *= m },
	model.MetricSessions:     func(st *roundState, m float64) { st.sessions *= m },
	model.MetricAOV:          func(st *roundState, m float64) { st.aov *= m },
	model.MetricRetention:    func(st *roundState, m float64) { st.retention *= m },
}

// apply multiplies the targeted variable. Unknown metrics are a no-op.
func (st *roundState) apply(imp model.Impact) {
	if mut, ok := mutators[imp.Metric]; ok {
		mut(st, imp.Multiplier)
	}
}

// KnownMetric reports whether the engine can apply impacts on m.
func KnownMetric(m model.Metric) bool {
	_, ok := mutators[m]
	return ok
}
