package engine

import (
	"math"

	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

// BaselineRates seed round 0 when no previous result exists.
var BaselineRates = model.Rates{
	ViewRate:     0.65,
	ATCRate:      0.12,
	CheckoutRate: 0.35,
	PurchaseRate: 0.28,
}

// RateCeilings are the upper bounds every stage rate is clamped to.
var RateCeilings = model.Rates{
	ViewRate:     0.95,
	ATCRate:      0.35,
	CheckoutRate: 0.70,
	PurchaseRate: 0.60,
}

// Engine advances the funnel by one round. It holds no per-game state; the
// only mutable part is the random source, so an Engine built with a seeded
// source must not be shared between goroutines.
type Engine struct {
	econ    model.Economics
	catalog *catalog.Catalog
	events  []model.RandomEvent
	rnd     RandFunc
}

// New creates an Engine. A nil rnd uses the global unseeded source.
func New(econ model.Economics, cat *catalog.Catalog, rnd RandFunc) *Engine {
	if cat == nil {
		cat = catalog.Default()
	}
	if rnd == nil {
		rnd = Unseeded()
	}
	return &Engine{econ: econ, catalog: cat, events: catalog.Events(), rnd: rnd}
}

// Default returns an Engine over the built-in catalog and constants.
func Default() *Engine {
	return New(catalog.DefaultEconomics(), catalog.Default(), nil)
}

// Catalog returns the catalog the engine resolves action ids against.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Economics returns the constants the engine computes with.
func (e *Engine) Economics() model.Economics { return e.econ }

// CalculateRound computes the result of round given the cumulative active
// action set and the previous round's result (nil for round 0).
func (e *Engine) CalculateRound(round int, active model.ActionSet, prev *model.RoundResult) model.RoundResult {
	// Rates carry over from the previous round
	st := &roundState{
		rates:     BaselineRates,
		sessions:  e.econ.BaseSessions * (1 + float64(round)*e.econ.OrganicGrowth),
		aov:       e.econ.InitialAOV,
		retention: 1.0,
	}
	if prev != nil {
		st.rates = prev.Rates
	}

	actions := e.catalog.Filter(active)
	for _, a := range actions {
		for _, imp := range a.Impacts {
			st.apply(imp)
		}
	}

	// Event effect lands on top of the interventions
	event := e.drawEvent()
	if event != nil {
		st.apply(event.Effect)
	}

	// Clamp before any funnel math
	st.rates = Clamp(st.rates)

	// Funnel volumes, rounded at every stage
	metrics := funnel(st)

	rates := st.rates
	if metrics.Sessions > 0 {
		rates.CRTotal = float64(metrics.Purchases) / float64(metrics.Sessions)
	} else {
		rates.CRTotal = 0
	}

	fin := e.financials(metrics, st.aov, actions, NewlyActivated(active, prev))

	return model.RoundResult{
		Round:        round,
		Metrics:      metrics,
		Rates:        rates,
		Financials:   fin,
		ActionsTaken: active.Sorted(),
		Event:        event,
	}
}

// Clamp caps each stage rate at its ceiling. CRTotal is left untouched.
func Clamp(r model.Rates) model.Rates {
	r.ViewRate = math.Min(RateCeilings.ViewRate, r.ViewRate)
	r.ATCRate = math.Min(RateCeilings.ATCRate, r.ATCRate)
	r.CheckoutRate = math.Min(RateCeilings.CheckoutRate, r.CheckoutRate)
	r.PurchaseRate = math.Min(RateCeilings.PurchaseRate, r.PurchaseRate)
	return r
}

func funnel(st *roundState) model.FunnelMetrics {
	productViews := math.Round(st.sessions * st.rates.ViewRate)
	addToCart := math.Round(productViews * st.rates.ATCRate)
	checkoutStart := math.Round(addToCart * st.rates.CheckoutRate)
	basePurchases := math.Round(checkoutStart * st.rates.PurchaseRate)
	purchases := math.Round(basePurchases * st.retention)

	return model.FunnelMetrics{
		Sessions:      int(math.Round(st.sessions)),
		ProductViews:  int(productViews),
		AddToCart:     int(addToCart),
		CheckoutStart: int(checkoutStart),
		Purchases:     int(purchases),
	}
}

func (e *Engine) drawEvent() *model.RandomEvent {
	if len(e.events) == 0 || e.rnd() >= e.econ.EventProbability {
		return nil
	}
	i := int(e.rnd() * float64(len(e.events)))
	if i < 0 {
		i = 0
	}
	if i >= len(e.events) {
		i = len(e.events) - 1
	}
	ev := e.events[i]
	return &ev
}
