package catalog

import "github.com/informaticalaredo/GrowthMaster/internal/model"

var events = []model.RandomEvent{
	{
		ID:          "competitor_pricing",
		Title:       "Competitor cuts prices",
		Description: "A direct rival launched an aggressive offer. -5% AOV to compete.",
		Polarity:    model.PolarityNegative,
		Effect:      model.Impact{Metric: model.MetricAOV, Multiplier: 0.95},
	},
	{
		ID:          "logistics_strike",
		Title:       "Logistics problem",
		Description: "A carrier strike hurts confidence. -4% purchase rate.",
		Polarity:    model.PolarityNegative,
		Effect:      model.Impact{Metric: model.MetricPurchaseRate, Multiplier: 0.96},
	},
	{
		ID:          "influencer_mention",
		Title:       "Influencer mention",
		Description: "A micro-influencer recommended us. +25% extra traffic this week.",
		Polarity:    model.PolarityPositive,
		Effect:      model.Impact{Metric: model.MetricSessions, Multiplier: 1.25},
	},
	{
		ID:          "server_outage",
		Title:       "Server outage",
		Description: "The site was slow for 4 hours. -10% checkout rate.",
		Polarity:    model.PolarityNegative,
		Effect:      model.Impact{Metric: model.MetricCheckoutRate, Multiplier: 0.90},
	},
}

// Events returns a copy of the random event table.
func Events() []model.RandomEvent {
	out := make([]model.RandomEvent, len(events))
	copy(out, events)
	return out
}
