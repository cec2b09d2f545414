package model

// Rates holds the four stage conversion probabilities plus the derived overall rate.
type Rates struct {
	ViewRate     float64 `json:"view_rate" yaml:"view_rate"`
	ATCRate      float64 `json:"atc_rate" yaml:"atc_rate"`
	CheckoutRate float64 `json:"checkout_rate" yaml:"checkout_rate"`
	PurchaseRate float64 `json:"purchase_rate" yaml:"purchase_rate"`
	CRTotal      float64 `json:"cr_total" yaml:"cr_total"` // purchases / sessions, display only
}

// FunnelMetrics holds the absolute volume at each funnel stage.
type FunnelMetrics struct {
	Sessions      int `json:"sessions"`
	ProductViews  int `json:"product_views"`
	AddToCart     int `json:"add_to_cart"`
	CheckoutStart int `json:"checkout_start"`
	Purchases     int `json:"purchases"`
}

// Financials are derived from the funnel and the cost structure of a round.
type Financials struct {
	Revenue     float64 `json:"revenue"`
	GrossProfit float64 `json:"gross_profit"`
	NetProfit   float64 `json:"net_profit"`
	CAC         float64 `json:"cac"`
	ROI         float64 `json:"roi"`
	TotalCosts  float64 `json:"total_costs"`
}

// Economics are the fixed numeric constants of a simulation.
type Economics struct {
	BaseSessions     float64 `yaml:"base_sessions"`
	InitialAOV       float64 `yaml:"initial_aov"`
	Margin           float64 `yaml:"margin"`
	FixedCosts       float64 `yaml:"fixed_costs"`
	AdsCostPerRound  float64 `yaml:"ads_cost_per_round"`
	OrganicGrowth    float64 `yaml:"organic_growth"`   // linear, per round index
	MaintenanceRate  float64 `yaml:"maintenance_rate"` // share of cost charged each round for recurring actions
	EventProbability float64 `yaml:"event_probability"`
}
