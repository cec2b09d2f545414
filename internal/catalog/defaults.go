package catalog

import "github.com/informaticalaredo/GrowthMaster/internal/model"

// Game-level constants.
const (
	MaxRounds      = 8
	InitialBudget  = 25000.0
	SelectionLimit = 3
)

// DefaultEconomics returns the baseline constants of the simulation.
func DefaultEconomics() model.Economics {
	return model.Economics{
		BaseSessions:     10000,
		InitialAOV:       65,
		Margin:           0.65,
		FixedCosts:       2000,
		AdsCostPerRound:  3000,
		OrganicGrowth:    0.02,
		MaintenanceRate:  0.20,
		EventProbability: 0.20,
	}
}

var defaultActions = []model.Action{
	// TOFU
	{
		ID:          "seo_opt",
		Name:        "SEO Optimization (Titles/Meta)",
		Description: "Improves long-term organic visibility.",
		Category:    model.CategoryTOFU,
		Cost:        1500,
		Impacts:     []model.Impact{{Metric: model.MetricSessions, Multiplier: 1.05}},
	},
	{
		ID:          "landing_page",
		Name:        "Dedicated Landing Page",
		Description: "A landing page focused on the flagship product.",
		Category:    model.CategoryTOFU,
		Cost:        2000,
		Impacts:     []model.Impact{{Metric: model.MetricViewRate, Multiplier: 1.08}},
		OneTime:     true,
	},
	{
		ID:          "value_prop",
		Name:        "Clear Value Proposition",
		Description: "Hero section redesign and benefit bullets.",
		Category:    model.CategoryTOFU,
		Cost:        800,
		Impacts:     []model.Impact{{Metric: model.MetricViewRate, Multiplier: 1.05}},
		OneTime:     true,
	},
	// MOFU
	{
		ID:          "media_quality",
		Name:        "HD Photos and Video",
		Description: "Professional visual content for the catalog.",
		Category:    model.CategoryMOFU,
		Cost:        2500,
		Impacts:     []model.Impact{{Metric: model.MetricATCRate, Multiplier: 1.06}},
		OneTime:     true,
	},
	{
		ID:          "reviews",
		Name:        "Verified Reviews",
		Description: "Social proof and star ratings.",
		Category:    model.CategoryMOFU,
		Cost:        1200,
		Impacts: []model.Impact{
			{Metric: model.MetricATCRate, Multiplier: 1.04},
			{Metric: model.MetricPurchaseRate, Multiplier: 1.03},
		},
		OneTime: true,
	},
	{
		ID:          "chat_support",
		Name:        "Chat/WhatsApp Support",
		Description: "Answers pre-sale questions in real time.",
		Category:    model.CategoryMOFU,
		Cost:        1500,
		Impacts:     []model.Impact{{Metric: model.MetricCheckoutRate, Multiplier: 1.03}},
	},
	// BOFU
	{
		ID:          "one_page_checkout",
		Name:        "One-Page Checkout",
		Description: "Removes unnecessary steps from payment.",
		Category:    model.CategoryBOFU,
		Cost:        3000,
		Impacts:     []model.Impact{{Metric: model.MetricPurchaseRate, Multiplier: 1.08}},
		OneTime:     true,
	},
	{
		ID:          "guest_checkout",
		Name:        "Guest Checkout",
		Description: "Removes mandatory sign-up friction.",
		Category:    model.CategoryBOFU,
		Cost:        1000,
		Impacts:     []model.Impact{{Metric: model.MetricPurchaseRate, Multiplier: 1.05}},
		OneTime:     true,
	},
	{
		ID:          "trust_badges",
		Name:        "Trust Badges",
		Description: "Security seals, guarantees and return policy.",
		Category:    model.CategoryBOFU,
		Cost:        500,
		Impacts:     []model.Impact{{Metric: model.MetricPurchaseRate, Multiplier: 1.04}},
		OneTime:     true,
	},
	{
		ID:          "free_shipping_threshold",
		Name:        "Free Shipping Over $X",
		Description: "Raises the average ticket but cuts margin.",
		Category:    model.CategoryBOFU,
		Cost:        1000,
		Impacts: []model.Impact{
			{Metric: model.MetricCheckoutRate, Multiplier: 1.06},
			{Metric: model.MetricAOV, Multiplier: 1.12},
		},
	},
	// RECOVERY
	{
		ID:          "abandoned_cart_email",
		Name:        "Abandoned Cart Email",
		Description: "Automation that recovers users who did not finish.",
		Category:    model.CategoryRecovery,
		Cost:        800,
		Impacts:     []model.Impact{{Metric: model.MetricPurchaseRate, Multiplier: 1.10}},
	},
	{
		ID:          "remarketing_ads",
		Name:        "Remarketing Campaigns",
		Description: "Follows interested users on social networks.",
		Category:    model.CategoryRecovery,
		Cost:        2000,
		Impacts:     []model.Impact{{Metric: model.MetricSessions, Multiplier: 1.10}},
	},
	// RETENTION
	{
		ID:          "loyalty_program",
		Name:        "Loyalty Program",
		Description: "Points system for repeat purchases.",
		Category:    model.CategoryRetention,
		Cost:        1500,
		Impacts:     []model.Impact{{Metric: model.MetricRetention, Multiplier: 1.08}},
		OneTime:     true,
	},
	{
		ID:          "post_sale_followup",
		Name:        "Post-Sale Follow-Up",
		Description: "Raises satisfaction and reduces returns.",
		Category:    model.CategoryRetention,
		Cost:        600,
		Impacts:     []model.Impact{{Metric: model.MetricRetention, Multiplier: 1.05}},
	},
}
