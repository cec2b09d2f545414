package model

import "sort"

// Metric names a state variable an impact multiplies.
type Metric string

const (
	MetricViewRate     Metric = "viewRate"
	MetricATCRate      Metric = "atcRate"
	MetricCheckoutRate Metric = "checkoutRate"
	MetricPurchaseRate Metric = "purchaseRate"
	MetricSessions     Metric = "sessions"
	MetricAOV          Metric = "aov"
	MetricRetention    Metric = "retention"
)

// Category groups actions by the funnel stage they target.
type Category string

const (
	CategoryTOFU      Category = "TOFU"
	CategoryMOFU      Category = "MOFU"
	CategoryBOFU      Category = "BOFU"
	CategoryRecovery  Category = "RECOVERY"
	CategoryRetention Category = "RETENTION"
)

// Label returns the display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryTOFU:
		return "Acquisition (TOFU)"
	case CategoryMOFU:
		return "Consideration (MOFU)"
	case CategoryBOFU:
		return "Conversion (BOFU)"
	case CategoryRecovery:
		return "Recovery"
	case CategoryRetention:
		return "Retention"
	default:
		return string(c)
	}
}

// Impact multiplies one metric.
type Impact struct {
	Metric     Metric  `json:"metric" yaml:"metric"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// Action is an immutable catalog entry the player can activate.
type Action struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	Cost        float64  `json:"cost" yaml:"cost"`
	Impacts     []Impact `json:"impacts" yaml:"impacts"`
	OneTime     bool     `json:"one_time" yaml:"one_time"`
}

// ActionSet is a set of action ids.
type ActionSet map[string]struct{}

// NewActionSet builds a set from ids. Duplicates collapse.
func NewActionSet(ids ...string) ActionSet {
	s := make(ActionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s ActionSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s ActionSet) Add(id string) { s[id] = struct{}{} }

func (s ActionSet) Remove(id string) { delete(s, id) }

// Clone returns an independent copy.
func (s ActionSet) Clone() ActionSet {
	c := make(ActionSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Sorted returns the ids in lexical order.
func (s ActionSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
