package advisor

import (
	"context"
	"log"
	"strings"

	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

// Fallback texts returned instead of advice.
const (
	FallbackAdvice = "Could not reach the strategy advisor."
	EmptyAdvice    = "No advice could be generated. Keep optimizing!"
)

// Snapshot is the read-only view of a round an advisor works from.
type Snapshot struct {
	Round         int
	Sessions      int
	ViewRate      float64
	ATCRate       float64
	CheckoutRate  float64
	PurchaseRate  float64
	NetProfit     float64
	CAC           float64
	ActiveActions []string
}

// SnapshotOf copies the advisory fields out of a round result.
func SnapshotOf(r *model.RoundResult) Snapshot {
	active := make([]string, len(r.ActionsTaken))
	copy(active, r.ActionsTaken)
	return Snapshot{
		Round:         r.Round,
		Sessions:      r.Metrics.Sessions,
		ViewRate:      r.Rates.ViewRate,
		ATCRate:       r.Rates.ATCRate,
		CheckoutRate:  r.Rates.CheckoutRate,
		PurchaseRate:  r.Rates.PurchaseRate,
		NetProfit:     r.Financials.NetProfit,
		CAC:           r.Financials.CAC,
		ActiveActions: active,
	}
}

// Advisor turns a snapshot into free-form advice.
type Advisor interface {
	Advise(ctx context.Context, s Snapshot) (string, error)
}

// AdviseOrFallback asks a for advice and never fails: errors yield
// FallbackAdvice and blank answers yield EmptyAdvice.
func AdviseOrFallback(ctx context.Context, a Advisor, s Snapshot) string {
	text, err := a.Advise(ctx, s)
	if err != nil {
		log.Printf("[WARN] advisor failed for round %d: %v", s.Round, err)
		return FallbackAdvice
	}
	if strings.TrimSpace(text) == "" {
		return EmptyAdvice
	}
	return text
}
