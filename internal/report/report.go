package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/informaticalaredo/GrowthMaster/internal/batch"
	"github.com/informaticalaredo/GrowthMaster/internal/calculator"
	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

// Money formats v as whole dollars with thousands separators.
func Money(v float64) string {
	if v < 0 {
		return "-$" + humanize.CommafWithDigits(math.Round(-v), 0)
	}
	return "$" + humanize.CommafWithDigits(math.Round(v), 0)
}

func pct(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }

// FormatRound renders one round result.
func FormatRound(res *model.RoundResult, budget float64) string {
	var b strings.Builder
	m, r, f := res.Metrics, res.Rates, res.Financials

	b.WriteString(fmt.Sprintf("== Week %d ==\n", res.Round))
	b.WriteString(fmt.Sprintf("Sessions:       %s\n", humanize.Comma(int64(m.Sessions))))
	b.WriteString(fmt.Sprintf("Product views:  %s (%s)\n", humanize.Comma(int64(m.ProductViews)), pct(r.ViewRate)))
	b.WriteString(fmt.Sprintf("Add to cart:    %s (%s)\n", humanize.Comma(int64(m.AddToCart)), pct(r.ATCRate)))
	b.WriteString(fmt.Sprintf("Checkout start: %s (%s)\n", humanize.Comma(int64(m.CheckoutStart)), pct(r.CheckoutRate)))
	b.WriteString(fmt.Sprintf("Purchases:      %s (%s)\n", humanize.Comma(int64(m.Purchases)), pct(r.PurchaseRate)))
	b.WriteString(fmt.Sprintf("Conversion:     %.2f%%\n\n", r.CRTotal*100))

	b.WriteString(fmt.Sprintf("Revenue: %s | Gross: %s | Costs: %s\n", Money(f.Revenue), Money(f.GrossProfit), Money(f.TotalCosts)))
	b.WriteString(fmt.Sprintf("Net profit: %s | CAC: $%.2f | ROI: %+.1f%%\n", Money(f.NetProfit), f.CAC, f.ROI*100))
	b.WriteString(fmt.Sprintf("Budget: %s\n", Money(budget)))

	if res.Event != nil {
		sign := "-"
		if res.Event.Polarity == model.PolarityPositive {
			sign = "+"
		}
		b.WriteString(fmt.Sprintf("\n[%s] %s: %s\n", sign, res.Event.Title, res.Event.Description))
	}
	return b.String()
}

// FormatCatalog lists the actions, marking active and selected ones.
func FormatCatalog(cat *catalog.Catalog, active, selected []string) string {
	on := model.NewActionSet(active...)
	sel := model.NewActionSet(selected...)

	var b strings.Builder
	var category model.Category
	for _, a := range cat.Actions() {
		if a.Category != category {
			category = a.Category
			b.WriteString(fmt.Sprintf("%s\n", category.Label()))
		}
		mark := " "
		switch {
		case on.Has(a.ID):
			mark = "*"
		case sel.Has(a.ID):
			mark = "+"
		}
		kind := "recurring"
		if a.OneTime {
			kind = "one-time"
		}
		b.WriteString(fmt.Sprintf(" [%s] %-24s %7s %-9s %s\n", mark, a.ID, Money(a.Cost), kind, a.Name))
	}
	return b.String()
}

// FormatStatus renders the game header.
func FormatStatus(st model.GameState) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Game %s | %s\n", st.ID, st.Status))
	b.WriteString(fmt.Sprintf("Week %d of %d | Budget %s\n", st.CurrentRound, st.MaxRounds, Money(st.Budget)))
	b.WriteString(fmt.Sprintf("Active: %s\n", listOrDash(st.ActiveActions)))
	b.WriteString(fmt.Sprintf("Selected: %s\n", listOrDash(st.Selected)))
	return b.String()
}

// FormatSummary renders the end-of-game result.
func FormatSummary(s calculator.Summary) string {
	var b strings.Builder
	b.WriteString("== Final result ==\n")
	b.WriteString(fmt.Sprintf("Weeks played: %d | Events: %d\n", s.Rounds, s.Events))
	b.WriteString(fmt.Sprintf("Budget: %s -> %s\n", Money(s.InitialBudget), Money(s.FinalBudget)))
	b.WriteString(fmt.Sprintf("Revenue: %s | Net profit: %s | Purchases: %s\n",
		Money(s.TotalRevenue), Money(s.TotalNetProfit), humanize.Comma(int64(s.TotalPurchases))))
	b.WriteString(fmt.Sprintf("Conversion: %.2f%% -> %.2f%% (x%.2f)\n", s.BaselineCR*100, s.FinalCR*100, s.CRLift))
	b.WriteString(fmt.Sprintf("Best week: %d | Worst week: %d\n", s.BestRound, s.WorstRound))
	return b.String()
}

func listOrDash(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}

// FormatBatch renders the outcome distribution of a batch run.
func FormatBatch(o *batch.Outcome) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("== Batch %s ==\n", o.RunID))
	b.WriteString(fmt.Sprintf("Policy: %s | Games: %s | Seed: %d\n", o.Policy, humanize.Comma(int64(o.Games)), o.Seed))
	b.WriteString(fmt.Sprintf("Final budget: mean %s (sd %s)\n", Money(o.MeanBudget), Money(o.StdDevBudget)))
	b.WriteString(fmt.Sprintf("  p10 %s | p50 %s | p90 %s\n", Money(o.P10Budget), Money(o.P50Budget), Money(o.P90Budget)))
	b.WriteString(fmt.Sprintf("Mean final conversion: %.2f%% | Mean events: %.2f\n", o.MeanCR*100, o.MeanEvents))
	b.WriteString(fmt.Sprintf("Bankrupt games: %d (%.1f%%)\n", o.Bankrupt, float64(o.Bankrupt)/float64(o.Games)*100))
	return b.String()
}
