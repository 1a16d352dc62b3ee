package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
)

// Heuristic thresholds. These are product constants, not tunables;
// changing them changes user-visible behavior.
const (
	trendUpFactor       = 1.1
	trendDownFactor     = 0.9
	trendWindow         = 3
	emergencyFundMonths = 3
	dominantShare       = 0.4
	lowRateBand         = 10
	goodRateBand        = 20
)

type Trend string

const (
	TrendIncreased Trend = "increased"
	TrendDecreased Trend = "decreased"
	TrendStable    Trend = "stable"
	TrendUnknown   Trend = "unknown"
)

// Rate is a savings rate that may be undefined (zero income). Callers
// must check Defined before using Percent.
type Rate struct {
	Percent float64
	Defined bool
}

func (r Rate) String() string {
	if !r.Defined {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", r.Percent)
}

// Flags are threshold-based health warnings derived from a snapshot.
type Flags struct {
	LowEmergencyFund bool
	DominantCategory string
}

// Summary bundles every derived metric for chart rendering and prompt
// construction.
type Summary struct {
	TotalBalance    float64
	MonthlyIncome   float64
	MonthlyExpenses float64
	MonthlySavings  float64
	SavingsRate     Rate
	Breakdown       map[string]float64
	ExpenseTrend    Trend
	Flags           Flags
}

// SavingsRate computes (income-expenses)/income*100. Zero income yields
// an undefined rate instead of propagating NaN into formatting.
func SavingsRate(income, expenses float64) Rate {
	if income == 0 {
		return Rate{}
	}
	return Rate{Percent: (income - expenses) / income * 100, Defined: true}
}

func MonthlySavings(income, expenses float64) float64 {
	return income - expenses
}

// CategoryBreakdown groups breakdown entries by category, summing
// amounts. Aggregating the same list twice yields the same mapping.
func CategoryBreakdown(entries []finance.ExpenseEntry) map[string]float64 {
	m := make(map[string]float64, len(entries))
	for _, e := range entries {
		m[e.Category] += e.Amount
	}
	return m
}

// ExpenseTrend compares the average of the last trendWindow expense
// history entries against the previous trendWindow. Fewer than two
// entries give no signal.
func ExpenseTrend(history []finance.ExpenseRecord) Trend {
	if len(history) < 2 {
		return TrendUnknown
	}

	k := len(history) / 2
	if k > trendWindow {
		k = trendWindow
	}
	recent := history[len(history)-k:]
	older := history[:len(history)-k]
	if len(older) > trendWindow {
		older = older[len(older)-trendWindow:]
	}

	recentAvg := average(recent)
	olderAvg := average(older)
	if olderAvg == 0 {
		return TrendUnknown
	}

	switch {
	case recentAvg > olderAvg*trendUpFactor:
		return TrendIncreased
	case recentAvg < olderAvg*trendDownFactor:
		return TrendDecreased
	}
	return TrendStable
}

func average(recs []finance.ExpenseRecord) float64 {
	if len(recs) == 0 {
		return 0
	}
	var sum float64
	for _, r := range recs {
		sum += r.Amount
	}
	return sum / float64(len(recs))
}

// DetectFlags raises the low-emergency-fund flag when the balance
// covers fewer than emergencyFundMonths months of expenses, and names
// any single category exceeding dominantShare of monthly expenses.
func DetectFlags(data *finance.Data) Flags {
	var f Flags

	if data.MonthlyExpenses > 0 && data.TotalBalance < emergencyFundMonths*data.MonthlyExpenses {
		f.LowEmergencyFund = true
	}

	if data.MonthlyExpenses > 0 {
		breakdown := CategoryBreakdown(data.ExpenseBreakdown)
		for cat, amount := range breakdown {
			if amount > dominantShare*data.MonthlyExpenses {
				if f.DominantCategory == "" || amount > breakdown[f.DominantCategory] {
					f.DominantCategory = cat
				}
			}
		}
	}

	return f
}

// Summarize computes every derived metric from one snapshot.
func Summarize(data *finance.Data) Summary {
	return Summary{
		TotalBalance:    data.TotalBalance,
		MonthlyIncome:   data.MonthlyIncome,
		MonthlyExpenses: data.MonthlyExpenses,
		MonthlySavings:  MonthlySavings(data.MonthlyIncome, data.MonthlyExpenses),
		SavingsRate:     SavingsRate(data.MonthlyIncome, data.MonthlyExpenses),
		Breakdown:       CategoryBreakdown(data.ExpenseBreakdown),
		ExpenseTrend:    ExpenseTrend(data.ExpenseHistory),
		Flags:           DetectFlags(data),
	}
}

// RateHealth labels a defined savings rate using the 10/20 percent
// bands.
func RateHealth(r Rate) string {
	switch {
	case !r.Defined:
		return "unknown"
	case r.Percent < lowRateBand:
		return "low"
	case r.Percent < goodRateBand:
		return "fair"
	}
	return "good"
}

// Render formats a summary as a plain-text report, largest categories
// first.
func Render(s Summary) string {
	type catAmount struct {
		cat    string
		amount float64
	}
	cats := make([]catAmount, 0, len(s.Breakdown))
	for cat, amount := range s.Breakdown {
		cats = append(cats, catAmount{cat, amount})
	}
	sort.Slice(cats, func(i, j int) bool {
		return cats[i].amount > cats[j].amount
	})

	lines := make([]string, 0, len(cats)+6)
	lines = append(lines,
		fmt.Sprintf("Balance: %.2f", s.TotalBalance),
		fmt.Sprintf("Income: %.2f", s.MonthlyIncome),
		fmt.Sprintf("Expenses: %.2f", s.MonthlyExpenses),
		fmt.Sprintf("Savings rate: %s%%", s.SavingsRate),
		"")
	for _, c := range cats {
		lines = append(lines, fmt.Sprintf("%s: %.2f", c.cat, c.amount))
	}
	if s.Flags.LowEmergencyFund {
		lines = append(lines, "", "Emergency fund below 3 months of expenses")
	}
	if s.Flags.DominantCategory != "" {
		lines = append(lines, fmt.Sprintf("Category %q exceeds 40%% of monthly spending", s.Flags.DominantCategory))
	}
	return strings.Join(lines, "\n")
}
