package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
)

func Test_OnSavingsRate_ShouldComputePercentOfIncome(t *testing.T) {
	rate := SavingsRate(2000, 500)

	assert.True(t, rate.Defined)
	assert.Equal(t, 75.0, rate.Percent)
	assert.Equal(t, "75.0", rate.String())
	assert.Equal(t, 1500.0, MonthlySavings(2000, 500))
}

func Test_OnZeroIncome_ShouldReturnUndefinedRate(t *testing.T) {
	rate := SavingsRate(0, 500)

	assert.False(t, rate.Defined)
	assert.Equal(t, "n/a", rate.String())
	assert.Equal(t, "unknown", RateHealth(rate))
}

func Test_OnRateHealth_ShouldUseTenTwentyBands(t *testing.T) {
	assert.Equal(t, "low", RateHealth(Rate{Percent: 5, Defined: true}))
	assert.Equal(t, "fair", RateHealth(Rate{Percent: 15, Defined: true}))
	assert.Equal(t, "good", RateHealth(Rate{Percent: 25, Defined: true}))
}

func Test_OnCategoryBreakdown_ShouldGroupAndBeIdempotent(t *testing.T) {
	entries := []finance.ExpenseEntry{
		{Category: "Food", Amount: 100},
		{Category: "Rent", Amount: 900},
		{Category: "Food", Amount: 50},
	}

	first := CategoryBreakdown(entries)
	second := CategoryBreakdown(entries)

	assert.Equal(t, map[string]float64{"Food": 150, "Rent": 900}, first)
	assert.Equal(t, first, second)
}

func expenseHistory(amounts ...float64) []finance.ExpenseRecord {
	recs := make([]finance.ExpenseRecord, 0, len(amounts))
	for i, a := range amounts {
		recs = append(recs, finance.ExpenseRecord{
			Date:   time.Now().AddDate(0, 0, i-len(amounts)),
			Amount: a,
		})
	}
	return recs
}

func Test_OnExpenseTrend_ShouldFlagIncrease(t *testing.T) {
	// older avg 100, recent avg 150: above the 1.1x threshold
	trend := ExpenseTrend(expenseHistory(100, 100, 100, 150, 150, 150))

	assert.Equal(t, TrendIncreased, trend)
}

func Test_OnExpenseTrend_ShouldFlagDecrease(t *testing.T) {
	trend := ExpenseTrend(expenseHistory(200, 200, 200, 100, 100, 100))

	assert.Equal(t, TrendDecreased, trend)
}

func Test_OnExpenseTrend_ShouldStayStableWithinThresholds(t *testing.T) {
	// recent avg 105 vs older avg 100: inside the 0.9-1.1 band
	trend := ExpenseTrend(expenseHistory(100, 100, 100, 105, 105, 105))

	assert.Equal(t, TrendStable, trend)
}

func Test_OnExpenseTrend_ShouldRequireTwoEntries(t *testing.T) {
	assert.Equal(t, TrendUnknown, ExpenseTrend(nil))
	assert.Equal(t, TrendUnknown, ExpenseTrend(expenseHistory(100)))
	assert.Equal(t, TrendIncreased, ExpenseTrend(expenseHistory(100, 200)))
}

func Test_OnLowBalance_ShouldFlagEmergencyFund(t *testing.T) {
	data := &finance.Data{TotalBalance: 1000, MonthlyExpenses: 500}

	flags := DetectFlags(data)

	// 1000 < 3 x 500
	assert.True(t, flags.LowEmergencyFund)
}

func Test_OnSufficientBalance_ShouldNotFlagEmergencyFund(t *testing.T) {
	data := &finance.Data{TotalBalance: 1500, MonthlyExpenses: 500}

	flags := DetectFlags(data)

	assert.False(t, flags.LowEmergencyFund)
}

func Test_OnDominantCategory_ShouldNameIt(t *testing.T) {
	data := &finance.Data{
		MonthlyExpenses: 1000,
		ExpenseBreakdown: []finance.ExpenseEntry{
			{Category: "Rent", Amount: 450},
			{Category: "Food", Amount: 200},
		},
	}

	flags := DetectFlags(data)

	assert.Equal(t, "Rent", flags.DominantCategory)
}

func Test_OnSummarize_ShouldBundleAllMetrics(t *testing.T) {
	data := &finance.Data{
		TotalBalance:    1000,
		MonthlyIncome:   2000,
		MonthlyExpenses: 500,
		ExpenseBreakdown: []finance.ExpenseEntry{
			{Category: "Food", Amount: 500},
		},
	}

	s := Summarize(data)

	assert.Equal(t, 1500.0, s.MonthlySavings)
	assert.Equal(t, 75.0, s.SavingsRate.Percent)
	assert.Equal(t, map[string]float64{"Food": 500}, s.Breakdown)
	assert.True(t, s.Flags.LowEmergencyFund)
	assert.Equal(t, "Food", s.Flags.DominantCategory)
}
