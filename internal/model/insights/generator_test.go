package insights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
)

func Test_OnGenerate_ShouldScopeBreakdownToPeriod(t *testing.T) {
	data := &finance.Data{
		TotalBalance:    2000,
		MonthlyIncome:   3000,
		MonthlyExpenses: 120,
		ExpenseBreakdown: []finance.ExpenseEntry{
			{Category: "Food", Amount: 120, Date: time.Now()},
			{Category: "Furniture", Amount: 800, Date: time.Now().AddDate(-1, 0, 0)},
		},
	}

	report, err := Generate(data, "month")

	assert.NoError(t, err)
	assert.Contains(t, report, "Food: 120.00")
	assert.NotContains(t, report, "Furniture")
}

func Test_OnGenerateAllTime_ShouldKeepEveryEntry(t *testing.T) {
	data := &finance.Data{
		ExpenseBreakdown: []finance.ExpenseEntry{
			{Category: "Food", Amount: 120, Date: time.Now()},
			{Category: "Furniture", Amount: 800, Date: time.Now().AddDate(-1, 0, 0)},
		},
	}

	report, err := Generate(data, "")

	assert.NoError(t, err)
	assert.Contains(t, report, "Food: 120.00")
	assert.Contains(t, report, "Furniture: 800.00")
}

func Test_OnGenerate_ShouldRejectUnknownPeriod(t *testing.T) {
	_, err := Generate(&finance.Data{}, "decade")

	assert.Error(t, err)
}

func Test_OnGenerate_ShouldIncludeHealthWarnings(t *testing.T) {
	data := &finance.Data{
		TotalBalance:    100,
		MonthlyIncome:   1000,
		MonthlyExpenses: 500,
		ExpenseBreakdown: []finance.ExpenseEntry{
			{Category: "Rent", Amount: 400, Date: time.Now()},
		},
	}

	report, err := Generate(data, "")

	assert.NoError(t, err)
	assert.Contains(t, report, "Emergency fund below 3 months of expenses")
	assert.Contains(t, report, `Category "Rent" exceeds 40% of monthly spending`)
}

type fakeUserStorage struct {
	activeID string
	data     finance.Data
}

func (s *fakeUserStorage) SetActiveUser(_ context.Context, id string) error {
	s.activeID = id
	return nil
}

func (s *fakeUserStorage) GetFinancialData(_ context.Context) (finance.Data, error) {
	return s.data, nil
}

type fakeCache struct {
	userID, period, report string
}

func (c *fakeCache) CacheInsight(userID, period, report string) error {
	c.userID = userID
	c.period = period
	c.report = report
	return nil
}

func Test_OnHandleRequest_ShouldCacheGeneratedReport(t *testing.T) {
	store := &fakeUserStorage{data: finance.Data{TotalBalance: 777}}
	cache := &fakeCache{}
	gen := NewGenerator(store, cache)

	err := gen.HandleRequest(context.Background(), Request{UserID: "u42", Period: "month"})

	assert.NoError(t, err)
	assert.Equal(t, "u42", store.activeID)
	assert.Equal(t, "u42", cache.userID)
	assert.Equal(t, "month", cache.period)
	assert.Contains(t, cache.report, "Balance: 777.00")
}
