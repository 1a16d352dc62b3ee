package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/goal"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/user"
)

func Test_OnSaveFinancialData_ShouldRoundTrip(t *testing.T) {
	s := NewInMemStorage()
	ctx := context.Background()
	assert.NoError(t, s.SetActiveUser(ctx, "u1"))

	in := finance.Data{
		TotalBalance: 5000,
		ExpenseBreakdown: []finance.ExpenseEntry{
			{Category: "Food", Amount: 120, Date: time.Now()},
		},
		ExpenseHistory: []finance.ExpenseRecord{
			{Date: time.Now(), Amount: 120, Category: "Food"},
		},
		IncomeHistory: []finance.IncomeRecord{
			{Date: time.Now(), Amount: 3000},
		},
	}
	assert.NoError(t, s.SaveFinancialData(ctx, in))

	out, err := s.GetFinancialData(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 5000.0, out.TotalBalance)
	// Save recomputes the monthly aggregates from current-month entries.
	assert.Equal(t, 3000.0, out.MonthlyIncome)
	assert.Equal(t, 120.0, out.MonthlyExpenses)
	assert.Len(t, out.ExpenseBreakdown, 1)
	assert.Equal(t, "Food", out.ExpenseBreakdown[0].Category)
}

func Test_OnSwitchingActiveUser_ShouldIsolateData(t *testing.T) {
	s := NewInMemStorage()
	ctx := context.Background()

	assert.NoError(t, s.SetActiveUser(ctx, "alice"))
	assert.NoError(t, s.SaveFinancialData(ctx, finance.Data{TotalBalance: 100}))
	assert.NoError(t, s.SaveGoals(ctx, []goal.SavingsGoal{{ID: "g1", Name: "Car", TargetAmount: 9000}}))

	assert.NoError(t, s.SetActiveUser(ctx, "bob"))
	data, err := s.GetFinancialData(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, data.TotalBalance)
	goals, err := s.GetGoals(ctx)
	assert.NoError(t, err)
	assert.Empty(t, goals)

	assert.NoError(t, s.SetActiveUser(ctx, "alice"))
	data, err = s.GetFinancialData(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, data.TotalBalance)
}

func Test_OnMutation_ShouldNotifySubscribers(t *testing.T) {
	s := NewInMemStorage()
	ctx := context.Background()

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	assert.NoError(t, s.SetActiveUser(ctx, "u1"))
	assert.NoError(t, s.SaveFinancialData(ctx, finance.Data{}))
	assert.Equal(t, 2, calls)

	// Reads stay silent.
	_, err := s.GetFinancialData(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	unsubscribe()
	assert.NoError(t, s.SaveFinancialData(ctx, finance.Data{}))
	assert.Equal(t, 2, calls)
}

func Test_OnPanickingListener_ShouldStillCompleteWrite(t *testing.T) {
	s := NewInMemStorage()
	ctx := context.Background()

	s.Subscribe(func() { panic("boom") })
	calls := 0
	s.Subscribe(func() { calls++ })

	assert.NotPanics(t, func() {
		assert.NoError(t, s.SetActiveUser(ctx, "u1"))
	})
	id, err := s.ActiveUser(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "u1", id)
	assert.Equal(t, 1, calls)
}

func Test_OnListenerWritingBack_ShouldRecurseSynchronously(t *testing.T) {
	// Fan-out is synchronous and not re-entrancy guarded: a listener
	// that mutates the store triggers a nested notification before the
	// outer one returns. Listeners must guard themselves.
	s := NewInMemStorage()
	ctx := context.Background()

	depth := 0
	s.Subscribe(func() {
		depth++
		if depth == 1 {
			assert.NoError(t, s.SetActiveUser(ctx, "nested"))
		}
	})

	assert.NoError(t, s.SetActiveUser(ctx, "outer"))

	assert.Equal(t, 2, depth)
	id, err := s.ActiveUser(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "nested", id)
}

func Test_OnCorruptedRecord_ShouldReturnZeroValue(t *testing.T) {
	s := NewInMemStorage()
	ctx := context.Background()
	assert.NoError(t, s.SetActiveUser(ctx, "u1"))

	s.kv[finDataKeyPrefix+"u1"] = "{not json"

	data, err := s.GetFinancialData(ctx)
	assert.NoError(t, err)
	assert.Equal(t, finance.Data{}, data)
}

func Test_OnSaveUsers_ShouldRoundTrip(t *testing.T) {
	s := NewInMemStorage()
	ctx := context.Background()

	in := []user.Record{{
		ID:          "u1",
		Email:       "a@b.c",
		FullName:    "Ada",
		Demographic: &user.Demographic{Type: user.Student, Age: 21},
	}}
	assert.NoError(t, s.SaveUsers(ctx, in))

	out, err := s.GetUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "a@b.c", out[0].Email)
	assert.Equal(t, user.Student, out[0].Demographic.Type)
}

func Test_OnClearAll_ShouldDropUserAndSessionKeys(t *testing.T) {
	s := NewInMemStorage()
	ctx := context.Background()

	assert.NoError(t, s.SaveUsers(ctx, []user.Record{{ID: "u1"}}))
	assert.NoError(t, s.SetActiveUser(ctx, "u1"))
	assert.NoError(t, s.SaveFinancialData(ctx, finance.Data{TotalBalance: 42}))
	assert.NoError(t, s.SaveGoals(ctx, []goal.SavingsGoal{{ID: "g1"}}))

	notified := false
	s.Subscribe(func() { notified = true })

	assert.NoError(t, s.ClearAll(ctx))

	assert.True(t, notified)
	assert.Empty(t, s.kv)

	id, err := s.ActiveUser(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "", id)
	users, err := s.GetUsers(ctx)
	assert.NoError(t, err)
	assert.Empty(t, users)
}
