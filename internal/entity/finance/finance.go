package finance

import (
	"time"

	"github.com/jinzhu/now"
)

// ExpenseEntry is one category bucket in the expense breakdown.
type ExpenseEntry struct {
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}

type IncomeRecord struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

type ExpenseRecord struct {
	Date     time.Time `json:"date"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
}

// Data is the per-user financial snapshot. MonthlyIncome and
// MonthlyExpenses are derived from the histories; Recompute is the only
// place that derivation happens.
type Data struct {
	TotalBalance     float64         `json:"totalBalance"`
	MonthlyIncome    float64         `json:"monthlyIncome"`
	MonthlyExpenses  float64         `json:"monthlyExpenses"`
	ExpenseBreakdown []ExpenseEntry  `json:"expenseBreakdown"`
	IncomeHistory    []IncomeRecord  `json:"incomeHistory"`
	ExpenseHistory   []ExpenseRecord `json:"expenseHistory"`
}

// Recompute re-derives the monthly totals from the current month's
// history entries. Storage calls it on every save so the stored
// aggregates cannot drift from the raw histories.
func (d *Data) Recompute() {
	monthStart := now.BeginningOfMonth()

	var income float64
	for _, rec := range d.IncomeHistory {
		if !rec.Date.Before(monthStart) {
			income += rec.Amount
		}
	}

	var expenses float64
	for _, rec := range d.ExpenseHistory {
		if !rec.Date.Before(monthStart) {
			expenses += rec.Amount
		}
	}

	d.MonthlyIncome = income
	d.MonthlyExpenses = expenses
}

// AddIncome appends to the income history. Totals are updated on the
// next Recompute.
func (d *Data) AddIncome(amount float64, date time.Time) {
	d.IncomeHistory = append(d.IncomeHistory, IncomeRecord{Date: date, Amount: amount})
	d.TotalBalance += amount
}

// AddExpense appends to the expense history and the category breakdown.
func (d *Data) AddExpense(amount float64, category string, date time.Time) {
	d.ExpenseHistory = append(d.ExpenseHistory, ExpenseRecord{Date: date, Amount: amount, Category: category})
	d.ExpenseBreakdown = append(d.ExpenseBreakdown, ExpenseEntry{Category: category, Amount: amount, Date: date})
	d.TotalBalance -= amount
}
