package goal

import (
	"time"

	"github.com/google/uuid"
)

// SavingsGoal tracks progress toward a named target amount. Progress is
// not clamped: overfunding a goal reports over 100%.
type SavingsGoal struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func New(name string, target float64, deadline *time.Time) SavingsGoal {
	return SavingsGoal{
		ID:           uuid.NewString(),
		Name:         name,
		TargetAmount: target,
		Deadline:     deadline,
		CreatedAt:    time.Now(),
	}
}

// Progress returns the funded fraction as a percentage. A goal with a
// non-positive target reports zero rather than dividing by it.
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}
