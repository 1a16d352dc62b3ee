package assistant

import (
	"fmt"
	"strings"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/chat"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/advisor"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/analytics"
)

// buildPrompt assembles the structured prompt for the hosted model:
// role instruction, user profile, financial snapshot, the last
// historyWindow turns, and the new message.
func buildPrompt(text string, profile advisor.Profile, data *finance.Data,
	history []chat.Message, historyWindow int) string {

	var b strings.Builder

	b.WriteString("You are a personal finance assistant. Answer briefly and practically. ")
	fmt.Fprintf(&b, "Use a %s tone with %s depth.\n\n", profile.Tone, profile.Complexity)

	rate := analytics.SavingsRate(data.MonthlyIncome, data.MonthlyExpenses)
	fmt.Fprintf(&b, "User finances: balance %.2f, monthly income %.2f, monthly expenses %.2f, savings rate %s%%.\n",
		data.TotalBalance, data.MonthlyIncome, data.MonthlyExpenses, rate)

	breakdown := analytics.CategoryBreakdown(data.ExpenseBreakdown)
	if len(breakdown) > 0 {
		b.WriteString("Spending by category:")
		for cat, amount := range breakdown {
			fmt.Fprintf(&b, " %s=%.2f", cat, amount)
		}
		b.WriteString(".\n")
	}

	if len(history) > 0 {
		turns := history
		if len(turns) > historyWindow {
			turns = turns[len(turns)-historyWindow:]
		}
		b.WriteString("\nConversation so far:\n")
		for _, m := range turns {
			fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
		}
	}

	fmt.Fprintf(&b, "\nuser: %s\nassistant:", text)
	return b.String()
}
