// Package advisor is the rule-based advice engine. It is a total
// function over any input string: every message gets a non-empty
// response and no call path returns an error.
package advisor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/goal"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/user"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/analytics"
)

// Profile carries everything about the user that shapes phrasing.
// Tone and complexity change how an answer reads, never what it says.
type Profile struct {
	Tone       user.Tone
	Complexity user.Complexity
	Currency   string
	FirstName  string
}

// Request is one advice invocation. Data and Goals may be nil/empty;
// every rule tolerates their absence.
type Request struct {
	Message string
	Data    *finance.Data
	Goals   []goal.SavingsGoal
	Profile Profile
}

// rule pairs a matcher with a responder. Rules are evaluated in
// declaration order and the first match wins; there is no ranking.
type rule struct {
	match   func(msg string) bool
	respond func(req Request, msg string) string
}

type Service struct {
	rules []rule
}

func New() *Service {
	s := &Service{}
	s.rules = []rule{
		{s.matchDataQuestion, s.answerDataQuestion},
		{s.matchTerm, s.explainTerm},
		{s.matchWhatIs, s.explainFamily},
		{s.matchGreeting, s.answerGreeting},
		{s.matchThanks, s.answerThanks},
		{s.matchHelp, s.answerHelp},
		{s.matchContinuation, s.answerContinuation},
	}
	return s
}

// Respond runs the ordered rule pipeline. Unmatched input degrades to
// a clarification prompt.
func (s *Service) Respond(req Request) string {
	msg := normalize(req.Message)
	for _, r := range s.rules {
		if r.match(msg) {
			return r.respond(req, msg)
		}
	}
	return s.clarify(req.Profile)
}

// normalize lowercases and trims, then pads with one space per side so
// word-boundary terms like " ira " can match at the edges.
func normalize(text string) string {
	return " " + strings.ToLower(strings.TrimSpace(text)) + " "
}

func containsAny(msg string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(msg, t) {
			return true
		}
	}
	return false
}

// money formats an amount with the user's currency symbol, rounded
// half-up to two decimals.
func money(currency string, amount float64) string {
	return currency + decimal.NewFromFloat(amount).StringFixed(2)
}

// --- Rule 1: questions about the user's own numbers ---

func (s *Service) matchDataQuestion(msg string) bool {
	switch {
	case containsAny(msg, "how much") && containsAny(msg, "spend", "spent", "spending", "expense", "save", "saving", "earn", "make", "income"):
		return true
	case containsAny(msg, "what is my", "what's my", "whats my") &&
		containsAny(msg, "balance", "income", "expense", "spending", "savings rate", "saving rate", "goal"):
		return true
	case containsAny(msg, "my savings rate", "my balance", "my total balance"):
		return true
	}
	return false
}

func (s *Service) answerDataQuestion(req Request, msg string) string {
	if req.Data == nil {
		return phrase(req.Profile, "I don't have any financial data for you yet.",
			"Add your income and expenses first and I can answer that precisely.")
	}
	cur := req.Profile.Currency
	d := req.Data

	switch {
	case containsAny(msg, "balance"):
		return phrase(req.Profile,
			fmt.Sprintf("Your total balance is %s.", money(cur, d.TotalBalance)),
			healthNote(d))
	case containsAny(msg, "savings rate", "saving rate"):
		rate := analytics.SavingsRate(d.MonthlyIncome, d.MonthlyExpenses)
		if !rate.Defined {
			return phrase(req.Profile,
				"Your savings rate is undefined right now because I have no income recorded this month.",
				"Add an income entry and I can compute it.")
		}
		return phrase(req.Profile,
			fmt.Sprintf("Your savings rate is %s%% (%s saved this month).",
				rate, money(cur, analytics.MonthlySavings(d.MonthlyIncome, d.MonthlyExpenses))),
			fmt.Sprintf("That counts as %s by the usual 10/20 bands.", analytics.RateHealth(rate)))
	case containsAny(msg, "earn", "income", "make"):
		return phrase(req.Profile,
			fmt.Sprintf("Your income this month is %s.", money(cur, d.MonthlyIncome)), "")
	case containsAny(msg, "goal"):
		return s.goalsAnswer(req)
	case containsAny(msg, "save", "saving"):
		savings := analytics.MonthlySavings(d.MonthlyIncome, d.MonthlyExpenses)
		return phrase(req.Profile,
			fmt.Sprintf("You're saving %s this month (income %s minus expenses %s).",
				money(cur, savings), money(cur, d.MonthlyIncome), money(cur, d.MonthlyExpenses)), "")
	}

	// Spending questions, optionally narrowed to a category.
	breakdown := analytics.CategoryBreakdown(d.ExpenseBreakdown)
	for cat, amount := range breakdown {
		if strings.Contains(msg, strings.ToLower(cat)) {
			return phrase(req.Profile,
				fmt.Sprintf("You've spent %s on %s.", money(cur, amount), cat), "")
		}
	}
	return phrase(req.Profile,
		fmt.Sprintf("Your expenses this month total %s.", money(cur, d.MonthlyExpenses)),
		trendNote(d))
}

func (s *Service) goalsAnswer(req Request) string {
	if len(req.Goals) == 0 {
		return phrase(req.Profile, "You haven't set any savings goals yet.",
			"Create one and I'll track your progress toward it.")
	}
	lines := make([]string, 0, len(req.Goals)+1)
	lines = append(lines, "Here's where your goals stand:")
	for i := range req.Goals {
		g := &req.Goals[i]
		lines = append(lines, fmt.Sprintf("- %s: %s of %s (%.1f%%)",
			g.Name, money(req.Profile.Currency, g.CurrentAmount),
			money(req.Profile.Currency, g.TargetAmount), g.Progress()))
	}
	return strings.Join(lines, "\n")
}

func healthNote(d *finance.Data) string {
	flags := analytics.DetectFlags(d)
	if flags.LowEmergencyFund {
		return "Heads up: that's less than three months of expenses, so your emergency cushion is thin."
	}
	return ""
}

func trendNote(d *finance.Data) string {
	switch analytics.ExpenseTrend(d.ExpenseHistory) {
	case analytics.TrendIncreased:
		return "Spending has been trending up lately."
	case analytics.TrendDecreased:
		return "Spending has been trending down lately, nice."
	}
	return ""
}

// --- Rule 2: the ordered term table ---

func (s *Service) matchTerm(msg string) bool {
	return findExplanation(msg) != nil
}

func findExplanation(msg string) *explanation {
	for i := range explanations {
		for _, t := range explanations[i].terms {
			if strings.Contains(msg, t) {
				return &explanations[i]
			}
		}
	}
	return nil
}

func (s *Service) explainTerm(req Request, msg string) string {
	e := findExplanation(msg)
	if e == nil {
		return s.clarify(req.Profile)
	}
	return renderExplanation(req.Profile, e)
}

func renderExplanation(p Profile, e *explanation) string {
	var b strings.Builder
	b.WriteString(e.summary)

	if p.Complexity != user.ComplexitySimple && len(e.details) > 0 {
		details := e.details
		if p.Complexity == user.ComplexityModerate && len(details) > 2 {
			details = details[:2]
		}
		b.WriteString("\n")
		for _, d := range details {
			b.WriteString("\n• ")
			b.WriteString(d)
		}
	}
	if p.Complexity == user.ComplexityDetailed && e.tip != "" {
		b.WriteString("\n\nTip: ")
		b.WriteString(e.tip)
	}
	if p.Tone == user.ToneCasual {
		b.WriteString("\n\nWant me to break any of that down further?")
	}
	return b.String()
}

// --- Rule 3: "what is X / explain X" family buckets ---

func (s *Service) matchWhatIs(msg string) bool {
	return containsAny(msg, "what is", "what are", "what's", "whats", "explain", "tell me about", "define", "meaning of")
}

var families = []struct {
	keys  []string
	reply string
}{
	{
		keys:  []string{"invest", "market", "trading", "asset", "return", "yield", "fund"},
		reply: "That falls under investing: putting money into assets that can grow over time, like stocks, bonds, and funds. The basics that matter are diversification, low fees, and a long holding period. Ask me about any specific instrument and I can go deeper.",
	},
	{
		keys:  []string{"loan", "debt", "borrow", "credit", "owe", "repay"},
		reply: "That's about borrowing and debt. The essentials: the interest rate decides how expensive the debt is, high-rate debt should be paid off aggressively, and on-time payments protect your credit score. Ask about a specific kind of loan for specifics.",
	},
	{
		keys:  []string{"tax", "deduct", "irs", "filing"},
		reply: "That's a tax topic. In broad strokes: deductions reduce taxed income, credits reduce the bill directly, and tax-advantaged accounts are the biggest legal lever most people have. For your personal situation a tax professional beats any chat answer.",
	},
	{
		keys:  []string{"insur", "coverage", "policy", "claim"},
		reply: "That's an insurance topic. The principle: insure the catastrophes you couldn't pay for yourself (income, health, liability, home) and self-insure small stuff through your emergency fund. Compare deductibles and coverage caps, not just premiums.",
	},
	{
		keys:  []string{"save", "saving", "deposit", "account"},
		reply: "That's about saving. The mechanics that work: automate a transfer on payday, keep the money in a high-yield account separate from spending, and build toward 3-6 months of expenses before investing the rest.",
	},
	{
		keys:  []string{"retir", "pension", "old age"},
		reply: "That's retirement territory. The short version: contribute early and steadily, capture any employer match first, use tax-advantaged accounts, and let compounding do the heavy lifting over decades.",
	},
}

func (s *Service) explainFamily(req Request, msg string) string {
	for _, f := range families {
		if containsAny(msg, f.keys...) {
			return adjustTone(req.Profile, f.reply)
		}
	}
	return adjustTone(req.Profile,
		"That's a bit outside the vocabulary I know well. I'm strongest on budgeting, saving, debt, investing, insurance, taxes, and retirement — try me on any of those.")
}

// --- Rules 4-7: conversational responses ---

func (s *Service) matchGreeting(msg string) bool {
	return containsAny(msg, " hi ", " hello ", " hey ", "good morning", "good afternoon", "good evening", " yo ")
}

func (s *Service) answerGreeting(req Request, _ string) string {
	name := req.Profile.FirstName
	switch req.Profile.Tone {
	case user.ToneCasual:
		return withName("Hey%s! What money question can I help with today?", name)
	case user.ToneProfessional:
		return withName("Hello%s. What would you like to review — spending, goals, or something else?", name)
	case user.ToneFormal:
		return withName("Good day%s. How may I assist with your finances?", name)
	}
	return withName("Hi%s! Ask me anything about your money.", name)
}

func withName(format, name string) string {
	if name != "" {
		return fmt.Sprintf(format, " "+name)
	}
	return fmt.Sprintf(format, "")
}

func (s *Service) matchThanks(msg string) bool {
	return containsAny(msg, "thank", "thanks", " thx ", "appreciate")
}

func (s *Service) answerThanks(req Request, _ string) string {
	if req.Profile.Tone == user.ToneCasual {
		return "Anytime! Anything else on your mind?"
	}
	return "You're welcome. Is there anything else I can help you with?"
}

func (s *Service) matchHelp(msg string) bool {
	return containsAny(msg, "help", "what can you do", "what do you do", "how do you work")
}

func (s *Service) answerHelp(req Request, _ string) string {
	return adjustTone(req.Profile, strings.Join([]string{
		"Here's what I can do:",
		"• Answer questions about your own numbers (balance, spending, savings rate, goals)",
		"• Explain financial terms — investing, credit, insurance, taxes, retirement, real estate",
		"• Flag patterns in your data, like rising spending or a thin emergency fund",
		"Just ask in plain words.",
	}, "\n"))
}

func (s *Service) matchContinuation(msg string) bool {
	return containsAny(msg, "tell me more", "more detail", "go on", "continue", "what else", "and then", "why", "how come", "what about")
}

func (s *Service) answerContinuation(req Request, _ string) string {
	return adjustTone(req.Profile,
		"Happy to go deeper — tell me which part you'd like me to expand on, or name the topic and I'll start from the top.")
}

func (s *Service) clarify(p Profile) string {
	switch p.Tone {
	case user.ToneCasual:
		return "Hmm, I didn't quite catch that. Could you rephrase? I'm good with stuff like budgeting, saving, debt, and investing."
	case user.ToneFormal:
		return "I'm not certain I understood the request. Could you be more specific? I can assist with budgeting, savings, debt, investments, insurance, taxes, and retirement."
	}
	return "Could you be a bit more specific? I can help with budgeting, saving, debt, investing, insurance, taxes, and retirement planning."
}

// adjustTone prepends a light tone marker for the casual voice; other
// tones read fine as written.
func adjustTone(p Profile, text string) string {
	if p.Tone == user.ToneCasual {
		return "Sure thing! " + text
	}
	return text
}

// phrase joins a main answer with an optional follow-up note, with the
// note dropped for simple-complexity users.
func phrase(p Profile, main, note string) string {
	if note == "" || p.Complexity == user.ComplexitySimple {
		return main
	}
	return main + " " + note
}
