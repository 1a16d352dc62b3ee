// Package assistant runs a chat turn end to end: prompt construction,
// the remote model call, and the rule-based fallback. Its contract is
// that a user message always gets a reply; remote failures degrade,
// they do not propagate.
package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/chat"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/goal"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/user"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/advisor"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/analytics"
)

// Replies shorter than this are treated as model garbage and handed to
// the rule engine instead.
const minUsefulReplyLen = 10

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type adviceEngine interface {
	Respond(req advisor.Request) string
}

type chatStorage interface {
	GetUsers(ctx context.Context) ([]user.Record, error)
	ActiveUser(ctx context.Context) (string, error)
	GetFinancialData(ctx context.Context) (finance.Data, error)
	GetGoals(ctx context.Context) ([]goal.SavingsGoal, error)
	GetMessages(ctx context.Context) ([]chat.Message, error)
	SaveMessages(ctx context.Context, msgs []chat.Message) error
}

type config interface {
	Currency() string
	HistoryWindow() int
}

// Source records which path produced the reply text.
type Source string

const (
	SourceModel Source = "model"
	SourceRules Source = "rules"
)

// Reply is one assistant turn. Summary is attached only when the
// exchange touches budget/spending vocabulary, so the caller can
// render charts next to the text.
type Reply struct {
	Text    string
	Source  Source
	Summary *analytics.Summary
}

type Service struct {
	generator     textGenerator
	advisor       adviceEngine
	storage       chatStorage
	currency      string
	historyWindow int

	// historyMu serializes the chat log's read-append-save cycle so
	// two in-flight requests for the same store cannot drop an
	// exchange.
	historyMu sync.Mutex
}

func New(generator textGenerator, advisorSvc adviceEngine, storage chatStorage, cfg config) *Service {
	return &Service{
		generator:     generator,
		advisor:       advisorSvc,
		storage:       storage,
		currency:      cfg.Currency(),
		historyWindow: cfg.HistoryWindow(),
	}
}

// HandleMessage answers one user message and appends both sides of the
// exchange to the chat log. The returned error covers storage problems
// only; the reply text itself never fails to materialize.
func (s *Service) HandleMessage(ctx context.Context, text string) (Reply, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	reply, err := s.handle(ctx, text)
	observeResponse(time.Since(start), reply.Source, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return reply, err
}

func (s *Service) handle(ctx context.Context, text string) (Reply, error) {
	profile, data, goals := s.loadContext(ctx)
	history, _ := s.storage.GetMessages(ctx)

	reply := s.respond(ctx, text, profile, &data, goals, history)

	if wantsSummary(text) || wantsSummary(reply.Text) {
		summary := analytics.Summarize(&data)
		reply.Summary = &summary
	}

	activeID, _ := s.storage.ActiveUser(ctx)

	// Re-read under the lock: the history fetched for the prompt may
	// be stale by the time the reply exists.
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	latest, _ := s.storage.GetMessages(ctx)
	latest = append(latest,
		chat.NewMessage(chat.RoleUser, text, activeID),
		chat.NewMessage(chat.RoleAssistant, reply.Text, activeID),
	)
	if err := s.storage.SaveMessages(ctx, latest); err != nil {
		return reply, err
	}
	return reply, nil
}

// respond tries the hosted model first and falls back to the rule
// engine on any failure or unusable output.
func (s *Service) respond(ctx context.Context, text string, profile advisor.Profile,
	data *finance.Data, goals []goal.SavingsGoal, history []chat.Message) Reply {

	req := advisor.Request{Message: text, Data: data, Goals: goals, Profile: profile}

	if s.generator != nil {
		prompt := buildPrompt(text, profile, data, history, s.historyWindow)
		generated, err := s.generator.Generate(ctx, prompt)
		if err == nil && len(strings.TrimSpace(generated)) >= minUsefulReplyLen {
			return Reply{Text: generated, Source: SourceModel}
		}
		if err != nil {
			logger.Warn("model call failed, using rule engine", zap.Error(err))
		} else {
			logger.Warn("model reply too short, using rule engine", zap.Int("len", len(generated)))
		}
	}

	return Reply{Text: s.advisor.Respond(req), Source: SourceRules}
}

// loadContext resolves the active user's profile, data, and goals.
// Missing pieces fall back to defaults; a chat turn never fails on
// absent context.
func (s *Service) loadContext(ctx context.Context) (advisor.Profile, finance.Data, []goal.SavingsGoal) {
	profile := advisor.Profile{
		Tone:       user.ToneFriendly,
		Complexity: user.ComplexityModerate,
		Currency:   s.currency,
	}

	activeID, err := s.storage.ActiveUser(ctx)
	if err == nil && activeID != "" {
		if users, err := s.storage.GetUsers(ctx); err == nil {
			for i := range users {
				if users[i].ID == activeID {
					profile.Tone = users[i].Tone()
					profile.Complexity = users[i].Complexity()
					profile.FirstName = firstName(users[i].FullName)
					break
				}
			}
		}
	}

	data, err := s.storage.GetFinancialData(ctx)
	if err != nil {
		logger.Error("cannot load financial data", zap.Error(err))
	}
	goals, err := s.storage.GetGoals(ctx)
	if err != nil {
		logger.Error("cannot load goals", zap.Error(err))
	}
	return profile, data, goals
}

func firstName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

var summaryKeywords = []string{"budget", "summary", "spending", "insight", "overview", "breakdown"}

func wantsSummary(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range summaryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
