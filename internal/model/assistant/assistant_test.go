package assistant

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/chat"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/user"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/advisor"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/storage"
)

type fakeGenerator struct {
	text       string
	err        error
	calls      int
	lastPrompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	return g.text, g.err
}

type fakeAdvisor struct{ reply string }

func (a fakeAdvisor) Respond(_ advisor.Request) string { return a.reply }

type testConfig struct{}

func (testConfig) Currency() string   { return "$" }
func (testConfig) HistoryWindow() int { return 5 }

func newService(gen textGenerator, rules adviceEngine) (*Service, *storage.InMemStorage) {
	store := storage.NewInMemStorage()
	return New(gen, rules, store, testConfig{}), store
}

func Test_OnGeneratorFailure_ShouldReturnRuleAnswerVerbatim(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("endpoint returned 500")}
	svc, _ := newService(gen, fakeAdvisor{reply: "rule engine answer"})

	reply, err := svc.HandleMessage(context.Background(), "what is a 401k")

	assert.NoError(t, err)
	assert.Equal(t, "rule engine answer", reply.Text)
	assert.Equal(t, SourceRules, reply.Source)
	assert.Equal(t, 1, gen.calls)
}

func Test_OnShortModelReply_ShouldFallBackToRules(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	svc, _ := newService(gen, fakeAdvisor{reply: "rule engine answer"})

	reply, err := svc.HandleMessage(context.Background(), "tell me about stocks")

	assert.NoError(t, err)
	assert.Equal(t, SourceRules, reply.Source)
	assert.Equal(t, "rule engine answer", reply.Text)
}

func Test_OnUsefulModelReply_ShouldUseModel(t *testing.T) {
	gen := &fakeGenerator{text: "Stocks are slices of company ownership."}
	svc, _ := newService(gen, fakeAdvisor{reply: "rule engine answer"})

	reply, err := svc.HandleMessage(context.Background(), "tell me about stocks")

	assert.NoError(t, err)
	assert.Equal(t, SourceModel, reply.Source)
	assert.Equal(t, "Stocks are slices of company ownership.", reply.Text)
}

func Test_OnNilGenerator_ShouldUseRules(t *testing.T) {
	svc, _ := newService(nil, fakeAdvisor{reply: "rule engine answer"})

	reply, err := svc.HandleMessage(context.Background(), "hello")

	assert.NoError(t, err)
	assert.Equal(t, SourceRules, reply.Source)
}

func Test_OnBudgetKeyword_ShouldAttachSummary(t *testing.T) {
	svc, store := newService(nil, fakeAdvisor{reply: "here are your numbers"})
	ctx := context.Background()
	assert.NoError(t, store.SetActiveUser(ctx, "u1"))
	assert.NoError(t, store.SaveFinancialData(ctx, finance.Data{TotalBalance: 1000}))

	reply, err := svc.HandleMessage(ctx, "show me my budget")

	assert.NoError(t, err)
	assert.NotNil(t, reply.Summary)
}

func Test_OnPlainQuestion_ShouldSkipSummary(t *testing.T) {
	svc, _ := newService(nil, fakeAdvisor{reply: "a stock is ownership"})

	reply, err := svc.HandleMessage(context.Background(), "what is a stock")

	assert.NoError(t, err)
	assert.Nil(t, reply.Summary)
}

func Test_OnHandleMessage_ShouldAppendBothTurns(t *testing.T) {
	svc, store := newService(nil, fakeAdvisor{reply: "rule engine answer"})
	ctx := context.Background()
	assert.NoError(t, store.SetActiveUser(ctx, "u1"))

	_, err := svc.HandleMessage(ctx, "first question")
	assert.NoError(t, err)
	_, err = svc.HandleMessage(ctx, "second question")
	assert.NoError(t, err)

	msgs, err := store.GetMessages(ctx)
	assert.NoError(t, err)
	assert.Len(t, msgs, 4)
	assert.Equal(t, chat.RoleUser, msgs[0].Role)
	assert.Equal(t, "first question", msgs[0].Content)
	assert.Equal(t, chat.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "rule engine answer", msgs[1].Content)
}

func Test_OnConcurrentMessages_ShouldKeepEveryExchange(t *testing.T) {
	svc, store := newService(nil, fakeAdvisor{reply: "rule engine answer"})
	ctx := context.Background()
	assert.NoError(t, store.SetActiveUser(ctx, "u1"))

	const turns = 8
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.HandleMessage(ctx, fmt.Sprintf("question %d", n))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	msgs, err := store.GetMessages(ctx)
	assert.NoError(t, err)
	assert.Len(t, msgs, 2*turns)
}

func Test_OnActiveUserProfile_ShouldShapePrompt(t *testing.T) {
	gen := &fakeGenerator{text: "A long enough model answer."}
	svc, store := newService(gen, fakeAdvisor{reply: "rule engine answer"})
	ctx := context.Background()

	assert.NoError(t, store.SaveUsers(ctx, []user.Record{{
		ID:          "u1",
		FullName:    "Sam Lee",
		Demographic: &user.Demographic{Type: user.Student},
	}}))
	assert.NoError(t, store.SetActiveUser(ctx, "u1"))

	_, err := svc.HandleMessage(ctx, "how should I save?")

	assert.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, "casual tone")
	assert.Contains(t, gen.lastPrompt, "simple depth")
	assert.Contains(t, gen.lastPrompt, "user: how should I save?")
}
