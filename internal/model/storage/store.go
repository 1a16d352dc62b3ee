package storage

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/chat"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/goal"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/user"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"
)

// Key layout. Users and session are global; everything else is
// namespaced by the active user id.
const (
	usersKey   = "finova:users"
	sessionKey = "finova:session"

	finDataKeyPrefix = "finova:findata:"
	goalsKeyPrefix   = "finova:goals:"
	chatKeyPrefix    = "finova:chat:"
)

// Store is the key-value persistence contract. Values are stored as
// JSON text. There is no atomicity across keys: callers that update
// several keys observe each write independently.
type Store interface {
	GetUsers(ctx context.Context) ([]user.Record, error)
	SaveUsers(ctx context.Context, users []user.Record) error

	ActiveUser(ctx context.Context) (string, error)
	SetActiveUser(ctx context.Context, id string) error

	GetFinancialData(ctx context.Context) (finance.Data, error)
	SaveFinancialData(ctx context.Context, data finance.Data) error

	GetGoals(ctx context.Context) ([]goal.SavingsGoal, error)
	SaveGoals(ctx context.Context, goals []goal.SavingsGoal) error

	GetMessages(ctx context.Context) ([]chat.Message, error)
	SaveMessages(ctx context.Context, msgs []chat.Message) error

	Subscribe(fn func()) (unsubscribe func())
	ClearAll(ctx context.Context) error
}

// notifier is the observer registry owned by a store value. Fan-out is
// synchronous and happens after every mutating call, outside the
// store's own lock. A listener that writes back into the store
// recurses; that is the listener's problem, not a guarantee.
type notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func()
}

func newNotifier() *notifier {
	return &notifier{listeners: make(map[int]func())}
}

func (n *notifier) subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		n.invoke(fn)
	}
}

// invoke isolates a panicking listener so one bad subscriber cannot
// take down the mutation that triggered it.
func (n *notifier) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("store listener panicked", zap.Any("panic", r))
		}
	}()
	fn()
}

// decodeOr unmarshals stored text into out, substituting the zero
// value on corrupted text. Decode failures are logged, never surfaced.
func decodeOr(raw string, out interface{}) {
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Warn("corrupted stored record, using default", zap.Error(err))
	}
}

func encode(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
