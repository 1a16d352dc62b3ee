package storage

import (
	"context"
	"sync"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/chat"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/goal"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/user"
	"github.com/pkg/errors"
)

// InMemStorage keeps the same text-encoded key-value layout as the
// durable store, in a map guarded by an RWMutex so it can back the
// HTTP server's concurrent handlers. Used by tests and the
// single-process demo mode.
type InMemStorage struct {
	mu       sync.RWMutex
	kv       map[string]string
	notifier *notifier
}

var _ Store = (*InMemStorage)(nil)

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		kv:       make(map[string]string),
		notifier: newNotifier(),
	}
}

func (s *InMemStorage) get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kv[key]
}

// put releases the lock before notifying, so a listener writing back
// recurses instead of deadlocking.
func (s *InMemStorage) put(key, value string) {
	s.mu.Lock()
	s.kv[key] = value
	s.mu.Unlock()
	s.notifier.notify()
}

func (s *InMemStorage) GetUsers(_ context.Context) ([]user.Record, error) {
	var users []user.Record
	decodeOr(s.get(usersKey), &users)
	return users, nil
}

func (s *InMemStorage) SaveUsers(_ context.Context, users []user.Record) error {
	raw, err := encode(users)
	if err != nil {
		return errors.Wrap(err, "save users")
	}
	s.put(usersKey, raw)
	return nil
}

func (s *InMemStorage) ActiveUser(_ context.Context) (string, error) {
	return s.get(sessionKey), nil
}

func (s *InMemStorage) SetActiveUser(_ context.Context, id string) error {
	s.put(sessionKey, id)
	return nil
}

func (s *InMemStorage) activeUser() string {
	return s.get(sessionKey)
}

func (s *InMemStorage) GetFinancialData(_ context.Context) (finance.Data, error) {
	var data finance.Data
	decodeOr(s.get(finDataKeyPrefix+s.activeUser()), &data)
	return data, nil
}

func (s *InMemStorage) SaveFinancialData(_ context.Context, data finance.Data) error {
	data.Recompute()
	raw, err := encode(data)
	if err != nil {
		return errors.Wrap(err, "save financial data")
	}
	s.put(finDataKeyPrefix+s.activeUser(), raw)
	return nil
}

func (s *InMemStorage) GetGoals(_ context.Context) ([]goal.SavingsGoal, error) {
	var goals []goal.SavingsGoal
	decodeOr(s.get(goalsKeyPrefix+s.activeUser()), &goals)
	return goals, nil
}

func (s *InMemStorage) SaveGoals(_ context.Context, goals []goal.SavingsGoal) error {
	raw, err := encode(goals)
	if err != nil {
		return errors.Wrap(err, "save goals")
	}
	s.put(goalsKeyPrefix+s.activeUser(), raw)
	return nil
}

func (s *InMemStorage) GetMessages(_ context.Context) ([]chat.Message, error) {
	var msgs []chat.Message
	decodeOr(s.get(chatKeyPrefix+s.activeUser()), &msgs)
	return msgs, nil
}

func (s *InMemStorage) SaveMessages(_ context.Context, msgs []chat.Message) error {
	raw, err := encode(msgs)
	if err != nil {
		return errors.Wrap(err, "save messages")
	}
	s.put(chatKeyPrefix+s.activeUser(), raw)
	return nil
}

func (s *InMemStorage) Subscribe(fn func()) func() {
	return s.notifier.subscribe(fn)
}

// ClearAll removes the active user's namespaced keys plus the global
// users and session keys. Irreversible.
func (s *InMemStorage) ClearAll(_ context.Context) error {
	active := s.activeUser()

	s.mu.Lock()
	delete(s.kv, finDataKeyPrefix+active)
	delete(s.kv, goalsKeyPrefix+active)
	delete(s.kv, chatKeyPrefix+active)
	delete(s.kv, usersKey)
	delete(s.kv, sessionKey)
	s.mu.Unlock()

	s.notifier.notify()
	return nil
}
