package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/chat"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/goal"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/user"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

// PostgresStorage keeps the key-value layout in a single kv table:
// kv(key text primary key, value text, updated_at timestamptz).
type PostgresStorage struct {
	db       *sql.DB
	notifier *notifier
}

var _ Store = (*PostgresStorage)(nil)

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db: db, notifier: newNotifier()}, nil
}

func (s *PostgresStorage) get(ctx context.Context, key string) (string, error) {
	query := psql.Select("value").
		From("kv").
		Where(sq.Eq{"key": key})

	var value string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "get value")
	}
	return value, nil
}

func (s *PostgresStorage) put(ctx context.Context, key, value string) error {
	query := psql.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = ?",
			value, time.Now())

	_, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "put value")
	}
	s.notifier.notify()
	return nil
}

func (s *PostgresStorage) delete(ctx context.Context, keys ...string) error {
	query := psql.Delete("kv").Where(sq.Eq{"key": keys})
	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "delete keys")
}

func (s *PostgresStorage) GetUsers(ctx context.Context) ([]user.Record, error) {
	raw, err := s.get(ctx, usersKey)
	if err != nil {
		return nil, errors.Wrap(err, "get users")
	}
	var users []user.Record
	decodeOr(raw, &users)
	return users, nil
}

func (s *PostgresStorage) SaveUsers(ctx context.Context, users []user.Record) error {
	raw, err := encode(users)
	if err != nil {
		return errors.Wrap(err, "save users")
	}
	return s.put(ctx, usersKey, raw)
}

func (s *PostgresStorage) ActiveUser(ctx context.Context) (string, error) {
	return s.get(ctx, sessionKey)
}

func (s *PostgresStorage) SetActiveUser(ctx context.Context, id string) error {
	return s.put(ctx, sessionKey, id)
}

func (s *PostgresStorage) GetFinancialData(ctx context.Context) (finance.Data, error) {
	active, err := s.ActiveUser(ctx)
	if err != nil {
		return finance.Data{}, err
	}
	raw, err := s.get(ctx, finDataKeyPrefix+active)
	if err != nil {
		return finance.Data{}, errors.Wrap(err, "get financial data")
	}
	var data finance.Data
	decodeOr(raw, &data)
	return data, nil
}

func (s *PostgresStorage) SaveFinancialData(ctx context.Context, data finance.Data) error {
	active, err := s.ActiveUser(ctx)
	if err != nil {
		return err
	}
	data.Recompute()
	raw, err := encode(data)
	if err != nil {
		return errors.Wrap(err, "save financial data")
	}
	return s.put(ctx, finDataKeyPrefix+active, raw)
}

func (s *PostgresStorage) GetGoals(ctx context.Context) ([]goal.SavingsGoal, error) {
	active, err := s.ActiveUser(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := s.get(ctx, goalsKeyPrefix+active)
	if err != nil {
		return nil, errors.Wrap(err, "get goals")
	}
	var goals []goal.SavingsGoal
	decodeOr(raw, &goals)
	return goals, nil
}

func (s *PostgresStorage) SaveGoals(ctx context.Context, goals []goal.SavingsGoal) error {
	active, err := s.ActiveUser(ctx)
	if err != nil {
		return err
	}
	raw, err := encode(goals)
	if err != nil {
		return errors.Wrap(err, "save goals")
	}
	return s.put(ctx, goalsKeyPrefix+active, raw)
}

func (s *PostgresStorage) GetMessages(ctx context.Context) ([]chat.Message, error) {
	active, err := s.ActiveUser(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := s.get(ctx, chatKeyPrefix+active)
	if err != nil {
		return nil, errors.Wrap(err, "get messages")
	}
	var msgs []chat.Message
	decodeOr(raw, &msgs)
	return msgs, nil
}

func (s *PostgresStorage) SaveMessages(ctx context.Context, msgs []chat.Message) error {
	active, err := s.ActiveUser(ctx)
	if err != nil {
		return err
	}
	raw, err := encode(msgs)
	if err != nil {
		return errors.Wrap(err, "save messages")
	}
	return s.put(ctx, chatKeyPrefix+active, raw)
}

func (s *PostgresStorage) Subscribe(fn func()) func() {
	return s.notifier.subscribe(fn)
}

func (s *PostgresStorage) ClearAll(ctx context.Context) error {
	active, err := s.ActiveUser(ctx)
	if err != nil {
		return err
	}
	err = s.delete(ctx,
		finDataKeyPrefix+active,
		goalsKeyPrefix+active,
		chatKeyPrefix+active,
		usersKey,
		sessionKey,
	)
	if err != nil {
		return errors.Wrap(err, "clear all")
	}
	s.notifier.notify()
	return nil
}
