// Package insights produces the asynchronous spending reports behind
// the "insights" panel. Requests arrive over Kafka, reports land in
// the cache, and the serving path only ever reads the cache.
package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/finance"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/analytics"
)

// Request asks for one user's insight report over a period
// ("" = all time, "week", "month", "year").
type Request struct {
	UserID string `json:"userId"`
	Period string `json:"period"`
}

// Periods a report can cover. Resolved at generation time, not at
// package init, so long-running workers stay correct across boundary
// crossings.
func periodStart(period string) (time.Time, error) {
	switch period {
	case "":
		return time.Time{}, nil
	case "week":
		return now.BeginningOfWeek(), nil
	case "month":
		return now.BeginningOfMonth(), nil
	case "year":
		return now.BeginningOfYear(), nil
	}
	return time.Time{}, fmt.Errorf("period %s is not supported", period)
}

// AllPeriods lists every cacheable period, used for invalidation.
var AllPeriods = []string{"", "week", "month", "year"}

type userStorage interface {
	SetActiveUser(ctx context.Context, id string) error
	GetFinancialData(ctx context.Context) (finance.Data, error)
}

type reportCache interface {
	CacheInsight(userID, period, report string) error
}

type Generator struct {
	storage userStorage
	cache   reportCache
}

func NewGenerator(storage userStorage, cache reportCache) *Generator {
	return &Generator{storage: storage, cache: cache}
}

// HandleRequest generates the report for one request and stores it in
// the cache. The worker owns its own storage session, so switching the
// active user here is safe.
func (g *Generator) HandleRequest(ctx context.Context, req Request) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateInsight")
	defer span.Finish()
	span.SetTag("userID", req.UserID)

	logger.Info("generate insight - start", zap.String("userID", req.UserID), zap.String("period", req.Period))
	defer logger.Info("generate insight - end")

	if err := g.storage.SetActiveUser(ctx, req.UserID); err != nil {
		return errors.Wrap(err, "generate insight")
	}
	data, err := g.storage.GetFinancialData(ctx)
	if err != nil {
		return errors.Wrap(err, "generate insight")
	}

	report, err := Generate(&data, req.Period)
	if err != nil {
		return errors.Wrap(err, "generate insight")
	}

	return errors.Wrap(g.cache.CacheInsight(req.UserID, req.Period, report), "cache insight")
}

// Generate renders the text report for one snapshot and period.
func Generate(data *finance.Data, period string) (string, error) {
	start, err := periodStart(period)
	if err != nil {
		return "", err
	}

	scoped := *data
	scoped.ExpenseBreakdown = filterEntriesAfter(data.ExpenseBreakdown, start)
	scoped.ExpenseHistory = filterRecordsAfter(data.ExpenseHistory, start)

	return analytics.Render(analytics.Summarize(&scoped)), nil
}

func filterEntriesAfter(entries []finance.ExpenseEntry, after time.Time) []finance.ExpenseEntry {
	res := make([]finance.ExpenseEntry, 0, len(entries))
	for _, e := range entries {
		if after.Before(e.Date) {
			res = append(res, e)
		}
	}
	return res
}

func filterRecordsAfter(recs []finance.ExpenseRecord, after time.Time) []finance.ExpenseRecord {
	res := make([]finance.ExpenseRecord, 0, len(recs))
	for _, r := range recs {
		if after.Before(r.Date) {
			res = append(res, r)
		}
	}
	return res
}
