package cache

import (
	"github.com/pkg/errors"

	"go.uber.org/zap"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(userID, period string) string {
	return "insight:" + userID + ":" + period
}

func (mc *MemcacheClient) CacheInsight(userID, period, report string) error {
	logger.Info("cache insight", zap.String("userID", userID), zap.String("period", period))
	return mc.client.Set(&memcache.Item{
		Key:   formatKey(userID, period),
		Value: []byte(report)},
	)
}

// GetInsight returns memcache.ErrCacheMiss when no report has been
// generated yet; callers treat that as "still pending".
func (mc *MemcacheClient) GetInsight(userID, period string) (string, error) {
	logger.Info("get insight from cache", zap.String("userID", userID), zap.String("period", period))
	item, err := mc.client.Get(formatKey(userID, period))
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

// InvalidateInsights drops every cached period for the user, called
// after financial-data writes.
func (mc *MemcacheClient) InvalidateInsights(userID string, periods []string) error {
	logger.Info("invalidate insight cache", zap.String("userID", userID))

	for _, p := range periods {
		err := mc.client.Delete(formatKey(userID, p))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
