package cache

import (
	"strconv"

	"github.com/pkg/errors"

	"go.uber.org/zap"
	"max.ks1230/finance-tracker/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

var defaultBase = 10

// ErrMiss is returned when no statement is cached for the key. The
// reporter may simply not have processed the request yet.
var ErrMiss = errors.New("statement not ready")

type config interface {
	Hosts() []string
	KeyPrefix() string
}

// MemcacheClient hands finished statements from the reporter process
// to the API server.
type MemcacheClient struct {
	client *memcache.Client
	prefix string
	ttl    int32
}

func NewMemcache(config config, ttlSeconds int32) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{
		client: mc,
		prefix: config.KeyPrefix(),
		ttl:    ttlSeconds,
	}, mc.Ping()
}

func (mc *MemcacheClient) formatKey(userID int64, period string) string {
	return mc.prefix + ":" + strconv.FormatInt(userID, defaultBase) + ":" + period
}

func (mc *MemcacheClient) CacheStatement(userID int64, period string, statement string) error {
	logger.Info("cache statement", zap.Int64("userID", userID), zap.String("period", period))
	return mc.client.Set(&memcache.Item{
		Key:        mc.formatKey(userID, period),
		Value:      []byte(statement),
		Expiration: mc.ttl,
	})
}

func (mc *MemcacheClient) GetStatement(userID int64, period string) (string, error) {
	item, err := mc.client.Get(mc.formatKey(userID, period))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) InvalidateStatements(userID int64, periods []string) error {
	logger.Info("invalidate statements", zap.Int64("userID", userID))

	for _, period := range periods {
		err := mc.client.Delete(mc.formatKey(userID, period))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
