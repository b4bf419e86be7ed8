package salecache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"dnf_market/internal/domain/entity"
	"dnf_market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const redisKeyPrefix = "dnf_market:auction-sold:"

// Redis делит истории продаж между инстансами. Ошибки Redis не фатальны:
// они логируются, а запрос уходит в аукцион.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedis(client redis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]entity.SaleRecord, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger(ctx).Warn("redis get failed", slog.String("key", key), logx.Error(err))
		}
		return nil, false
	}

	var records []entity.SaleRecord

	if err := json.Unmarshal(raw, &records); err != nil {
		logger(ctx).Warn("cached sale history is corrupted", slog.String("key", key), logx.Error(err))
		return nil, false
	}

	return records, true
}

func (r *Redis) Set(ctx context.Context, key string, records []entity.SaleRecord) {
	raw, err := json.Marshal(records)
	if err != nil {
		logger(ctx).Warn("json.Marshal", slog.String("key", key), logx.Error(err))
		return
	}

	if err := r.client.Set(ctx, redisKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		logger(ctx).Warn("redis set failed", slog.String("key", key), logx.Error(err))
	}
}
