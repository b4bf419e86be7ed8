package salecache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"dnf_market/internal/domain/entity"
)

// Memory держит истории продаж в памяти процесса.
type Memory struct {
	items *cache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		items: cache.New(ttl, 2*ttl),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]entity.SaleRecord, bool) {
	v, ok := m.items.Get(key)
	if !ok {
		return nil, false
	}

	records, ok := v.([]entity.SaleRecord)

	return records, ok
}

func (m *Memory) Set(_ context.Context, key string, records []entity.SaleRecord) {
	m.items.Set(key, records, cache.DefaultExpiration)
}
