package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dnf_market/internal/config"
	"dnf_market/internal/infrastructure/salecache"
)

func TestSaleCache(t *testing.T) {
	testCases := []struct {
		name       string
		ttl        time.Duration
		wantCached bool
	}{
		{name: "Default TTL", ttl: 5 * time.Minute, wantCached: true},
		{name: "Zero TTL disables cache", ttl: 0},
		{name: "Negative TTL disables cache", ttl: -time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var cfg config.Config
			cfg.Neople.CacheTTL = tc.ttl

			deps := &Dependencies{}
			cache := deps.saleCache(context.Background(), cfg)

			if !tc.wantCached {
				rq.Nil(cache)
				return
			}

			rq.IsType(&salecache.Memory{}, cache)
			rq.Empty(deps.closers)
		})
	}
}
