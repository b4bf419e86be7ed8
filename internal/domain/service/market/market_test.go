package market_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dnf_market/internal/domain"
	"dnf_market/internal/domain/entity"
	"dnf_market/internal/domain/service/market"
	"dnf_market/internal/domain/value"
)

func records(prices ...int64) []entity.SaleRecord {
	result := make([]entity.SaleRecord, len(prices))
	for i, p := range prices {
		result[i] = entity.SaleRecord{UnitPrice: p, Count: 1, Price: p}
	}
	return result
}

func TestAverageUnitPrice(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		records []entity.SaleRecord
		count   int
		want    int64
	}{
		{
			name:    "Empty list",
			records: nil,
			count:   10,
			want:    0,
		},
		{
			name:    "Ten equal prices",
			records: records(1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000),
			count:   10,
			want:    1000,
		},
		{
			name:    "Fewer records than window",
			records: records(100, 200),
			count:   10,
			want:    150,
		},
		{
			name:    "Only the first count records matter",
			records: records(10, 20, 30, 999999, 999999),
			count:   3,
			want:    20,
		},
		{
			name:    "Rounds half up",
			records: records(1, 2),
			count:   10,
			want:    2,
		},
		{
			name:    "Rounds down below half",
			records: records(1, 1, 2),
			count:   10,
			want:    1,
		},
		{
			name:    "Non-positive window falls back to default",
			records: records(10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 1000),
			count:   0,
			want:    10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.want, market.AverageUnitPrice(tc.records, tc.count))
		})
	}
}

func TestAverageUnitPriceIgnoresRecordsBeyondWindow(t *testing.T) {
	rq := require.New(t)

	base := records(500, 700, 900, 1100, 1300, 1500, 1700, 1900, 2100, 2300)
	want := market.AverageUnitPrice(base, 10)

	for extra := 0; extra < 50; extra++ {
		long := append(append([]entity.SaleRecord{}, base...), records(int64(extra*1000+1))...)
		rq.Equal(want, market.AverageUnitPrice(long, 10))
	}
}

func TestServiceFetchSaleHistory(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := &market.AuctionClientMock{
		GetAuctionSoldFunc: func(_ context.Context, itemID value.ItemID, limit int) ([]entity.SaleRecord, error) {
			switch itemID {
			case "ok":
				return records(1, 2, 3), nil
			case "missing":
				return nil, domain.NewMarketQueryError(itemID, 404, nil)
			default:
				return nil, errors.New("connection refused")
			}
		},
	}

	svc := market.NewService(client)

	got, err := svc.FetchSaleHistory(ctx, "ok", 0)
	rq.NoError(err)
	rq.Len(got, 3)
	rq.Equal(market.DefaultSaleLimit, client.GetAuctionSoldCalls()[0].Limit)

	_, err = svc.FetchSaleHistory(ctx, "missing", 50)
	var marketErr *domain.MarketQueryError
	rq.ErrorAs(err, &marketErr)
	rq.Equal(404, marketErr.StatusCode)
	rq.Equal(value.ItemID("missing"), marketErr.ItemID)
	rq.Equal(50, client.GetAuctionSoldCalls()[1].Limit)

	_, err = svc.FetchSaleHistory(ctx, "broken", 0)
	rq.ErrorAs(err, &marketErr)
	rq.Equal(0, marketErr.StatusCode)
	rq.ErrorContains(err, "connection refused")
}

func TestServiceUnitPrice(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := &market.AuctionClientMock{
		GetAuctionSoldFunc: func(_ context.Context, itemID value.ItemID, _ int) ([]entity.SaleRecord, error) {
			if itemID == "empty" {
				return nil, nil
			}
			return records(100, 200, 300, 400, 500), nil
		},
	}

	svc := market.NewService(client).WithRecentWindow(2)

	price, err := svc.UnitPrice(ctx, "box")
	rq.NoError(err)
	rq.Equal(int64(150), price)

	price, err = svc.UnitPrice(ctx, "empty")
	rq.NoError(err)
	rq.Zero(price)
}

func TestServiceFetchManyUnitPrices(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := &market.AuctionClientMock{
		GetAuctionSoldFunc: func(_ context.Context, itemID value.ItemID, _ int) ([]entity.SaleRecord, error) {
			switch itemID {
			case "a":
				return records(1000), nil
			case "b":
				return records(100, 300), nil
			case "delisted":
				return nil, domain.NewMarketQueryError(itemID, 400, nil)
			default:
				return nil, nil
			}
		},
	}

	svc := market.NewService(client)

	quotes, err := svc.FetchManyUnitPrices(ctx, []value.ItemID{"a", "b", "a", "delisted", "unlisted"})
	rq.NoError(err)
	rq.Equal(map[value.ItemID]int64{
		"a":        1000,
		"b":        200,
		"delisted": 0,
		"unlisted": 0,
	}, quotes)

	// Duplicates are looked up once.
	rq.Len(client.GetAuctionSoldCalls(), 4)
}

func TestServiceFetchManyUnitPricesIsConcurrentAndBounded(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	const limit = 3

	var (
		inFlight atomic.Int32
		peak     atomic.Int32
	)

	client := &market.AuctionClientMock{
		GetAuctionSoldFunc: func(_ context.Context, _ value.ItemID, _ int) ([]entity.SaleRecord, error) {
			current := inFlight.Add(1)
			defer inFlight.Add(-1)

			for {
				old := peak.Load()
				if current <= old || peak.CompareAndSwap(old, current) {
					break
				}
			}

			time.Sleep(20 * time.Millisecond)

			return records(10), nil
		},
	}

	svc := market.NewService(client).WithMaxConcurrency(limit)

	ids := []value.ItemID{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

	quotes, err := svc.FetchManyUnitPrices(ctx, ids)
	rq.NoError(err)
	rq.Len(quotes, len(ids))
	rq.LessOrEqual(peak.Load(), int32(limit))
	rq.Greater(peak.Load(), int32(1))
}

func TestServiceFetchManyUnitPricesCanceled(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &market.AuctionClientMock{
		GetAuctionSoldFunc: func(ctx context.Context, _ value.ItemID, _ int) ([]entity.SaleRecord, error) {
			return nil, ctx.Err()
		},
	}

	_, err := market.NewService(client).FetchManyUnitPrices(ctx, []value.ItemID{"a"})
	rq.ErrorIs(err, context.Canceled)
}

type mapCache struct {
	mu   sync.Mutex
	data map[string][]entity.SaleRecord
}

func (c *mapCache) Get(_ context.Context, key string) ([]entity.SaleRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.data[key]
	return r, ok
}

func (c *mapCache) Set(_ context.Context, key string, records []entity.SaleRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = records
}

func TestServiceUsesCache(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	fail := false

	client := &market.AuctionClientMock{
		GetAuctionSoldFunc: func(_ context.Context, itemID value.ItemID, _ int) ([]entity.SaleRecord, error) {
			if fail {
				return nil, domain.NewMarketQueryError(itemID, 500, nil)
			}
			return records(42), nil
		},
	}

	cache := &mapCache{data: map[string][]entity.SaleRecord{}}
	svc := market.NewService(client).WithCache(cache)

	price, err := svc.UnitPrice(ctx, "box")
	rq.NoError(err)
	rq.Equal(int64(42), price)

	price, err = svc.UnitPrice(ctx, "box")
	rq.NoError(err)
	rq.Equal(int64(42), price)
	rq.Len(client.GetAuctionSoldCalls(), 1)

	// Failures are not cached.
	fail = true

	_, err = svc.UnitPrice(ctx, "other")
	rq.Error(err)

	_, ok := cache.Get(ctx, "other:100")
	rq.False(ok)
}
