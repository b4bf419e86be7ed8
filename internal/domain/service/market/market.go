package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"dnf_market/internal/domain"
	"dnf_market/internal/domain/entity"
	"dnf_market/internal/domain/value"
	"dnf_market/pkg/logx"
)

const (
	DefaultSaleLimit      = 100
	DefaultRecentWindow   = 10
	DefaultMaxConcurrency = 8
)

//go:generate moq -rm -out auction_client_mock.gen.go . AuctionClient
type AuctionClient interface {
	GetAuctionSold(ctx context.Context, itemID value.ItemID, limit int) ([]entity.SaleRecord, error)
}

type SaleCache interface {
	Get(ctx context.Context, key string) ([]entity.SaleRecord, bool)
	Set(ctx context.Context, key string, records []entity.SaleRecord)
}

type Service struct {
	client         AuctionClient
	cache          SaleCache
	saleLimit      int
	recentWindow   int
	maxConcurrency int
}

func NewService(client AuctionClient) *Service {
	return &Service{
		client:         client,
		cache:          nopCache{},
		saleLimit:      DefaultSaleLimit,
		recentWindow:   DefaultRecentWindow,
		maxConcurrency: DefaultMaxConcurrency,
	}
}

func (s *Service) WithCache(cache SaleCache) *Service {
	if cache != nil {
		s.cache = cache
	}
	return s
}

func (s *Service) WithSaleLimit(limit int) *Service {
	if limit > 0 {
		s.saleLimit = limit
	}
	return s
}

func (s *Service) WithRecentWindow(window int) *Service {
	if window > 0 {
		s.recentWindow = window
	}
	return s
}

func (s *Service) WithMaxConcurrency(n int) *Service {
	if n > 0 {
		s.maxConcurrency = n
	}
	return s
}

// FetchSaleHistory возвращает последние limit сделок по айтему, свежие первыми.
// Любая ошибка имеет тип *domain.MarketQueryError.
func (s *Service) FetchSaleHistory(ctx context.Context, itemID value.ItemID, limit int) ([]entity.SaleRecord, error) {
	if limit <= 0 {
		limit = s.saleLimit
	}

	key := cacheKey(itemID, limit)

	if records, ok := s.cache.Get(ctx, key); ok {
		return records, nil
	}

	records, err := s.client.GetAuctionSold(ctx, itemID, limit)
	if err != nil {
		var marketErr *domain.MarketQueryError
		if errors.As(err, &marketErr) {
			return nil, err
		}
		return nil, domain.NewMarketQueryError(itemID, 0, err)
	}

	s.cache.Set(ctx, key, records)

	return records, nil
}

// UnitPrice: котировка одного айтема. Ошибка запроса возвращается как есть.
func (s *Service) UnitPrice(ctx context.Context, itemID value.ItemID) (int64, error) {
	records, err := s.FetchSaleHistory(ctx, itemID, s.saleLimit)
	if err != nil {
		return 0, err
	}

	return AverageUnitPrice(records, s.recentWindow), nil
}

// FetchManyUnitPrices запрашивает все айтемы параллельно. Неудачный запрос
// даёт котировку 0 и не прерывает остальные. Ошибка возвращается только
// если отменён сам ctx.
func (s *Service) FetchManyUnitPrices(ctx context.Context, itemIDs []value.ItemID) (map[value.ItemID]int64, error) {
	ids := lo.Uniq(itemIDs)
	quotes := make([]int64, len(ids))

	g := new(errgroup.Group)
	g.SetLimit(s.maxConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			records, err := s.FetchSaleHistory(ctx, id, s.saleLimit)
			if err != nil {
				logger(ctx).Warn("market lookup failed, using zero quote",
					slog.String(logx.FieldItemID, id.String()),
					logx.Error(err),
				)
				records = nil
			}

			quotes[i] = AverageUnitPrice(records, s.recentWindow)

			return nil
		})
	}

	_ = g.Wait() // задачи не возвращают ошибок

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch unit prices: %w", err)
	}

	result := make(map[value.ItemID]int64, len(ids))
	for i, id := range ids {
		result[id] = quotes[i]
	}

	return result, nil
}

// AverageUnitPrice: округлённое среднее UnitPrice первых count сделок.
// Пустой список даёт 0.
func AverageUnitPrice(records []entity.SaleRecord, count int) int64 {
	if count <= 0 {
		count = DefaultRecentWindow
	}

	if len(records) == 0 {
		return 0
	}

	recent := records[:min(count, len(records))]

	var sum int64
	for _, r := range recent {
		sum += r.UnitPrice
	}

	return int64(math.Round(float64(sum) / float64(len(recent))))
}

func cacheKey(itemID value.ItemID, limit int) string {
	return fmt.Sprintf("%s:%d", itemID, limit)
}

type nopCache struct{}

func (nopCache) Get(context.Context, string) ([]entity.SaleRecord, bool) { return nil, false }
func (nopCache) Set(context.Context, string, []entity.SaleRecord) {}
