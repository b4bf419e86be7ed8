package application

import (
	"context"
	"fmt"
	"log/slog"

	"dnf_market/internal/catalog"
	"dnf_market/internal/config"
	"dnf_market/internal/domain/entity"
	"dnf_market/internal/domain/service/efficiency"
	"dnf_market/internal/domain/service/market"
	"dnf_market/internal/infrastructure/neople"
	"dnf_market/internal/infrastructure/persistence"
	"dnf_market/internal/infrastructure/salecache"
	"dnf_market/pkg/application/connectors"
	"dnf_market/pkg/logx"
)

type catalogSource interface {
	List(ctx context.Context) ([]entity.CashItem, error)
}

// Dependencies: собранный граф сервисов, общий для API и CLI.
type Dependencies struct {
	Market     *market.Service
	Calculator *efficiency.Calculator
	Catalog    catalogSource

	closers []func(ctx context.Context)
}

func NewDependencies(ctx context.Context, cfg config.Config) (*Dependencies, error) {
	deps := &Dependencies{}

	client, err := neople.NewClient(neople.Options{
		BaseURL:        cfg.Neople.BaseURL,
		APIKey:         cfg.Neople.APIKey,
		RequestTimeout: cfg.Neople.RequestTimeout,
		LogFieldMaxLen: cfg.App.LogFieldMaxLen,
	})
	if err != nil {
		return nil, fmt.Errorf("neople.NewClient: %w", err)
	}

	deps.Market = market.NewService(client).
		WithCache(deps.saleCache(ctx, cfg)).
		WithSaleLimit(cfg.Neople.SaleLimit).
		WithRecentWindow(cfg.Neople.RecentWindow).
		WithMaxConcurrency(cfg.Neople.MaxConcurrency)

	deps.Calculator = efficiency.NewCalculator(deps.Market)

	deps.Catalog, err = deps.catalog(ctx, cfg)
	if err != nil {
		deps.Close(ctx)
		return nil, fmt.Errorf("catalog: %w", err)
	}

	return deps, nil
}

func (d *Dependencies) Close(ctx context.Context) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i](ctx)
	}
}

// saleCache возвращает nil при CacheTTL <= 0: история продаж не кэшируется.
func (d *Dependencies) saleCache(ctx context.Context, cfg config.Config) market.SaleCache {
	if cfg.Neople.CacheTTL <= 0 {
		logger(ctx).Info("sale cache disabled")
		return nil
	}

	memory := salecache.NewMemory(cfg.Neople.CacheTTL)

	if cfg.Redis.Addr == "" {
		return memory
	}

	rc := &connectors.Redis{
		Address:        cfg.Redis.Addr,
		Username:       cfg.Redis.Username,
		Password:       cfg.Redis.Password,
		DatabaseNumber: cfg.Redis.DB,
		PoolSize:       cfg.Redis.PoolSize,
	}
	d.closers = append(d.closers, rc.Close)

	return salecache.NewLayered(memory, salecache.NewRedis(rc.Client(ctx), cfg.Neople.CacheTTL))
}

func (d *Dependencies) catalog(ctx context.Context, cfg config.Config) (catalogSource, error) {
	defaults, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("catalog.Default: %w", err)
	}

	if cfg.App.CatalogSource != config.CatalogSourcePostgres {
		return catalog.NewStatic(defaults), nil
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	d.closers = append(d.closers, pg.Close)

	repo := persistence.NewCatalogRepository(pg.Client(ctx))

	items, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	if len(items) == 0 {
		if err := repo.Replace(ctx, defaults); err != nil {
			return nil, fmt.Errorf("repo.Replace: %w", err)
		}

		logger(ctx).Info("catalog seeded with default items", slog.Int(logx.FieldCount, len(defaults)))
	}

	return repo, nil
}
