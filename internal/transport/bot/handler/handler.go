package handler

import (
	"context"

	"dnf_market/internal/domain/entity"
	"dnf_market/internal/domain/value"
	"dnf_market/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const catalogPageSize = 10

//go:generate moq -rm -out reporter_mock.gen.go . Reporter
type Reporter interface {
	RunOnce(ctx context.Context) error
	Start(ctx context.Context) error
	Stop()
	IsRunning() bool
}

type Pricer interface {
	UnitPrice(ctx context.Context, itemID value.ItemID) (int64, error)
}

type Catalog interface {
	List(ctx context.Context) ([]entity.CashItem, error)
}

type Handler struct {
	reporter Reporter
	pricer   Pricer
	catalog  Catalog
}

func New(reporter Reporter, pricer Pricer, catalog Catalog) *Handler {
	return &Handler{
		reporter: reporter,
		pricer:   pricer,
		catalog:  catalog,
	}
}
