package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"

	"dnf_market/internal/domain/entity"
	"dnf_market/pkg/errcodes"
	"dnf_market/pkg/httpx/reply"
	"dnf_market/pkg/httpx/req"
	"dnf_market/pkg/rest"
)

type calculator interface {
	Compute(ctx context.Context, item entity.CashItem) (entity.EfficiencyPair, error)
	ComputeBatch(ctx context.Context, items []entity.CashItem) map[string]entity.EfficiencyPair
}

type catalogSource interface {
	List(ctx context.Context) ([]entity.CashItem, error)
}

type EfficiencyServer struct {
	calculator calculator
	catalog    catalogSource
	now        func() time.Time
}

func NewEfficiencyServer(calculator calculator, catalog catalogSource) EfficiencyServer {
	return EfficiencyServer{
		calculator: calculator,
		catalog:    catalog,
		now:        time.Now,
	}
}

func (s EfficiencyServer) getV1ItemsEfficiency(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	items, err := s.catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("catalog.List: %w", err)
	}

	results := s.calculator.ComputeBatch(ctx, items)

	response := rest.CatalogEfficiency{
		Items:     make(map[string]rest.EfficiencyPair, len(results)),
		Timestamp: s.now().Format(time.RFC3339),
	}

	for name, pair := range results {
		response.Items[name] = newRESTEfficiencyPair(pair)
	}

	reply.JSON(ctx, w, http.StatusOK, response)

	return nil
}

func (s EfficiencyServer) postV1ItemsEfficiency(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CashItem

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	item, err := newDomainCashItem(request)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newDomainCashItem: %w", err),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(innermostError(err)),
		)
	}

	pair, err := s.calculator.Compute(ctx, item)
	if err != nil {
		return fmt.Errorf("calculator.Compute: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTEfficiencyPair(pair))

	return nil
}

func (s EfficiencyServer) getV1ItemsHealth(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Health{
		Status:    "ok",
		Timestamp: s.now().Format(time.RFC3339),
	})

	return nil
}
