package catalog

import (
	"context"
	"slices"

	"dnf_market/internal/domain/entity"
)

// Static: каталог, загруженный один раз при старте.
type Static struct {
	items []entity.CashItem
}

func NewStatic(items []entity.CashItem) Static {
	return Static{items: items}
}

func (s Static) List(context.Context) ([]entity.CashItem, error) {
	return slices.Clone(s.items), nil
}
