package salecache

import (
	"context"

	"dnf_market/internal/domain/entity"
)

type Layer interface {
	Get(ctx context.Context, key string) ([]entity.SaleRecord, bool)
	Set(ctx context.Context, key string, records []entity.SaleRecord)
}

// Layered опрашивает слои по порядку. Попадание в нижнем слое
// поднимается во все слои выше.
type Layered struct {
	layers []Layer
}

func NewLayered(layers ...Layer) *Layered {
	return &Layered{layers: layers}
}

func (l *Layered) Get(ctx context.Context, key string) ([]entity.SaleRecord, bool) {
	for i, c := range l.layers {
		records, ok := c.Get(ctx, key)
		if !ok {
			continue
		}

		for _, upper := range l.layers[:i] {
			upper.Set(ctx, key, records)
		}

		return records, true
	}

	return nil, false
}

func (l *Layered) Set(ctx context.Context, key string, records []entity.SaleRecord) {
	for _, c := range l.layers {
		c.Set(ctx, key, records)
	}
}
