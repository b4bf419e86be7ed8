package persistence

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"dnf_market/internal/catalog"
	"dnf_market/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// cashItemSchema: строка таблицы cash_items.
type cashItemSchema struct {
	Name       string    `db:"name"`
	Position   int       `db:"position"`
	Definition []byte    `db:"definition"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func fromCashItem(item entity.CashItem, position int) (cashItemSchema, error) {
	definition, err := json.Marshal(catalog.FromEntity(item))
	if err != nil {
		return cashItemSchema{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return cashItemSchema{
		Name:       item.DisplayName(),
		Position:   position,
		Definition: definition,
		UpdatedAt:  time.Now(),
	}, nil
}

func (s cashItemSchema) toDefinition() (catalog.Definition, error) {
	var d catalog.Definition

	if err := json.Unmarshal(s.Definition, &d); err != nil {
		return catalog.Definition{}, fmt.Errorf("json.Unmarshal %q: %w", s.Name, err)
	}

	return d, nil
}
