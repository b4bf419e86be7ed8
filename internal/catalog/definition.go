package catalog

import (
	"fmt"

	"dnf_market/internal/domain/entity"
	"dnf_market/internal/domain/value"
)

const (
	TypeSingle  = "single"
	TypePackage = "package"
)

// Definition: описание айтема в каталоге. Формат общий для встроенного
// JSON и колонки definition в Postgres.
type Definition struct {
	Type         string              `json:"type" validate:"required,oneof=single package"`
	Name         string              `json:"name" validate:"required"`
	ItemID       string              `json:"itemId,omitempty" validate:"required_if=Type single"`
	CashPrice    int64               `json:"cashPrice" validate:"required,gt=0,lte=1000000000000"`
	Items        []EntryDefinition   `json:"items,omitempty" validate:"required_if=Type package,dive"`
	BonusItems   []EntryDefinition   `json:"bonusItems,omitempty" validate:"dive"`
	BonusChoices [][]EntryDefinition `json:"bonusChoices,omitempty" validate:"dive,min=1,dive"`
}

type EntryDefinition struct {
	ItemID  string `json:"itemId" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Count   int64  `json:"count" validate:"required,gte=1,lte=1000000"`
	IsBound bool   `json:"isBound"`
}

func (d Definition) ToEntity() (entity.CashItem, error) {
	switch d.Type {
	case TypeSingle:
		id, err := value.ParseItemID(d.ItemID)
		if err != nil {
			return nil, fmt.Errorf("value.ParseItemID: %w", err)
		}

		return entity.SingleItem{
			Name:      d.Name,
			ItemID:    id,
			CashPrice: d.CashPrice,
		}, nil
	case TypePackage:
		if len(d.Items) == 0 {
			return nil, fmt.Errorf("package %q has no components", d.Name)
		}

		items, err := toEntries(d.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}

		bonus, err := toEntries(d.BonusItems)
		if err != nil {
			return nil, fmt.Errorf("bonusItems: %w", err)
		}

		var choices []entity.BonusChoice

		for _, options := range d.BonusChoices {
			entries, err := toEntries(options)
			if err != nil {
				return nil, fmt.Errorf("bonusChoices: %w", err)
			}

			choices = append(choices, entity.BonusChoice{Options: entries})
		}

		return entity.PackageItem{
			Name:         d.Name,
			CashPrice:    d.CashPrice,
			Items:        items,
			BonusItems:   bonus,
			BonusChoices: choices,
		}, nil
	default:
		return nil, fmt.Errorf("unknown item type %q", d.Type)
	}
}

// FromEntity: обратное преобразование, используется при сохранении.
func FromEntity(item entity.CashItem) Definition {
	switch it := item.(type) {
	case entity.SingleItem:
		return Definition{
			Type:      TypeSingle,
			Name:      it.Name,
			ItemID:    it.ItemID.String(),
			CashPrice: it.CashPrice,
		}
	case entity.PackageItem:
		d := Definition{
			Type:       TypePackage,
			Name:       it.Name,
			CashPrice:  it.CashPrice,
			Items:      fromEntries(it.Items),
			BonusItems: fromEntries(it.BonusItems),
		}

		for _, choice := range it.BonusChoices {
			d.BonusChoices = append(d.BonusChoices, fromEntries(choice.Options))
		}

		return d
	default:
		return Definition{Name: item.DisplayName(), CashPrice: item.Price()}
	}
}

func toEntries(defs []EntryDefinition) ([]entity.Entry, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	entries := make([]entity.Entry, 0, len(defs))

	for _, d := range defs {
		id, err := value.ParseItemID(d.ItemID)
		if err != nil {
			return nil, fmt.Errorf("value.ParseItemID: %w", err)
		}

		entries = append(entries, entity.Entry{
			ItemID:  id,
			Name:    d.Name,
			Count:   d.Count,
			IsBound: d.IsBound,
		})
	}

	return entries, nil
}

func fromEntries(entries []entity.Entry) []EntryDefinition {
	if len(entries) == 0 {
		return nil
	}

	defs := make([]EntryDefinition, 0, len(entries))

	for _, e := range entries {
		defs = append(defs, EntryDefinition{
			ItemID:  e.ItemID.String(),
			Name:    e.Name,
			Count:   e.Count,
			IsBound: e.IsBound,
		})
	}

	return defs
}
