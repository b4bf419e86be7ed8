package server

import (
	"errors"
	"fmt"

	"dnf_market/internal/catalog"
	"dnf_market/internal/domain/entity"
	"dnf_market/pkg/lox"
	"dnf_market/pkg/rest"
)

func newDomainCashItem(item rest.CashItem) (entity.CashItem, error) {
	def := catalog.Definition{
		Type:         string(item.Type),
		Name:         item.Name,
		ItemID:       item.ItemID,
		CashPrice:    item.CashPrice,
		Items:        lox.Map(item.Items, newEntryDefinition),
		BonusItems:   lox.Map(item.BonusItems, newEntryDefinition),
		BonusChoices: lox.Map(item.BonusChoices, func(options []rest.ItemEntry) []catalog.EntryDefinition {
			return lox.Map(options, newEntryDefinition)
		}),
	}

	result, err := def.ToEntity()
	if err != nil {
		return nil, fmt.Errorf("def.ToEntity: %w", err)
	}

	return result, nil
}

func newEntryDefinition(e rest.ItemEntry) catalog.EntryDefinition {
	return catalog.EntryDefinition{
		ItemID:  e.ItemID,
		Name:    e.Name,
		Count:   e.Count,
		IsBound: e.IsBound,
	}
}

func newRESTEfficiency(e entity.Efficiency) rest.Efficiency {
	return rest.Efficiency{
		ItemName:           e.ItemName,
		CashPrice:          e.CashPrice,
		TradeableValue:     e.TradeableValue,
		BoundValue:         e.BoundValue,
		TotalValue:         e.TotalValue,
		Efficiency:         e.Efficiency,
		SelectedBonusItems: e.SelectedBonusItems,
	}
}

func newRESTEfficiencyPair(pair entity.EfficiencyPair) rest.EfficiencyPair {
	result := rest.EfficiencyPair{
		Single: newRESTEfficiency(pair.Single),
	}

	if pair.Package10 != nil {
		package10 := newRESTEfficiency(*pair.Package10)
		result.Package10 = &package10
	}

	return result
}

// innermostError отдаёт текст исходной ошибки без цепочки вызовов.
func innermostError(err error) string {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err.Error()
		}

		err = inner
	}
}
