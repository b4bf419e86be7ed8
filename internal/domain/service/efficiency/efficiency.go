package efficiency

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"dnf_market/internal/domain"
	"dnf_market/internal/domain/entity"
	"dnf_market/internal/domain/value"
	"dnf_market/pkg/logx"
)

const (
	packageMultiplier = 10

	suffixSingle    = " (1 purchase)"
	suffixPackage10 = " (10 purchases)"
)

type MarketData interface {
	UnitPrice(ctx context.Context, itemID value.ItemID) (int64, error)
	FetchManyUnitPrices(ctx context.Context, itemIDs []value.ItemID) (map[value.ItemID]int64, error)
}

// Calculator не хранит состояния между вызовами.
type Calculator struct {
	market MarketData
}

func NewCalculator(market MarketData) *Calculator {
	return &Calculator{market: market}
}

// Compute считает эффективность одного айтема. Для пакета возвращается
// также результат десяти покупок.
func (c *Calculator) Compute(ctx context.Context, item entity.CashItem) (entity.EfficiencyPair, error) {
	switch it := item.(type) {
	case entity.SingleItem:
		return c.computeSingle(ctx, it)
	case entity.PackageItem:
		return c.computePackage(ctx, it)
	default:
		return entity.EfficiencyPair{}, domain.NewCalculationError(
			item.DisplayName(),
			fmt.Errorf("unsupported item type %T", item),
		)
	}
}

func (c *Calculator) computeSingle(ctx context.Context, item entity.SingleItem) (entity.EfficiencyPair, error) {
	price, err := c.market.UnitPrice(ctx, item.ItemID)
	if err != nil {
		return entity.EfficiencyPair{}, domain.NewCalculationError(item.Name, err)
	}

	return entity.EfficiencyPair{
		Single: newEfficiency(item.Name, item.CashPrice, float64(price), 0),
	}, nil
}

func (c *Calculator) computePackage(ctx context.Context, item entity.PackageItem) (entity.EfficiencyPair, error) {
	if item.CashPrice > math.MaxInt64/packageMultiplier {
		return entity.EfficiencyPair{}, domain.NewCalculationError(
			item.Name,
			fmt.Errorf("cash price %d is too large for %d purchases", item.CashPrice, packageMultiplier),
		)
	}

	quotes, err := c.market.FetchManyUnitPrices(ctx, item.ItemIDs())
	if err != nil {
		return entity.EfficiencyPair{}, domain.NewCalculationError(item.Name, err)
	}

	var single accumulator
	for _, e := range item.Items {
		single.add(e, quotes[e.ItemID])
	}

	package10 := single.scale(packageMultiplier)

	for _, e := range item.BonusItems {
		package10.add(e, quotes[e.ItemID])
	}

	var selected []string

	for _, choice := range item.BonusChoices {
		option, ok := cheapestOption(choice, quotes)
		if !ok {
			continue
		}

		package10.add(option, quotes[option.ItemID])
		selected = append(selected, option.Name)
	}

	result10 := newEfficiency(
		item.Name+suffixPackage10,
		item.CashPrice*packageMultiplier,
		package10.tradeable,
		package10.bound,
	)
	result10.SelectedBonusItems = selected

	return entity.EfficiencyPair{
		Single:    newEfficiency(item.Name+suffixSingle, item.CashPrice, single.tradeable, single.bound),
		Package10: &result10,
	}, nil
}

// ComputeBatch считает айтемы по очереди. Айтем, расчёт которого упал,
// логируется и не попадает в результат.
func (c *Calculator) ComputeBatch(ctx context.Context, items []entity.CashItem) map[string]entity.EfficiencyPair {
	results := make(map[string]entity.EfficiencyPair, len(items))

	for _, item := range items {
		pair, err := c.Compute(ctx, item)
		if err != nil {
			logger(ctx).Error("failed to calculate efficiency",
				slog.String(logx.FieldItemName, item.DisplayName()),
				logx.Error(err),
			)
			continue
		}

		results[item.DisplayName()] = pair
	}

	return results
}

// cheapestOption выбирает вариант с минимальной ценой среди имеющих котировку.
func cheapestOption(choice entity.BonusChoice, quotes map[value.ItemID]int64) (entity.Entry, bool) {
	var (
		best      entity.Entry
		bestPrice float64
		found     bool
	)

	for _, option := range choice.Options {
		quote := quotes[option.ItemID]
		if quote <= 0 {
			continue
		}

		// float64: quote*count не должен переполняться
		total := float64(quote) * float64(option.Count)
		if !found || total < bestPrice {
			best, bestPrice, found = option, total, true
		}
	}

	return best, found
}

type accumulator struct {
	tradeable float64
	bound     float64
}

func (a *accumulator) add(e entity.Entry, quote int64) {
	v := float64(quote) * float64(e.Count)

	if e.IsBound {
		a.bound += v
	} else {
		a.tradeable += v
	}
}

func (a accumulator) scale(n int64) accumulator {
	return accumulator{
		tradeable: a.tradeable * float64(n),
		bound:     a.bound * float64(n),
	}
}

func newEfficiency(name string, cashPrice int64, tradeable, bound float64) entity.Efficiency {
	total := math.Round(tradeable + bound)

	return entity.Efficiency{
		ItemName:       name,
		CashPrice:      cashPrice,
		TradeableValue: int64(math.Round(tradeable)),
		BoundValue:     int64(math.Round(bound)),
		TotalValue:     int64(total),
		Efficiency:     total / float64(cashPrice),
	}
}
