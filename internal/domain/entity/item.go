package entity

import "dnf_market/internal/domain/value"

// CashItem: айтем кэш-магазина: SingleItem или PackageItem.
type CashItem interface {
	DisplayName() string
	Price() int64

	cashItem()
}

// SingleItem продаётся за кэш и сам торгуется на аукционе.
type SingleItem struct {
	Name      string
	ItemID    value.ItemID
	CashPrice int64
}

func (i SingleItem) DisplayName() string { return i.Name }
func (i SingleItem) Price() int64 { return i.CashPrice }
func (SingleItem) cashItem() {}

// PackageItem: набор компонентов. BonusItems и BonusChoices выдаются
// один раз за десять покупок пакета.
type PackageItem struct {
	Name         string
	CashPrice    int64
	Items        []Entry
	BonusItems   []Entry
	BonusChoices []BonusChoice
}

func (i PackageItem) DisplayName() string { return i.Name }
func (i PackageItem) Price() int64 { return i.CashPrice }
func (PackageItem) cashItem() {}

// ItemIDs returns every id referenced by components and bonuses, in
// declaration order, duplicates included.
func (i PackageItem) ItemIDs() []value.ItemID {
	ids := make([]value.ItemID, 0, len(i.Items)+len(i.BonusItems))

	for _, e := range i.Items {
		ids = append(ids, e.ItemID)
	}

	for _, e := range i.BonusItems {
		ids = append(ids, e.ItemID)
	}

	for _, choice := range i.BonusChoices {
		for _, e := range choice.Options {
			ids = append(ids, e.ItemID)
		}
	}

	return ids
}

// Entry: компонент пакета или бонус.
type Entry struct {
	ItemID  value.ItemID
	Name    string
	Count   int64
	IsBound bool // нельзя перепродать, ценность считается отдельно
}

// BonusChoice: бонус, где игрок выбирает один из вариантов.
type BonusChoice struct {
	Options []Entry
}
