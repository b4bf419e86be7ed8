package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dnf_market/internal/domain/entity"
	"dnf_market/internal/domain/value"
)

func TestPackageItemItemIDs(t *testing.T) {
	rq := require.New(t)

	item := entity.PackageItem{
		Name:      "growth package",
		CashPrice: 19000,
		Items: []entity.Entry{
			{ItemID: "a", Count: 30, IsBound: true},
			{ItemID: "b", Count: 5},
		},
		BonusItems: []entity.Entry{
			{ItemID: "a", Count: 1},
		},
		BonusChoices: []entity.BonusChoice{
			{Options: []entity.Entry{{ItemID: "c"}, {ItemID: "d"}}},
		},
	}

	rq.Equal([]value.ItemID{"a", "b", "a", "c", "d"}, item.ItemIDs())
	rq.Equal("growth package", item.DisplayName())
	rq.Equal(int64(19000), item.Price())
}

func TestCashItemVariants(t *testing.T) {
	rq := require.New(t)

	items := []entity.CashItem{
		entity.SingleItem{Name: "box", ItemID: "x", CashPrice: 3900},
		entity.PackageItem{Name: "pack", CashPrice: 29000},
	}

	var singles, packages int

	for _, item := range items {
		switch item.(type) {
		case entity.SingleItem:
			singles++
		case entity.PackageItem:
			packages++
		}
	}

	rq.Equal(1, singles)
	rq.Equal(1, packages)
}
