package catalog_test

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"dnf_market/internal/catalog"
	"dnf_market/internal/domain/entity"
	"dnf_market/internal/domain/value"
)

func TestDefault(t *testing.T) {
	rq := require.New(t)

	items, err := catalog.Default()
	rq.NoError(err)
	rq.Len(items, 6)

	single, ok := items[0].(entity.SingleItem)
	rq.True(ok)
	rq.Equal(value.ItemID("a1cdd9ffbfff08d867d07a86886c6b55"), single.ItemID)
	rq.Equal(int64(3900), single.CashPrice)

	pkg, ok := items[4].(entity.PackageItem)
	rq.True(ok)
	rq.Equal(int64(29000), pkg.CashPrice)
	rq.Len(pkg.Items, 3)
	rq.True(pkg.Items[1].IsBound)
	rq.Len(pkg.BonusChoices, 1)
	rq.Len(pkg.BonusChoices[0].Options, 3)
	rq.Empty(pkg.BonusItems)
}

func TestParse(t *testing.T) {
	rq := require.New(t)

	items, err := catalog.Parse([]byte(`[
		{"type": "single", "name": "Box", "itemId": " box ", "cashPrice": 1000},
		{
			"type": "package",
			"name": "Pack",
			"cashPrice": 5000,
			"items": [{"itemId": "a", "name": "A", "count": 2, "isBound": true}],
			"bonusItems": [{"itemId": "b", "name": "B", "count": 1}]
		}
	]`))
	rq.NoError(err)

	rq.Equal([]entity.CashItem{
		entity.SingleItem{Name: "Box", ItemID: "box", CashPrice: 1000},
		entity.PackageItem{
			Name:       "Pack",
			CashPrice:  5000,
			Items:      []entity.Entry{{ItemID: "a", Name: "A", Count: 2, IsBound: true}},
			BonusItems: []entity.Entry{{ItemID: "b", Name: "B", Count: 1}},
		},
	}, items)
}

func TestParseInvalid(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{
			name: "Malformed JSON",
			data: `[{"type": "single"`,
		},
		{
			name: "Unknown field",
			data: `[{"type": "single", "name": "Box", "itemId": "box", "cashPrice": 1000, "price": 1}]`,
		},
		{
			name: "Unknown type",
			data: `[{"type": "bundle", "name": "Box", "itemId": "box", "cashPrice": 1000}]`,
		},
		{
			name: "Missing name",
			data: `[{"type": "single", "itemId": "box", "cashPrice": 1000}]`,
		},
		{
			name: "Zero cash price",
			data: `[{"type": "single", "name": "Box", "itemId": "box", "cashPrice": 0}]`,
		},
		{
			name: "Negative cash price",
			data: `[{"type": "single", "name": "Box", "itemId": "box", "cashPrice": -5}]`,
		},
		{
			name: "Single without item id",
			data: `[{"type": "single", "name": "Box", "cashPrice": 1000}]`,
		},
		{
			name: "Blank item id",
			data: `[{"type": "single", "name": "Box", "itemId": "   ", "cashPrice": 1000}]`,
		},
		{
			name: "Package without components",
			data: `[{"type": "package", "name": "Pack", "cashPrice": 1000, "items": []}]`,
		},
		{
			name: "Zero count",
			data: `[{"type": "package", "name": "Pack", "cashPrice": 1000,
				"items": [{"itemId": "a", "name": "A", "count": 0}]}]`,
		},
		{
			name: "Cash price too large",
			data: `[{"type": "single", "name": "Box", "itemId": "box", "cashPrice": 9223372036854775807}]`,
		},
		{
			name: "Count too large",
			data: `[{"type": "package", "name": "Pack", "cashPrice": 1000,
				"items": [{"itemId": "a", "name": "A", "count": 1000001}]}]`,
		},
		{
			name: "Empty bonus choice",
			data: `[{"type": "package", "name": "Pack", "cashPrice": 1000,
				"items": [{"itemId": "a", "name": "A", "count": 1}], "bonusChoices": [[]]}]`,
		},
		{
			name: "Duplicate names",
			data: `[
				{"type": "single", "name": "Box", "itemId": "a", "cashPrice": 1000},
				{"type": "single", "name": "Box", "itemId": "b", "cashPrice": 2000}
			]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := catalog.Parse([]byte(tc.data))
			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
		})
	}
}

func TestDefinitionRoundTrip(t *testing.T) {
	rq := require.New(t)

	items, err := catalog.Default()
	rq.NoError(err)

	for _, item := range items {
		back, err := catalog.FromEntity(item).ToEntity()
		rq.NoError(err)
		rq.Equal(item, back)
	}
}
