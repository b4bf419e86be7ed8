package persistence_test

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"dnf_market/internal/domain"
	"dnf_market/internal/domain/entity"
	"dnf_market/internal/infrastructure/persistence"
	"dnf_market/pkg/dbtest"
	"dnf_market/pkg/errcodes"
)

func newRepository(t *testing.T) *persistence.CatalogRepository {
	t.Helper()

	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, dbtest.MigrateFromFile(db, "testdata/schema.sql"))

	return persistence.NewCatalogRepository(db)
}

func TestCatalogRepository(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := newRepository(t)

	items, err := repo.List(ctx)
	rq.NoError(err)
	rq.Empty(items)

	box := entity.SingleItem{Name: "Box", ItemID: "box", CashPrice: 3900}
	pack := entity.PackageItem{
		Name:      "Pack",
		CashPrice: 29000,
		Items: []entity.Entry{
			{ItemID: "box", Name: "Box", Count: 10},
			{ItemID: "guard", Name: "Guard", Count: 20, IsBound: true},
		},
		BonusChoices: []entity.BonusChoice{
			{Options: []entity.Entry{
				{ItemID: "a", Name: "A", Count: 1, IsBound: true},
				{ItemID: "b", Name: "B", Count: 1, IsBound: true},
			}},
		},
	}

	rq.NoError(repo.Replace(ctx, []entity.CashItem{pack, box}))

	items, err = repo.List(ctx)
	rq.NoError(err)
	rq.Equal([]entity.CashItem{pack, box}, items)

	// Upsert keeps position of an existing item.
	pack.CashPrice = 25000
	rq.NoError(repo.Upsert(ctx, pack))

	extra := entity.SingleItem{Name: "Ticket", ItemID: "ticket", CashPrice: 2900}
	rq.NoError(repo.Upsert(ctx, extra))

	items, err = repo.List(ctx)
	rq.NoError(err)
	rq.Equal([]entity.CashItem{pack, box, extra}, items)

	rq.NoError(repo.Delete(ctx, "Box"))

	err = repo.Delete(ctx, "Box")
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.NotFound, code)

	items, err = repo.List(ctx)
	rq.NoError(err)
	rq.Len(items, 2)
}
