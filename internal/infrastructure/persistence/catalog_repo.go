package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"dnf_market/internal/catalog"
	"dnf_market/internal/domain"
	"dnf_market/internal/domain/entity"
	"dnf_market/pkg/errcodes"
)

type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *CatalogRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// List возвращает каталог в порядке position. Определения проходят ту же
// валидацию, что и встроенный каталог.
func (r *CatalogRepository) List(ctx context.Context) ([]entity.CashItem, error) {
	query := `SELECT name, position, definition, updated_at FROM cash_items ORDER BY position, name`

	var schemas []cashItemSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list cash items")
	}

	defs := make([]catalog.Definition, 0, len(schemas))

	for _, s := range schemas {
		d, err := s.toDefinition()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InvalidCatalog, "failed to decode cash item")
		}

		defs = append(defs, d)
	}

	items, err := catalog.FromDefinitions(defs)
	if err != nil {
		return nil, fmt.Errorf("catalog.FromDefinitions: %w", err)
	}

	return items, nil
}

// Replace атомарно заменяет весь каталог.
func (r *CatalogRepository) Replace(ctx context.Context, items []entity.CashItem) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cash_items`); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to clear cash items")
		}

		for i, item := range items {
			if err := r.upsertTx(ctx, tx, item, i); err != nil {
				return err
			}
		}

		return nil
	})
}

// Upsert добавляет айтем в конец каталога или обновляет существующий
// с тем же именем, сохраняя его позицию.
func (r *CatalogRepository) Upsert(ctx context.Context, item entity.CashItem) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		var position int

		err := tx.GetContext(ctx, &position, `SELECT COALESCE(MAX(position) + 1, 0) FROM cash_items`)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to get next position")
		}

		return r.upsertTx(ctx, tx, item, position)
	})
}

func (r *CatalogRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cash_items WHERE name = $1`, name)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete cash item")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.NotFound, "cash item not found")
	}

	return nil
}

func (r *CatalogRepository) upsertTx(ctx context.Context, tx *sqlx.Tx, item entity.CashItem, position int) error {
	schema, err := fromCashItem(item, position)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode cash item")
	}

	query := `
		INSERT INTO cash_items (name, position, definition, updated_at)
		VALUES (:name, :position, :definition, :updated_at)
		ON CONFLICT (name) DO UPDATE SET
			definition = EXCLUDED.definition,
			updated_at = EXCLUDED.updated_at`

	if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save cash item")
	}

	return nil
}
