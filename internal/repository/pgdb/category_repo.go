package pgdb

import (
	"context"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/internal/repository/pgdb/converter"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// Upsert идемпотентно создаёт категорию по имени или обновляет её порядок отображения.
func (c *CategoryRepo) Upsert(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO categories(name, icon, display_order) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			icon = EXCLUDED.icon,
			display_order = EXCLUDED.display_order,
			updated_at = NOW()
		RETURNING id, name, icon, display_order, created_at, updated_at, is_archived;
	`

	var model converter.CategoryModel
	if err := tx.QueryRow(ctx, query, category.Name, category.Icon, category.DisplayOrder).
		Scan(
			&model.ID, &model.Name, &model.Icon, &model.DisplayOrder,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// List возвращает все неархивированные категории. Сортировка по
// display_order — обязанность доменного слоя.
func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, icon, display_order, created_at, updated_at, is_archived
		FROM categories
		WHERE NOT is_archived
		ORDER BY id
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.CategoryModel, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Icon, &model.DisplayOrder,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	return c.conv.ToArrEntity(models), nil
}
