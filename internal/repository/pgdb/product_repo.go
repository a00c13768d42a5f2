package pgdb

import (
	"context"
	"errors"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/internal/repository/pgdb/converter"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Upsert идемпотентно создаёт или обновляет товар по уникальному имени.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, description, price, unit, category_id, image_key, is_available, rating, popular)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name)
		DO UPDATE SET
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			unit = EXCLUDED.unit,
			category_id = EXCLUDED.category_id,
			image_key = EXCLUDED.image_key,
			is_available = EXCLUDED.is_available,
			rating = EXCLUDED.rating,
			popular = EXCLUDED.popular,
			updated_at = NOW()
		RETURNING id, name, description, price, unit, category_id, image_key, is_available, rating, popular, created_at, updated_at;
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Unit,
		product.CategoryID, product.ImageKey, product.IsAvailable, product.Rating, product.Popular,
	).Scan(
		&model.ID, &model.Name, &model.Description, &model.Price, &model.Unit, &model.CategoryID,
		&model.ImageKey, &model.IsAvailable, &model.Rating, &model.Popular, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetByID возвращает товар по идентификатору.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, description, price, unit, category_id, image_key, is_available, rating, popular, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Description, &model.Price, &model.Unit, &model.CategoryID,
		&model.ImageKey, &model.IsAvailable, &model.Rating, &model.Popular, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// ListAvailable возвращает товары, доступные к продаже. Недоступные товары
// исключаются из выдачи каталога целиком ещё на этой границе.
func (p *ProductRepo) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, description, price, unit, category_id, image_key, is_available, rating, popular, created_at, updated_at
		FROM products
		WHERE is_available
		ORDER BY id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.Price, &model.Unit, &model.CategoryID,
			&model.ImageKey, &model.IsAvailable, &model.Rating, &model.Popular, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	return p.conv.ToArrEntity(models), nil
}
