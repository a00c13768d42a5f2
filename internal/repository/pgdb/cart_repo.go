package pgdb

import (
	"context"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CartRepo реализует хранилище корзин поверх PostgreSQL.
// Корзина хранится как набор строк cart_lines с общим cart_id.
type CartRepo struct {
	pool *pgxpool.Pool
}

func NewCartRepo(pool *pgxpool.Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// Load возвращает корзину по идентификатору. Для неизвестного cartID
// возвращается пустая корзина: отсутствие строк — валидное состояние.
func (c *CartRepo) Load(ctx context.Context, cartID string) (*domain.Cart, error) {
	query := `
		SELECT id, product_id, name, price, unit, quantity, created_at, updated_at
		FROM cart_lines
		WHERE cart_id = $1
		ORDER BY position
	`

	rows, err := c.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	cart := domain.NewCart(cartID)
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(
			&line.ID, &line.ProductID, &line.Name, &line.Price,
			&line.Unit, &line.Quantity, &line.CreatedAt, &line.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		cart.Lines = append(cart.Lines, line)
	}

	return cart, nil
}

// Save атомарно замещает позиции корзины текущим состоянием.
func (c *CartRepo) Save(ctx context.Context, cart *domain.Cart) error {
	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE cart_id = $1`, cart.ID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	batch := &pgx.Batch{}
	for _, row := range cartLineRows(cart) {
		batch.Queue(`
			INSERT INTO cart_lines (id, cart_id, product_id, name, price, unit, quantity, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			row...,
		)
	}

	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// cartLineRows разворачивает позиции корзины в строки вставки. Порядок
// позиций в корзине фиксируется явным полем position: таймстемп вставки
// для этого не годится, now() одинаков для всех строк одной транзакции.
func cartLineRows(cart *domain.Cart) [][]any {
	rows := make([][]any, 0, len(cart.Lines))
	for i, line := range cart.Lines {
		rows = append(rows, []any{
			line.ID, cart.ID, line.ProductID, line.Name, line.Price, line.Unit, line.Quantity, int64(i),
		})
	}

	return rows
}

// Clear удаляет все позиции корзины в рамках внешней транзакции
// (используется при оформлении заказа).
func (c *CartRepo) Clear(ctx context.Context, cartID string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE cart_id = $1`, cartID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
