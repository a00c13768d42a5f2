package usecase

import (
	"context"

	"github.com/coralbay-tech/go-backend/internal/domain"
)

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListAvailable(ctx context.Context) ([]domain.Product, error)
}

type CategoryRepository interface {
	Upsert(ctx context.Context, category *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// CartRepository хранит корзины. Load для неизвестного cartID возвращает
// пустую корзину, Save полностью замещает её позиции.
type CartRepository interface {
	Load(ctx context.Context, cartID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Clear(ctx context.Context, cartID string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order, items []domain.OrderItem) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

// CacheRepository кэширует срез каталога. Промах — (nil, nil), не ошибка.
type CacheRepository interface {
	GetCatalog(ctx context.Context) (*CatalogSnapshot, error)
	SetCatalog(ctx context.Context, snapshot *CatalogSnapshot) error
	DropCatalog(ctx context.Context) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
