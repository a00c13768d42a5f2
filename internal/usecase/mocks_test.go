package usecase

import (
	"context"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/pkg/e"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

type productRepoMock struct {
	products map[int64]*domain.Product
	listErr  error
}

func (m *productRepoMock) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (m *productRepoMock) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if p, ok := m.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, e.ErrProductNotFound
}

func (m *productRepoMock) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		result = append(result, *p)
	}
	return result, nil
}

type categoryRepoMock struct {
	categories []domain.Category
	listErr    error
}

func (m *categoryRepoMock) Upsert(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	return category, nil
}

func (m *categoryRepoMock) List(ctx context.Context) ([]domain.Category, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.categories, nil
}

type cartRepoMock struct {
	carts   map[string]*domain.Cart
	loadErr error
	saveErr error
	saved   *domain.Cart
}

func (m *cartRepoMock) Load(ctx context.Context, cartID string) (*domain.Cart, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if cart, ok := m.carts[cartID]; ok {
		return cart, nil
	}
	return domain.NewCart(cartID), nil
}

func (m *cartRepoMock) Save(ctx context.Context, cart *domain.Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = cart
	return nil
}

func (m *cartRepoMock) Clear(ctx context.Context, cartID string) error {
	delete(m.carts, cartID)
	return nil
}

type orderRepoMock struct {
	orders  []domain.Order
	listErr error
}

func (m *orderRepoMock) Create(ctx context.Context, order *domain.Order, items []domain.OrderItem) (*domain.Order, error) {
	m.orders = append(m.orders, *order)
	return order, nil
}

func (m *orderRepoMock) List(ctx context.Context) ([]domain.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.orders, nil
}

type cacheRepoMock struct {
	snapshot *CatalogSnapshot
	getErr   error
	setCh    chan *CatalogSnapshot
}

func (m *cacheRepoMock) GetCatalog(ctx context.Context) (*CatalogSnapshot, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.snapshot, nil
}

func (m *cacheRepoMock) SetCatalog(ctx context.Context, snapshot *CatalogSnapshot) error {
	if m.setCh != nil {
		m.setCh <- snapshot
	}
	return nil
}

func (m *cacheRepoMock) DropCatalog(ctx context.Context) error {
	return nil
}
