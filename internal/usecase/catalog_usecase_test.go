package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func catID(v int64) *int64 {
	return &v
}

func catalogFixture() *CatalogSnapshot {
	return NewCatalogSnapshot(
		[]domain.Category{
			{ID: 1, Name: "Shellfish", DisplayOrder: 2},
			{ID: 2, Name: "Fish", DisplayOrder: 1},
		},
		[]domain.Product{
			{ID: 1, Name: "Atlantic Salmon", Price: 2499, CategoryID: catID(2), IsAvailable: true},
			{ID: 2, Name: "Tiger Prawns", Price: 2899, CategoryID: catID(1), IsAvailable: true},
			{ID: 3, Name: "Smoked Salmon", Price: 1899, CategoryID: catID(2), IsAvailable: true},
		},
	)
}

func TestCatalogUC_GetCatalog_CacheHit(t *testing.T) {
	cache := &cacheRepoMock{snapshot: catalogFixture()}
	uc := NewCatalogUC(
		&productRepoMock{listErr: errors.New("db must not be touched")},
		&categoryRepoMock{listErr: errors.New("db must not be touched")},
		cache,
		noopLogger{},
	)

	res, err := uc.GetCatalog(context.Background(), &GetCatalogReq{})

	require.NoError(t, err)
	require.Len(t, res.Products, 3)
	// Категории приходят отсортированными по display_order
	require.Equal(t, "Fish", res.Categories[0].Name)
	require.Equal(t, "Shellfish", res.Categories[1].Name)
}

func TestCatalogUC_GetCatalog_FiltersApplied(t *testing.T) {
	cache := &cacheRepoMock{snapshot: catalogFixture()}
	uc := NewCatalogUC(&productRepoMock{}, &categoryRepoMock{}, cache, noopLogger{})

	res, err := uc.GetCatalog(context.Background(), &GetCatalogReq{
		CategoryID: catID(2),
		Query:      "salmon",
	})

	require.NoError(t, err)
	require.Len(t, res.Products, 2)
	require.Equal(t, "Atlantic Salmon", res.Products[0].Name)
	require.Equal(t, "Smoked Salmon", res.Products[1].Name)
}

func TestCatalogUC_GetCatalog_CacheMissWarmsCache(t *testing.T) {
	setCh := make(chan *CatalogSnapshot, 1)
	cache := &cacheRepoMock{snapshot: nil, setCh: setCh}
	products := &productRepoMock{products: map[int64]*domain.Product{
		1: {ID: 1, Name: "Atlantic Salmon", Price: 2499, IsAvailable: true},
	}}
	categories := &categoryRepoMock{categories: []domain.Category{{ID: 1, Name: "Fish"}}}

	uc := NewCatalogUC(products, categories, cache, noopLogger{})

	res, err := uc.GetCatalog(context.Background(), &GetCatalogReq{})

	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	require.Len(t, res.Categories, 1)

	select {
	case snapshot := <-setCh:
		require.Len(t, snapshot.Products, 1)
	case <-time.After(time.Second):
		t.Fatal("catalog was not cached in background")
	}
}

func TestCatalogUC_GetCatalog_FetchFailureDegradesToEmpty(t *testing.T) {
	cache := &cacheRepoMock{snapshot: nil}
	products := &productRepoMock{listErr: errors.New("db down")}
	categories := &categoryRepoMock{}

	uc := NewCatalogUC(products, categories, cache, noopLogger{})

	res, err := uc.GetCatalog(context.Background(), &GetCatalogReq{Query: "salmon"})

	// Недоступность БД не роняет запрос: пустой каталог без ошибки
	require.NoError(t, err)
	require.NotNil(t, res.Products)
	require.NotNil(t, res.Categories)
	require.Empty(t, res.Products)
	require.Empty(t, res.Categories)
}

func TestCatalogUC_GetCatalog_CacheErrorFallsBackToDB(t *testing.T) {
	cache := &cacheRepoMock{getErr: errors.New("redis down")}
	products := &productRepoMock{products: map[int64]*domain.Product{
		1: {ID: 1, Name: "Oysters", Price: 3599, IsAvailable: true},
	}}
	categories := &categoryRepoMock{}

	uc := NewCatalogUC(products, categories, cache, noopLogger{})

	res, err := uc.GetCatalog(context.Background(), &GetCatalogReq{})

	require.NoError(t, err)
	require.Len(t, res.Products, 1)
}
