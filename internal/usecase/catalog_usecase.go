package usecase

import (
	"context"
	"time"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// CatalogUseCase реализует выдачу и фильтрацию каталога.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// GetCatalog возвращает срез каталога, отфильтрованный по категории и
// поисковому запросу. Срез берётся из кэша, при промахе — из БД с фоновым
// прогревом кэша. Недоступность хранилищ не роняет запрос: каталог
// деградирует до пустого с warn-логом.
func (c *CatalogUseCase) GetCatalog(ctx context.Context, req *GetCatalogReq) (*GetCatalogRes, error) {
	const op = "CatalogUseCase.GetCatalog"

	snapshot, err := c.cacheRepo.GetCatalog(ctx)
	if err != nil {
		c.logger.Warnf("Catalog cache read failed: %v", e.Wrap(op, err))
		snapshot = nil
	}

	if snapshot == nil {
		snapshot, err = c.fetchSnapshot(ctx)
		if err != nil {
			c.logger.Warnf("Catalog fetch failed, serving empty catalog: %v", e.Wrap(op, err))
			return NewGetCatalogRes([]domain.Category{}, []domain.Product{}), nil
		}

		// Фоновый прогрев кэша
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetCatalog(bgCtx, snapshot); err != nil {
				c.logger.Warnf("Failed to cache catalog in background: %v", e.Wrap(op, err))
			}
		}()
	}

	categories := make([]domain.Category, len(snapshot.Categories))
	copy(categories, snapshot.Categories)
	domain.SortCategories(categories)

	products := domain.FilterProducts(snapshot.Products, req.CategoryID, req.Query)

	return NewGetCatalogRes(categories, products), nil
}

// fetchSnapshot параллельно читает категории и доступные товары из БД.
func (c *CatalogUseCase) fetchSnapshot(ctx context.Context) (*CatalogSnapshot, error) {
	var (
		categories []domain.Category
		products   []domain.Product
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = c.categoryRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = c.productRepo.ListAvailable(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewCatalogSnapshot(categories, products), nil
}
