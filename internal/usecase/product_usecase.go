package usecase

import (
	"context"
	"strings"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// ProductUseCase реализует регистрацию товаров каталога.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	dbPool       transaction.Transactional
	imagesInfra  ImagesInfra
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	dbPool transaction.Transactional,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		dbPool:       dbPool,
		imagesInfra:  imagesInfra,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// RegisterNewProduct обрабатывает добавление нового товара с категорией и
// изображениями, с сохранением в хранилища.
func (p *ProductUseCase) RegisterNewProduct(ctx context.Context, req *AddNewProductReq) error {
	const op = "ProductUseCase.RegisterNewProduct"

	// Валидация данных
	var err error
	err = p.validateProduct(req)
	if err != nil {
		return e.Wrap(op, err)
	}

	var (
		imagesRes *UploadImagesRes
		uploaded  bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженных изображений
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded && imagesRes != nil {
				p.logger.Warnf(
					"Cleaning up orphaned images after transaction failure. product_name: %s, error: %v",
					req.Name,
					e.Wrap(op, err),
				)

				p.imagesInfra.CleanupImages(imagesRes.ImagesKeys)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// идемпотентное создание категории
	category, err := p.categoryRepo.Upsert(ctx, domain.NewCategory(req.CategoryName, "", req.DisplayOrder))
	if err != nil {
		return e.Wrap(op, err)
	}

	// Сохранение изображений в MinIO
	imagesRes, err = p.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.Name, req.Images))
	if err != nil {
		return e.Wrap(op, err)
	}
	uploaded = true

	// идемпотентное создание товара с первым изображением в качестве основного
	product := domain.NewProduct(req.Name, req.Price, req.Unit, &category.ID, imagesRes.ImagesKeys[0])
	product.Description = req.Description
	product.Rating = req.Rating
	product.Popular = req.Popular

	_, err = p.productRepo.Upsert(ctx, product)
	if err != nil {
		return e.Wrap(op, err)
	}

	// Коммит изменений в бд
	err = tx.Commit(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	// Сброс устаревшего среза каталога из кэша
	if err := p.cacheRepo.DropCatalog(ctx); err != nil {
		p.logger.Warnf("Failed to drop catalog cache: %v", e.Wrap(op, err))
	}

	return nil
}

// GetProduct возвращает карточку товара по идентификатору.
// Неизвестный товар — e.ErrProductNotFound.
func (p *ProductUseCase) GetProduct(ctx context.Context, productID int64) (*GetProductRes, error) {
	const op = "ProductUseCase.GetProduct"

	product, err := p.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &GetProductRes{Product: product}, nil
}

// validateProduct проверяет корректность входных данных запроса на добавление товара.
func (p *ProductUseCase) validateProduct(req *AddNewProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if strings.TrimSpace(req.CategoryName) == "" {
		return e.ErrCategoryNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.Rating < 0 || req.Rating > 5 {
		return e.ErrInvalidRating
	}

	if len(req.Images) == 0 {
		return e.ErrNoImages
	}

	return nil
}
