package http

import (
	"net/http"
	"strconv"

	"github.com/coralbay-tech/go-backend/internal/usecase"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// registerNewProduct
//
//	@Summary		Регистрация нового товара
//	@Description	Создает новый товар в каталоге с изображениями
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name			formData	string					true	"Название товара"
//	@Param			description		formData	string					false	"Описание товара"
//	@Param			category		formData	string					true	"Категория"
//	@Param			price			formData	number					true	"Цена"
//	@Param			unit			formData	string					true	"Единица измерения (lb, each, dozen)"
//	@Param			display_order	formData	integer					false	"Порядок категории в витрине"
//	@Param			rating			formData	number					false	"Оценка товара (0..5)"
//	@Param			popular			formData	boolean					false	"Пометка популярного товара"
//	@Param			images			formData	file					true	"Изображения товара"
//	@Success		201				{object}	map[string]interface{}	"Успешное создание"
//	@Failure		400				{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) registerNewProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	prMeta, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	req := usecase.NewAddNewProductReq(
		prMeta.Name, prMeta.Description, prMeta.CategoryName, prMeta.DisplayOrder,
		prMeta.Price, prMeta.Unit, prMeta.Rating, prMeta.Popular, images,
	)
	if err := p.productUsecase.RegisterNewProduct(r.Context(), req); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"Created": true,
	})
}

// getProduct
//
//	@Summary		Карточка товара
//	@Description	Возвращает товар по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			productID	path		integer			true	"Идентификатор товара"
//	@Success		200			{object}	ProductDTO		"Товар"
//	@Failure		400			{object}	ErrorResponse	"Некорректный идентификатор"
//	@Failure		404			{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{productID} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := p.productUsecase.GetProduct(r.Context(), productID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	dto := toProductDTO(*res.Product)
	WriteSuccess(w, http.StatusOK, &dto)
}
