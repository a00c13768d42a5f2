package http

import (
	"net/http"
	"strconv"

	"github.com/coralbay-tech/go-backend/internal/usecase"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// getCatalog
//
//	@Summary		Каталог товаров
//	@Description	Возвращает категории и товары, отфильтрованные по категории и поисковой строке
//	@Tags			catalog
//	@Produce		json
//	@Param			category_id	query		integer	false	"Идентификатор категории"
//	@Param			query		query		string	false	"Подстрока для поиска по названию"
//	@Success		200			{object}	CatalogDTO
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/catalog [get]
func (c *CatalogHandler) getCatalog(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if v := r.URL.Query().Get("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.logger.Warnf("%d %s: category_id=%s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), v)
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		categoryID = &id
	}

	// Поисковая строка передаётся в фильтр как есть, без обрезки пробелов.
	req := &usecase.GetCatalogReq{
		CategoryID: categoryID,
		Query:      r.URL.Query().Get("query"),
	}

	res, err := c.catalogUsecase.GetCatalog(r.Context(), req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCatalogDTO(res))
}
