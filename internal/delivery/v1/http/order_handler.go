package http

import (
	"net/http"

	"github.com/coralbay-tech/go-backend/internal/usecase"
	"github.com/coralbay-tech/go-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// listOrders
//
//	@Summary		Список заказов
//	@Description	Возвращает заказы, разделённые на активные и исторические
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	OrdersDTO
//	@Failure		500	{object}	ErrorResponse	"Нарушение контракта данных"
//	@Router			/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	res, err := o.orderUsecase.ListOrders(r.Context())
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrdersDTO(res))
}
