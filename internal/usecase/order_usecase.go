package usecase

import (
	"context"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/logger"
)

// OrderUseCase реализует выдачу списка заказов.
type OrderUseCase struct {
	orderRepo OrderRepository
	logger    logger.Logger
}

func NewOrderUC(orderRepo OrderRepository, logger logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// ListOrders возвращает заказы, разложенные на активные и исторические.
// Заказ со статусом вне закрытого набора — ошибка данных, запрос падает
// явно, а не прячет такой заказ из обоих списков.
func (o *OrderUseCase) ListOrders(ctx context.Context) (*OrdersRes, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	active, history, err := domain.PartitionOrders(orders)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewOrdersRes(active, history), nil
}
