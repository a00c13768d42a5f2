package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/coralbay-tech/go-backend/internal/cfg"
	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CartUseCase реализует бизнес-логику корзины и оформления заказа.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	orderRepo   OrderRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	delivery    *cfg.DeliveryCfg
	logger      logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	delivery *cfg.DeliveryCfg,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		delivery:    delivery,
		logger:      logger,
	}
}

// GetCart возвращает корзину с рассчитанными суммами.
// Неизвестный cartID — пустая корзина, не ошибка.
func (c *CartUseCase) GetCart(ctx context.Context, cartID string) (*CartRes, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.Load(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(cart, cart.Totals(c.delivery.FeeCents)), nil
}

// AddItem добавляет товар в корзину. Существующая позиция для того же
// товара сливается (количество увеличивается), а не дублируется.
func (c *CartUseCase) AddItem(ctx context.Context, req *AddItemReq) (*CartRes, error) {
	const op = "CartUseCase.AddItem"

	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	product, err := c.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !product.IsAvailable {
		return nil, e.Wrap(op, e.ErrProductUnavailable)
	}

	cart, err := c.cartRepo.Load(ctx, req.CartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.AddOrIncrement(product, req.Quantity)

	if err := c.cartRepo.Save(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(cart, cart.Totals(c.delivery.FeeCents)), nil
}

// ChangeQuantity меняет количество позиции на delta. Позиция, дошедшая до
// нуля, удаляется. Неизвестный lineID — no-op с текущим состоянием корзины.
func (c *CartUseCase) ChangeQuantity(ctx context.Context, req *ChangeQuantityReq) (*CartRes, error) {
	const op = "CartUseCase.ChangeQuantity"

	if req.Delta == 0 {
		return nil, e.Wrap(op, e.ErrInvalidDelta)
	}

	cart, err := c.cartRepo.Load(ctx, req.CartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.ChangeQuantity(req.LineID, req.Delta)

	if err := c.cartRepo.Save(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(cart, cart.Totals(c.delivery.FeeCents)), nil
}

// RemoveLine безусловно удаляет позицию. Идемпотентна.
func (c *CartUseCase) RemoveLine(ctx context.Context, req *RemoveLineReq) (*CartRes, error) {
	const op = "CartUseCase.RemoveLine"

	cart, err := c.cartRepo.Load(ctx, req.CartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.RemoveLine(req.LineID)

	if err := c.cartRepo.Save(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(cart, cart.Totals(c.delivery.FeeCents)), nil
}

// Checkout оформляет заказ из непустой корзины: в одной транзакции создаёт
// заказ со снимком цен, очищает корзину и пишет событие в outbox.
func (c *CartUseCase) Checkout(ctx context.Context, req *CheckoutReq) (*CheckoutRes, error) {
	const op = "CartUseCase.Checkout"

	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, e.Wrap(op, e.ErrDeliveryAddrRequired)
	}

	cart, err := c.cartRepo.Load(ctx, req.CartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order, items, err := domain.NewOrderFromCart(cart, c.delivery.FeeCents, req.DeliveryAddress, req.DeliveryInstructions)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	order, err = c.orderRepo.Create(ctx, order, items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = c.cartRepo.Clear(ctx, cart.ID); err != nil {
		return nil, e.Wrap(op, err)
	}

	event, err := c.buildOrderCreatedEvent(order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = c.outboxRepo.Create(ctx, event); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CheckoutRes{Order: order}, nil
}

// buildOrderCreatedEvent формирует outbox-событие с JSON-телом заказа.
func (c *CartUseCase) buildOrderCreatedEvent(order *domain.Order) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := json.Marshal(OrderCreatedPayload{
		EventID:    eventID,
		OrderID:    order.ID,
		Status:     string(order.Status),
		ItemCount:  order.ItemCount,
		TotalCents: order.Total,
		CreatedAt:  time.Now().UnixNano(),
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:   eventID,
		EventType: OrderCreated,
		OrderID:   order.ID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}, nil
}
