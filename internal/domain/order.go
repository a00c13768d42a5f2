package domain

import (
	"fmt"
	"time"

	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/google/uuid"
)

// OrderStatus — закрытый набор статусов жизненного цикла заказа.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus проверяет принадлежность строки закрытому набору статусов.
// Значение вне набора — нарушение контракта данных, а не повод молча
// отбросить заказ.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case StatusPending, StatusPreparing, StatusDelivering, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", e.ErrUnknownOrderStatus, s)
	}
}

// Active сообщает, находится ли заказ в работе (ещё не завершён и не отменён).
func (s OrderStatus) Active() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusDelivering:
		return true
	default:
		return false
	}
}

// Order описывает заказ. После загрузки заказ неизменяем.
type Order struct {
	ID                   string
	Status               OrderStatus
	ItemCount            int64
	Total                int64 // Сумма заказа в центах
	DeliveryAddress      string
	DeliveryInstructions string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// OrderItem — позиция заказа с зафиксированной ценой на момент покупки.
type OrderItem struct {
	ID              string
	OrderID         string
	ProductID       int64
	Name            string
	PriceAtPurchase int64 // Цена за единицу в центах
	Unit            string
	Quantity        int64
}

// PartitionOrders раскладывает заказы на активные и исторические,
// сохраняя исходный порядок. Каждый заказ попадает ровно в одну корзину;
// заказ со статусом вне закрытого набора приводит к ошибке.
func PartitionOrders(orders []Order) (active, history []Order, err error) {
	active = make([]Order, 0, len(orders))
	history = make([]Order, 0, len(orders))

	for _, order := range orders {
		status, err := ParseOrderStatus(string(order.Status))
		if err != nil {
			return nil, nil, fmt.Errorf("order %s: %w", order.ID, err)
		}

		if status.Active() {
			active = append(active, order)
		} else {
			history = append(history, order)
		}
	}

	return active, history, nil
}

// NewOrderFromCart формирует новый заказ в статусе pending из непустой
// корзины. Цены позиций фиксируются на момент оформления.
func NewOrderFromCart(cart *Cart, deliveryFee int64, address, instructions string) (*Order, []OrderItem, error) {
	if cart.IsEmpty() {
		return nil, nil, e.ErrCartEmpty
	}

	order := &Order{
		ID:                   uuid.NewString(),
		Status:               StatusPending,
		ItemCount:            cart.ItemCount(),
		Total:                cart.Totals(deliveryFee).Total,
		DeliveryAddress:      address,
		DeliveryInstructions: instructions,
	}

	items := make([]OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, OrderItem{
			ID:              uuid.NewString(),
			OrderID:         order.ID,
			ProductID:       line.ProductID,
			Name:            line.Name,
			PriceAtPurchase: line.Price,
			Unit:            line.Unit,
			Quantity:        line.Quantity,
		})
	}

	return order, items, nil
}
