package domain

import (
	"testing"

	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "preparing", "delivering", "completed", "cancelled"} {
		status, err := ParseOrderStatus(s)
		require.NoError(t, err)
		require.Equal(t, OrderStatus(s), status)
	}
}

func TestParseOrderStatus_Unknown(t *testing.T) {
	_, err := ParseOrderStatus("shipped")

	require.ErrorIs(t, err, e.ErrUnknownOrderStatus)
	require.Contains(t, err.Error(), `"shipped"`)
}

func TestOrderStatus_Active(t *testing.T) {
	require.True(t, StatusPending.Active())
	require.True(t, StatusPreparing.Active())
	require.True(t, StatusDelivering.Active())
	require.False(t, StatusCompleted.Active())
	require.False(t, StatusCancelled.Active())
}

func TestPartitionOrders(t *testing.T) {
	orders := []Order{
		{ID: "o1", Status: StatusDelivering},
		{ID: "o2", Status: StatusPreparing},
		{ID: "o3", Status: StatusCompleted},
		{ID: "o4", Status: StatusCompleted},
	}

	active, history, err := PartitionOrders(orders)

	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Len(t, history, 2)
	// Исходный порядок сохраняется внутри каждой группы
	require.Equal(t, "o1", active[0].ID)
	require.Equal(t, "o2", active[1].ID)
	require.Equal(t, "o3", history[0].ID)
	require.Equal(t, "o4", history[1].ID)
}

func TestPartitionOrders_Empty(t *testing.T) {
	active, history, err := PartitionOrders(nil)

	require.NoError(t, err)
	require.NotNil(t, active)
	require.NotNil(t, history)
	require.Empty(t, active)
	require.Empty(t, history)
}

func TestPartitionOrders_UnknownStatusFailsLoudly(t *testing.T) {
	orders := []Order{
		{ID: "o1", Status: StatusPending},
		{ID: "o2", Status: OrderStatus("shipped")},
	}

	active, history, err := PartitionOrders(orders)

	require.ErrorIs(t, err, e.ErrUnknownOrderStatus)
	require.Contains(t, err.Error(), "o2")
	require.Nil(t, active)
	require.Nil(t, history)
}

func TestNewOrderFromCart(t *testing.T) {
	cart := NewCart("cart-1")
	cart.AddOrIncrement(salmon(), 2)
	cart.AddOrIncrement(prawns(), 1)

	order, items, err := NewOrderFromCart(cart, 599, "12 Harbor St", "leave at door")

	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, StatusPending, order.Status)
	require.Equal(t, int64(3), order.ItemCount)
	require.Equal(t, int64(8496), order.Total)
	require.Equal(t, "12 Harbor St", order.DeliveryAddress)
	require.Equal(t, "leave at door", order.DeliveryInstructions)

	require.Len(t, items, 2)
	for _, item := range items {
		require.NotEmpty(t, item.ID)
		require.Equal(t, order.ID, item.OrderID)
	}
	require.Equal(t, int64(2499), items[0].PriceAtPurchase)
	require.Equal(t, int64(2), items[0].Quantity)
	require.Equal(t, int64(2899), items[1].PriceAtPurchase)
	require.Equal(t, int64(1), items[1].Quantity)
}

func TestNewOrderFromCart_EmptyCart(t *testing.T) {
	order, items, err := NewOrderFromCart(NewCart("cart-1"), 599, "12 Harbor St", "")

	require.ErrorIs(t, err, e.ErrCartEmpty)
	require.Nil(t, order)
	require.Nil(t, items)
}
