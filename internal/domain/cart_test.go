package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func salmon() *Product {
	return &Product{ID: 1, Name: "Atlantic Salmon", Price: 2499, Unit: "lb", IsAvailable: true}
}

func prawns() *Product {
	return &Product{ID: 2, Name: "Tiger Prawns", Price: 2899, Unit: "lb", IsAvailable: true}
}

func TestCart_AddOrIncrement_NewLine(t *testing.T) {
	cart := NewCart("cart-1")

	line := cart.AddOrIncrement(salmon(), 2)

	require.Len(t, cart.Lines, 1)
	require.NotEmpty(t, line.ID)
	require.Equal(t, int64(1), line.ProductID)
	require.Equal(t, "Atlantic Salmon", line.Name)
	require.Equal(t, int64(2499), line.Price)
	require.Equal(t, int64(2), line.Quantity)
}

func TestCart_AddOrIncrement_MergesByProduct(t *testing.T) {
	cart := NewCart("cart-1")

	first := cart.AddOrIncrement(salmon(), 1)
	second := cart.AddOrIncrement(salmon(), 2)

	// Повторное добавление того же товара не создаёт вторую позицию
	require.Len(t, cart.Lines, 1)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, int64(3), cart.Lines[0].Quantity)
}

func TestCart_AddOrIncrement_PreservesOrder(t *testing.T) {
	cart := NewCart("cart-1")

	cart.AddOrIncrement(salmon(), 1)
	cart.AddOrIncrement(prawns(), 1)
	cart.AddOrIncrement(salmon(), 1)

	require.Len(t, cart.Lines, 2)
	require.Equal(t, int64(1), cart.Lines[0].ProductID)
	require.Equal(t, int64(2), cart.Lines[1].ProductID)
}

func TestCart_ChangeQuantity(t *testing.T) {
	cart := NewCart("cart-1")
	line := cart.AddOrIncrement(salmon(), 2)

	cart.ChangeQuantity(line.ID, 3)
	require.Equal(t, int64(5), cart.Lines[0].Quantity)

	cart.ChangeQuantity(line.ID, -4)
	require.Equal(t, int64(1), cart.Lines[0].Quantity)
}

func TestCart_ChangeQuantity_RemovesAtZero(t *testing.T) {
	cart := NewCart("cart-1")
	line := cart.AddOrIncrement(salmon(), 1)

	cart.ChangeQuantity(line.ID, -1)

	// Позиция с нулевым количеством не остаётся в корзине
	require.True(t, cart.IsEmpty())
}

func TestCart_ChangeQuantity_ClampsBelowZero(t *testing.T) {
	cart := NewCart("cart-1")
	line := cart.AddOrIncrement(salmon(), 1)

	cart.ChangeQuantity(line.ID, -10)

	require.True(t, cart.IsEmpty())
}

func TestCart_ChangeQuantity_UnknownLineIsNoop(t *testing.T) {
	cart := NewCart("cart-1")
	cart.AddOrIncrement(salmon(), 2)

	cart.ChangeQuantity("missing", -1)

	require.Len(t, cart.Lines, 1)
	require.Equal(t, int64(2), cart.Lines[0].Quantity)
}

func TestCart_RemoveLine_Idempotent(t *testing.T) {
	cart := NewCart("cart-1")
	line := cart.AddOrIncrement(salmon(), 2)
	cart.AddOrIncrement(prawns(), 1)

	cart.RemoveLine(line.ID)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, int64(2), cart.Lines[0].ProductID)

	// Повторное удаление не является ошибкой и ничего не меняет
	cart.RemoveLine(line.ID)
	require.Len(t, cart.Lines, 1)
}

func TestCart_Totals(t *testing.T) {
	cart := NewCart("cart-1")
	cart.AddOrIncrement(salmon(), 2) // 24.99 x 2
	cart.AddOrIncrement(prawns(), 1) // 28.99 x 1

	totals := cart.Totals(599)

	require.Equal(t, int64(7897), totals.Subtotal)
	require.Equal(t, int64(599), totals.DeliveryFee)
	require.Equal(t, int64(8496), totals.Total)
}

func TestCart_Totals_Empty(t *testing.T) {
	cart := NewCart("cart-1")

	totals := cart.Totals(599)

	require.Equal(t, int64(0), totals.Subtotal)
	require.Equal(t, int64(599), totals.DeliveryFee)
	require.Equal(t, int64(599), totals.Total)
}

func TestCart_ItemCount(t *testing.T) {
	cart := NewCart("cart-1")
	require.Equal(t, int64(0), cart.ItemCount())

	cart.AddOrIncrement(salmon(), 2)
	cart.AddOrIncrement(prawns(), 1)

	require.Equal(t, int64(3), cart.ItemCount())
}
