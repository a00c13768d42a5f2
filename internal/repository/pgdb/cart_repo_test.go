package pgdb

import (
	"testing"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func cartWithLines(t *testing.T) *domain.Cart {
	t.Helper()

	cart := domain.NewCart("cart-1")
	cart.AddOrIncrement(&domain.Product{ID: 1, Name: "Atlantic Salmon", Price: 2499, Unit: "lb"}, 2)
	cart.AddOrIncrement(&domain.Product{ID: 2, Name: "Tiger Prawns", Price: 2899, Unit: "lb"}, 1)
	cart.AddOrIncrement(&domain.Product{ID: 3, Name: "Oysters", Price: 3599, Unit: "dozen"}, 1)

	return cart
}

func TestCartLineRows_PositionsFollowCartOrder(t *testing.T) {
	cart := cartWithLines(t)

	rows := cartLineRows(cart)

	require.Len(t, rows, 3)
	for i, row := range rows {
		require.Equal(t, cart.Lines[i].ID, row[0])
		require.Equal(t, cart.ID, row[1])
		require.Equal(t, cart.Lines[i].ProductID, row[2])
		require.Equal(t, int64(i), row[len(row)-1])
	}
}

func TestCartLineRows_RenumbersAfterRemoval(t *testing.T) {
	cart := cartWithLines(t)
	cart.RemoveLine(cart.Lines[0].ID)

	rows := cartLineRows(cart)

	require.Len(t, rows, 2)
	require.Equal(t, int64(2), rows[0][2])
	require.Equal(t, int64(0), rows[0][len(rows[0])-1])
	require.Equal(t, int64(3), rows[1][2])
	require.Equal(t, int64(1), rows[1][len(rows[1])-1])
}

func TestCartLineRows_EmptyCart(t *testing.T) {
	require.Empty(t, cartLineRows(domain.NewCart("cart-1")))
}
