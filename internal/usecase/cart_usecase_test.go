package usecase

import (
	"context"
	"testing"

	"github.com/coralbay-tech/go-backend/internal/cfg"
	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func newCartUCForTest(cartRepo *cartRepoMock, productRepo *productRepoMock) *CartUseCase {
	return NewCartUC(
		cartRepo,
		productRepo,
		&orderRepoMock{},
		nil,
		nil,
		&cfg.DeliveryCfg{FeeCents: 599},
		noopLogger{},
	)
}

func availableSalmon() *domain.Product {
	return &domain.Product{ID: 1, Name: "Atlantic Salmon", Price: 2499, Unit: "lb", IsAvailable: true}
}

func TestCartUC_GetCart_UnknownCartIsEmpty(t *testing.T) {
	uc := newCartUCForTest(&cartRepoMock{}, &productRepoMock{})

	res, err := uc.GetCart(context.Background(), "cart-1")

	require.NoError(t, err)
	require.True(t, res.Cart.IsEmpty())
	require.Equal(t, int64(0), res.Totals.Subtotal)
	require.Equal(t, int64(599), res.Totals.DeliveryFee)
	require.Equal(t, int64(599), res.Totals.Total)
}

func TestCartUC_AddItem(t *testing.T) {
	cartRepo := &cartRepoMock{}
	productRepo := &productRepoMock{products: map[int64]*domain.Product{1: availableSalmon()}}
	uc := newCartUCForTest(cartRepo, productRepo)

	res, err := uc.AddItem(context.Background(), &AddItemReq{CartID: "cart-1", ProductID: 1, Quantity: 2})

	require.NoError(t, err)
	require.Len(t, res.Cart.Lines, 1)
	require.Equal(t, int64(2), res.Cart.Lines[0].Quantity)
	require.Equal(t, int64(5597), res.Totals.Total) // 24.99*2 + 5.99
	require.NotNil(t, cartRepo.saved)
}

func TestCartUC_AddItem_MergesExistingLine(t *testing.T) {
	cart := domain.NewCart("cart-1")
	cart.AddOrIncrement(availableSalmon(), 1)
	cartRepo := &cartRepoMock{carts: map[string]*domain.Cart{"cart-1": cart}}
	productRepo := &productRepoMock{products: map[int64]*domain.Product{1: availableSalmon()}}
	uc := newCartUCForTest(cartRepo, productRepo)

	res, err := uc.AddItem(context.Background(), &AddItemReq{CartID: "cart-1", ProductID: 1, Quantity: 2})

	require.NoError(t, err)
	require.Len(t, res.Cart.Lines, 1)
	require.Equal(t, int64(3), res.Cart.Lines[0].Quantity)
}

func TestCartUC_AddItem_InvalidQuantity(t *testing.T) {
	uc := newCartUCForTest(&cartRepoMock{}, &productRepoMock{})

	_, err := uc.AddItem(context.Background(), &AddItemReq{CartID: "cart-1", ProductID: 1, Quantity: 0})

	require.ErrorIs(t, err, e.ErrInvalidQuantity)
}

func TestCartUC_AddItem_ProductNotFound(t *testing.T) {
	uc := newCartUCForTest(&cartRepoMock{}, &productRepoMock{})

	_, err := uc.AddItem(context.Background(), &AddItemReq{CartID: "cart-1", ProductID: 99, Quantity: 1})

	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCartUC_AddItem_ProductUnavailable(t *testing.T) {
	unavailable := availableSalmon()
	unavailable.IsAvailable = false
	productRepo := &productRepoMock{products: map[int64]*domain.Product{1: unavailable}}
	uc := newCartUCForTest(&cartRepoMock{}, productRepo)

	_, err := uc.AddItem(context.Background(), &AddItemReq{CartID: "cart-1", ProductID: 1, Quantity: 1})

	require.ErrorIs(t, err, e.ErrProductUnavailable)
}

func TestCartUC_ChangeQuantity_RemovesAtZero(t *testing.T) {
	cart := domain.NewCart("cart-1")
	line := cart.AddOrIncrement(availableSalmon(), 1)
	cartRepo := &cartRepoMock{carts: map[string]*domain.Cart{"cart-1": cart}}
	uc := newCartUCForTest(cartRepo, &productRepoMock{})

	res, err := uc.ChangeQuantity(context.Background(), &ChangeQuantityReq{
		CartID: "cart-1",
		LineID: line.ID,
		Delta:  -2,
	})

	require.NoError(t, err)
	require.True(t, res.Cart.IsEmpty())
	require.Equal(t, int64(599), res.Totals.Total)
}

func TestCartUC_ChangeQuantity_ZeroDelta(t *testing.T) {
	uc := newCartUCForTest(&cartRepoMock{}, &productRepoMock{})

	_, err := uc.ChangeQuantity(context.Background(), &ChangeQuantityReq{
		CartID: "cart-1",
		LineID: "line-1",
		Delta:  0,
	})

	require.ErrorIs(t, err, e.ErrInvalidDelta)
}

func TestCartUC_RemoveLine_Idempotent(t *testing.T) {
	cart := domain.NewCart("cart-1")
	line := cart.AddOrIncrement(availableSalmon(), 1)
	cartRepo := &cartRepoMock{carts: map[string]*domain.Cart{"cart-1": cart}}
	uc := newCartUCForTest(cartRepo, &productRepoMock{})

	res, err := uc.RemoveLine(context.Background(), &RemoveLineReq{CartID: "cart-1", LineID: line.ID})
	require.NoError(t, err)
	require.True(t, res.Cart.IsEmpty())

	// Повторное удаление той же позиции не является ошибкой
	res, err = uc.RemoveLine(context.Background(), &RemoveLineReq{CartID: "cart-1", LineID: line.ID})
	require.NoError(t, err)
	require.True(t, res.Cart.IsEmpty())
}

func TestCartUC_Checkout_RequiresAddress(t *testing.T) {
	uc := newCartUCForTest(&cartRepoMock{}, &productRepoMock{})

	_, err := uc.Checkout(context.Background(), &CheckoutReq{CartID: "cart-1", DeliveryAddress: "   "})

	require.ErrorIs(t, err, e.ErrDeliveryAddrRequired)
}

func TestCartUC_Checkout_EmptyCart(t *testing.T) {
	uc := newCartUCForTest(&cartRepoMock{}, &productRepoMock{})

	_, err := uc.Checkout(context.Background(), &CheckoutReq{CartID: "cart-1", DeliveryAddress: "12 Harbor St"})

	require.ErrorIs(t, err, e.ErrCartEmpty)
}
