package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestOrderUC_ListOrders(t *testing.T) {
	repo := &orderRepoMock{orders: []domain.Order{
		{ID: "o1", Status: domain.StatusDelivering},
		{ID: "o2", Status: domain.StatusPreparing},
		{ID: "o3", Status: domain.StatusCompleted},
		{ID: "o4", Status: domain.StatusCancelled},
	}}
	uc := NewOrderUC(repo, noopLogger{})

	res, err := uc.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Active, 2)
	require.Len(t, res.History, 2)
	require.Equal(t, "o1", res.Active[0].ID)
	require.Equal(t, "o2", res.Active[1].ID)
	require.Equal(t, "o3", res.History[0].ID)
	require.Equal(t, "o4", res.History[1].ID)
}

func TestOrderUC_ListOrders_Empty(t *testing.T) {
	uc := NewOrderUC(&orderRepoMock{}, noopLogger{})

	res, err := uc.ListOrders(context.Background())

	require.NoError(t, err)
	require.Empty(t, res.Active)
	require.Empty(t, res.History)
}

func TestOrderUC_ListOrders_UnknownStatusPropagates(t *testing.T) {
	repo := &orderRepoMock{orders: []domain.Order{
		{ID: "o1", Status: domain.OrderStatus("shipped")},
	}}
	uc := NewOrderUC(repo, noopLogger{})

	_, err := uc.ListOrders(context.Background())

	require.ErrorIs(t, err, e.ErrUnknownOrderStatus)
}

func TestOrderUC_ListOrders_RepoError(t *testing.T) {
	repo := &orderRepoMock{listErr: errors.New("db down")}
	uc := NewOrderUC(repo, noopLogger{})

	_, err := uc.ListOrders(context.Background())

	require.Error(t, err)
}
