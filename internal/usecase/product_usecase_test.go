package usecase

import (
	"context"
	"testing"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func newProductUCForTest(products map[int64]*domain.Product) *ProductUseCase {
	return NewProductUC(
		&productRepoMock{products: products},
		&categoryRepoMock{},
		nil,
		nil,
		&cacheRepoMock{},
		noopLogger{},
	)
}

func TestProductUC_GetProduct(t *testing.T) {
	uc := newProductUCForTest(map[int64]*domain.Product{
		7: {
			ID:          7,
			Name:        "Atlantic Salmon",
			Description: "Fresh Atlantic salmon fillet",
			Price:       2499,
			Unit:        "lb",
			IsAvailable: true,
			Rating:      4.8,
			Popular:     true,
		},
	})

	res, err := uc.GetProduct(context.Background(), 7)

	require.NoError(t, err)
	require.Equal(t, "Atlantic Salmon", res.Product.Name)
	require.Equal(t, "Fresh Atlantic salmon fillet", res.Product.Description)
	require.Equal(t, 4.8, res.Product.Rating)
	require.True(t, res.Product.Popular)
}

func TestProductUC_GetProduct_NotFound(t *testing.T) {
	uc := newProductUCForTest(nil)

	_, err := uc.GetProduct(context.Background(), 404)

	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestProductUC_RegisterNewProduct_InvalidRating(t *testing.T) {
	uc := newProductUCForTest(nil)

	req := &AddNewProductReq{
		Name:         "Atlantic Salmon",
		CategoryName: "Fish",
		Price:        2499,
		Unit:         "lb",
		Rating:       5.5,
		Images:       []ProductImage{{Data: []byte{0xFF}, MimeType: "image/jpeg", Size: 1}},
	}

	err := uc.RegisterNewProduct(context.Background(), req)

	require.ErrorIs(t, err, e.ErrInvalidRating)
}
