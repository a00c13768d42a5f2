package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func testProducts() []Product {
	return []Product{
		{ID: 1, Name: "Atlantic Salmon", Price: 2499, Unit: "lb", CategoryID: int64Ptr(1)},
		{ID: 2, Name: "Tiger Prawns", Price: 2899, Unit: "lb", CategoryID: int64Ptr(2)},
		{ID: 3, Name: "Smoked Salmon", Price: 1899, Unit: "each", CategoryID: int64Ptr(3)},
		{ID: 4, Name: "Oysters", Price: 3599, Unit: "dozen", CategoryID: int64Ptr(2)},
		{ID: 5, Name: "Sea Salt", Price: 499, Unit: "each", CategoryID: nil},
	}
}

func TestFilterProducts_NoFilters(t *testing.T) {
	products := testProducts()

	got := FilterProducts(products, nil, "")

	require.Equal(t, products, got)
}

func TestFilterProducts_ByCategory(t *testing.T) {
	got := FilterProducts(testProducts(), int64Ptr(2), "")

	require.Len(t, got, 2)
	require.Equal(t, "Tiger Prawns", got[0].Name)
	require.Equal(t, "Oysters", got[1].Name)
}

func TestFilterProducts_CaseInsensitiveQuery(t *testing.T) {
	got := FilterProducts(testProducts(), nil, "salmon")

	require.Len(t, got, 2)
	require.Equal(t, "Atlantic Salmon", got[0].Name)
	require.Equal(t, "Smoked Salmon", got[1].Name)

	// Смешанный регистр даёт тот же результат
	require.Equal(t, got, FilterProducts(testProducts(), nil, "SaLmOn"))
}

func TestFilterProducts_QueryAndCategoryTogether(t *testing.T) {
	got := FilterProducts(testProducts(), int64Ptr(1), "salmon")

	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)

	// Фильтры конъюнктивны: совпадение по названию при чужой категории не проходит
	require.Empty(t, FilterProducts(testProducts(), int64Ptr(2), "salmon"))
}

func TestFilterProducts_QueryIsNotTrimmed(t *testing.T) {
	// Строка из пробелов ищется буквально, а не как пустой фильтр
	got := FilterProducts(testProducts(), nil, "   ")

	require.Empty(t, got)
}

func TestFilterProducts_NilCategoryProductExcludedByCategoryFilter(t *testing.T) {
	got := FilterProducts(testProducts(), int64Ptr(5), "")

	require.Empty(t, got)
}

func TestFilterProducts_Idempotent(t *testing.T) {
	tests := []struct {
		name       string
		categoryID *int64
		query      string
	}{
		{name: "no filters", categoryID: nil, query: ""},
		{name: "category only", categoryID: int64Ptr(2), query: ""},
		{name: "query only", categoryID: nil, query: "salmon"},
		{name: "both filters", categoryID: int64Ptr(1), query: "salmon"},
		{name: "nothing matches", categoryID: int64Ptr(1), query: "oyster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := FilterProducts(testProducts(), tt.categoryID, tt.query)
			twice := FilterProducts(once, tt.categoryID, tt.query)

			require.Equal(t, once, twice)
		})
	}
}

func TestFilterProducts_EmptyInput(t *testing.T) {
	got := FilterProducts(nil, nil, "salmon")

	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFilterProducts_DoesNotMutateInput(t *testing.T) {
	products := testProducts()
	original := testProducts()

	FilterProducts(products, int64Ptr(2), "prawns")

	require.Equal(t, original, products)
}

func TestSortCategories_StableByDisplayOrder(t *testing.T) {
	categories := []Category{
		{ID: 1, Name: "Shellfish", DisplayOrder: 2},
		{ID: 2, Name: "Fish", DisplayOrder: 1},
		{ID: 3, Name: "Smoked", DisplayOrder: 2},
		{ID: 4, Name: "Featured", DisplayOrder: 0},
	}

	SortCategories(categories)

	require.Equal(t, int64(4), categories[0].ID)
	require.Equal(t, int64(2), categories[1].ID)
	// При равных DisplayOrder исходный порядок сохраняется
	require.Equal(t, int64(1), categories[2].ID)
	require.Equal(t, int64(3), categories[3].ID)
}
