package domain

import (
	"sort"
	"strings"
)

// FilterProducts возвращает товары, удовлетворяющие обоим фильтрам сразу:
// точному совпадению категории (если categoryID задан) и регистронезависимому
// поиску подстроки query в названии (если query не пуст). Запрос не триммится:
// строка из пробелов ищется буквально. Исходный срез не изменяется,
// относительный порядок товаров сохраняется.
func FilterProducts(products []Product, categoryID *int64, query string) []Product {
	result := make([]Product, 0, len(products))
	loweredQuery := strings.ToLower(query)

	for _, p := range products {
		if categoryID != nil && (p.CategoryID == nil || *p.CategoryID != *categoryID) {
			continue
		}

		if query != "" && !strings.Contains(strings.ToLower(p.Name), loweredQuery) {
			continue
		}

		result = append(result, p)
	}

	return result
}

// SortCategories устойчиво сортирует категории по возрастанию DisplayOrder.
// Значения DisplayOrder могут повторяться и иметь пропуски.
func SortCategories(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})
}
