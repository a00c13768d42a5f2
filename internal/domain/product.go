package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64 // Цена хранится в центах
	Unit        string
	CategoryID  *int64 // nil — товар без категории
	ImageKey    string
	IsAvailable bool
	Rating      float64 // Средняя оценка в диапазоне 0..5
	Popular     bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(name string, price int64, unit string, categoryID *int64, imageKey string) *Product {
	return &Product{
		Name:        name,
		Price:       price,
		Unit:        unit,
		CategoryID:  categoryID,
		ImageKey:    imageKey,
		IsAvailable: true,
	}
}
