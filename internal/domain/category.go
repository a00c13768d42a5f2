package domain

import "time"

// Category описывает категорию каталога
type Category struct {
	ID           int64
	Name         string
	Icon         string
	DisplayOrder int64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	IsArchived   bool
}

func NewCategory(name, icon string, displayOrder int64) *Category {
	return &Category{
		Name:         name,
		Icon:         icon,
		DisplayOrder: displayOrder,
	}
}
