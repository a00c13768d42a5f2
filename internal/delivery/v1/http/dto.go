package http

import (
	"time"

	"github.com/coralbay-tech/go-backend/internal/domain"
	"github.com/coralbay-tech/go-backend/internal/usecase"
)

// DTO-слой: наружу цены всегда уходят строками вида "24.99",
// внутри системы они живут в центах.

type CategoryDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon,omitempty"`
	DisplayOrder int64  `json:"display_order"`
}

type ProductDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       string  `json:"price"`
	Unit        string  `json:"unit"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	ImageKey    string  `json:"image_key,omitempty"`
	IsAvailable bool    `json:"is_available"`
	Rating      float64 `json:"rating"`
	Popular     bool    `json:"popular"`
}

type CatalogDTO struct {
	Categories []CategoryDTO `json:"categories"`
	Products   []ProductDTO  `json:"products"`
}

type CartLineDTO struct {
	ID        string `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Unit      string `json:"unit"`
	Quantity  int64  `json:"quantity"`
}

type CartDTO struct {
	ID          string        `json:"id"`
	Lines       []CartLineDTO `json:"lines"`
	ItemCount   int64         `json:"item_count"`
	Subtotal    string        `json:"subtotal"`
	DeliveryFee string        `json:"delivery_fee"`
	Total       string        `json:"total"`
}

type OrderDTO struct {
	ID                   string    `json:"id"`
	Status               string    `json:"status"`
	ItemCount            int64     `json:"item_count"`
	Total                string    `json:"total"`
	DeliveryAddress      string    `json:"delivery_address"`
	DeliveryInstructions string    `json:"delivery_instructions,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

type OrdersDTO struct {
	Active  []OrderDTO `json:"active"`
	History []OrderDTO `json:"history"`
}

func toCategoryDTO(c domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID,
		Name:         c.Name,
		Icon:         c.Icon,
		DisplayOrder: c.DisplayOrder,
	}
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       formatCents(p.Price),
		Unit:        p.Unit,
		CategoryID:  p.CategoryID,
		ImageKey:    p.ImageKey,
		IsAvailable: p.IsAvailable,
		Rating:      p.Rating,
		Popular:     p.Popular,
	}
}

func toCatalogDTO(res *usecase.GetCatalogRes) *CatalogDTO {
	categories := make([]CategoryDTO, 0, len(res.Categories))
	for _, c := range res.Categories {
		categories = append(categories, toCategoryDTO(c))
	}

	products := make([]ProductDTO, 0, len(res.Products))
	for _, p := range res.Products {
		products = append(products, toProductDTO(p))
	}

	return &CatalogDTO{
		Categories: categories,
		Products:   products,
	}
}

func toCartDTO(res *usecase.CartRes) *CartDTO {
	lines := make([]CartLineDTO, 0, len(res.Cart.Lines))
	for _, line := range res.Cart.Lines {
		lines = append(lines, CartLineDTO{
			ID:        line.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     formatCents(line.Price),
			Unit:      line.Unit,
			Quantity:  line.Quantity,
		})
	}

	return &CartDTO{
		ID:          res.Cart.ID,
		Lines:       lines,
		ItemCount:   res.Cart.ItemCount(),
		Subtotal:    formatCents(res.Totals.Subtotal),
		DeliveryFee: formatCents(res.Totals.DeliveryFee),
		Total:       formatCents(res.Totals.Total),
	}
}

func toOrderDTO(o domain.Order) OrderDTO {
	return OrderDTO{
		ID:                   o.ID,
		Status:               string(o.Status),
		ItemCount:            o.ItemCount,
		Total:                formatCents(o.Total),
		DeliveryAddress:      o.DeliveryAddress,
		DeliveryInstructions: o.DeliveryInstructions,
		CreatedAt:            o.CreatedAt,
	}
}

func toOrdersDTO(res *usecase.OrdersRes) *OrdersDTO {
	active := make([]OrderDTO, 0, len(res.Active))
	for _, o := range res.Active {
		active = append(active, toOrderDTO(o))
	}

	history := make([]OrderDTO, 0, len(res.History))
	for _, o := range res.History {
		history = append(history, toOrderDTO(o))
	}

	return &OrdersDTO{
		Active:  active,
		History: history,
	}
}
