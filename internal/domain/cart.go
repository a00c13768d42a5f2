package domain

import (
	"time"

	"github.com/google/uuid"
)

// CartLine — одна позиция корзины. Название, цена и единица измерения
// денормализованы из товара на момент добавления. Количество позиции
// всегда строго положительно: позиция с нулевым количеством удаляется.
type CartLine struct {
	ID        string
	ProductID int64
	Name      string
	Price     int64 // Цена за единицу в центах
	Unit      string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Cart — упорядоченный набор позиций с уникальными ID.
type Cart struct {
	ID    string
	Lines []CartLine
}

// Totals — суммы корзины в центах.
type Totals struct {
	Subtotal    int64
	DeliveryFee int64
	Total       int64
}

func NewCart(id string) *Cart {
	return &Cart{ID: id}
}

// AddOrIncrement добавляет товар в корзину. Если позиция для этого товара
// уже существует, её количество увеличивается на delta, иначе создаётся
// новая позиция в конце корзины.
func (c *Cart) AddOrIncrement(product *Product, delta int64) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID {
			c.Lines[i].Quantity += delta
			return &c.Lines[i]
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Unit:      product.Unit,
		Quantity:  delta,
	})

	return &c.Lines[len(c.Lines)-1]
}

// ChangeQuantity изменяет количество позиции на delta. Новое количество
// не опускается ниже нуля; позиция с нулевым количеством удаляется из
// корзины, а не остаётся с нулём. Неизвестный lineID — no-op.
func (c *Cart) ChangeQuantity(lineID string, delta int64) {
	for i := range c.Lines {
		if c.Lines[i].ID != lineID {
			continue
		}

		quantity := c.Lines[i].Quantity + delta
		if quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}

		c.Lines[i].Quantity = quantity
		return
	}
}

// RemoveLine безусловно удаляет позицию. Идемпотентна: отсутствие
// позиции не является ошибкой.
func (c *Cart) RemoveLine(lineID string) {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Line возвращает позицию по ID или nil.
func (c *Cart) Line(lineID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return &c.Lines[i]
		}
	}

	return nil
}

// IsEmpty сообщает, пуста ли корзина. Пустая корзина — валидное состояние.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount возвращает суммарное количество единиц товара в корзине.
func (c *Cart) ItemCount() int64 {
	var count int64
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}

// Totals считает суммы корзины целочисленно в центах, без плавающей точки.
func (c *Cart) Totals(deliveryFee int64) Totals {
	var subtotal int64
	for _, line := range c.Lines {
		subtotal += line.Price * line.Quantity
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal + deliveryFee,
	}
}
