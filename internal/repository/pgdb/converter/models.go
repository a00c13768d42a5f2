package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Price       int64      `db:"price"`
	Unit        string     `db:"unit"`
	CategoryID  *int64     `db:"category_id"`
	ImageKey    string     `db:"image_key"`
	IsAvailable bool       `db:"is_available"`
	Rating      float64    `db:"rating"`
	Popular     bool       `db:"popular"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	Icon         string     `db:"icon"`
	DisplayOrder int64      `db:"display_order"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
	IsArchived   bool       `db:"is_archived"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID                   string     `db:"id"`
	Status               string     `db:"status"`
	ItemCount            int64      `db:"item_count"`
	Total                int64      `db:"total"`
	DeliveryAddress      string     `db:"delivery_address"`
	DeliveryInstructions string     `db:"delivery_instructions"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     string     `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
