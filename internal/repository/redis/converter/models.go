package converter

// CategoryRedisModel — категория в JSON-представлении кэша.
type CategoryRedisModel struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	DisplayOrder int64  `json:"display_order"`
}

// ProductRedisModel — товар в JSON-представлении кэша.
type ProductRedisModel struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Unit        string  `json:"unit"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	ImageKey    string  `json:"image_key"`
	IsAvailable bool    `json:"is_available"`
	Rating      float64 `json:"rating"`
	Popular     bool    `json:"popular"`
}

// CatalogSnapshotRedisModel — срез каталога в JSON-представлении кэша.
type CatalogSnapshotRedisModel struct {
	Categories []CategoryRedisModel `json:"categories"`
	Products   []ProductRedisModel  `json:"products"`
}
