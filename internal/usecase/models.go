package usecase

import (
	"time"

	"github.com/coralbay-tech/go-backend/internal/domain"
)

// CATALOG USECASE

// GetCatalogReq — параметры фильтрации каталога. Nil-категория и пустой
// запрос означают отсутствие соответствующего фильтра.
type GetCatalogReq struct {
	CategoryID *int64
	Query      string
}

// CatalogSnapshot — неизменяемый на время одного запроса срез каталога.
type CatalogSnapshot struct {
	Categories []domain.Category
	Products   []domain.Product
}

// GetCatalogRes — отфильтрованный каталог для отображения.
type GetCatalogRes struct {
	Categories []domain.Category
	Products   []domain.Product
}

// CART USECASE

type AddItemReq struct {
	CartID    string
	ProductID int64
	Quantity  int64
}

type ChangeQuantityReq struct {
	CartID string
	LineID string
	Delta  int64
}

type RemoveLineReq struct {
	CartID string
	LineID string
}

// CartRes — корзина вместе с рассчитанными суммами.
type CartRes struct {
	Cart   *domain.Cart
	Totals domain.Totals
}

type CheckoutReq struct {
	CartID               string
	DeliveryAddress      string
	DeliveryInstructions string
}

type CheckoutRes struct {
	Order *domain.Order
}

// ORDER USECASE

// OrdersRes — заказы, разложенные на активные и исторические.
type OrdersRes struct {
	Active  []domain.Order
	History []domain.Order
}

// PRODUCT USECASE

// AddNewProductReq — запрос на регистрацию нового товара в каталоге.
type AddNewProductReq struct {
	Name         string
	Description  string
	CategoryName string
	DisplayOrder int64
	Price        int64 // Цена в центах
	Unit         string
	Rating       float64
	Popular      bool
	Images       []ProductImage
}

// GetProductRes — карточка товара для экрана деталей.
type GetProductRes struct {
	Product *domain.Product
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const OrderCreated OutboxEventType = "order.created"

// OutboxEvent — запись transactional outbox для публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderCreatedPayload — JSON-тело события о создании заказа.
type OrderCreatedPayload struct {
	EventID    string `json:"event_id"`
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	ItemCount  int64  `json:"item_count"`
	TotalCents int64  `json:"total_cents"`
	CreatedAt  int64  `json:"created_at"`
}

type WriteRawMessageReq struct {
	OrderID string
	Payload []byte
}

// MAPPERS

func NewCatalogSnapshot(categories []domain.Category, products []domain.Product) *CatalogSnapshot {
	return &CatalogSnapshot{
		Categories: categories,
		Products:   products,
	}
}

func NewGetCatalogRes(categories []domain.Category, products []domain.Product) *GetCatalogRes {
	return &GetCatalogRes{
		Categories: categories,
		Products:   products,
	}
}

func NewCartRes(cart *domain.Cart, totals domain.Totals) *CartRes {
	return &CartRes{
		Cart:   cart,
		Totals: totals,
	}
}

func NewOrdersRes(active, history []domain.Order) *OrdersRes {
	return &OrdersRes{
		Active:  active,
		History: history,
	}
}

func NewAddNewProductReq(name, description, category string, displayOrder, price int64, unit string, rating float64, popular bool, images []ProductImage) *AddNewProductReq {
	return &AddNewProductReq{
		Name:         name,
		Description:  description,
		CategoryName: category,
		DisplayOrder: displayOrder,
		Price:        price,
		Unit:         unit,
		Rating:       rating,
		Popular:      popular,
		Images:       images,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewWriteRawMessageReq(orderID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
