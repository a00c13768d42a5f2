package usecase

import "context"

type CatalogUC interface {
	GetCatalog(ctx context.Context, req *GetCatalogReq) (*GetCatalogRes, error)
}

type CartUC interface {
	GetCart(ctx context.Context, cartID string) (*CartRes, error)
	AddItem(ctx context.Context, req *AddItemReq) (*CartRes, error)
	ChangeQuantity(ctx context.Context, req *ChangeQuantityReq) (*CartRes, error)
	RemoveLine(ctx context.Context, req *RemoveLineReq) (*CartRes, error)
	Checkout(ctx context.Context, req *CheckoutReq) (*CheckoutRes, error)
}

type OrderUC interface {
	ListOrders(ctx context.Context) (*OrdersRes, error)
}

type ProductUC interface {
	RegisterNewProduct(ctx context.Context, req *AddNewProductReq) error
	GetProduct(ctx context.Context, productID int64) (*GetProductRes, error)
}
