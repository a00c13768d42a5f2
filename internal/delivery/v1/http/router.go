package http

import (
	_ "github.com/coralbay-tech/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/coralbay-tech/go-backend/internal/usecase"
	"github.com/coralbay-tech/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, orderUC usecase.OrderUC, prUC usecase.ProductUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(cartUC, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(orderUC, r.logger))
		registerProductRoutes(v1, NewProductHandler(prUC, r.logger))
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Get("/catalog", h.getCatalog)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/carts/{cartID}", func(cart chi.Router) {
		cart.Get("/", h.getCart)
		cart.Post("/items", h.addItem)
		cart.Patch("/items/{lineID}", h.changeQuantity)
		cart.Delete("/items/{lineID}", h.removeLine)
		cart.Post("/checkout", h.checkout)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Get("/orders", h.listOrders)
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.registerNewProduct)
		pr.Get("/{productID}", h.getProduct)
	})
}
