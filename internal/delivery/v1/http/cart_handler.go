package http

import (
	"encoding/json"
	"net/http"

	"github.com/coralbay-tech/go-backend/internal/usecase"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type addItemBody struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type changeQuantityBody struct {
	Delta int64 `json:"delta"`
}

type checkoutBody struct {
	DeliveryAddress      string `json:"delivery_address"`
	DeliveryInstructions string `json:"delivery_instructions"`
}

// getCart
//
//	@Summary		Содержимое корзины
//	@Description	Возвращает корзину с рассчитанными суммами
//	@Tags			carts
//	@Produce		json
//	@Param			cartID	path		string	true	"Идентификатор корзины"
//	@Success		200		{object}	CartDTO
//	@Router			/carts/{cartID} [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	res, err := c.cartUsecase.GetCart(r.Context(), cartID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartDTO(res))
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Добавляет товар или увеличивает количество уже существующей позиции
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cartID	path		string			true	"Идентификатор корзины"
//	@Param			body	body		addItemBody		true	"Товар и количество"
//	@Success		200		{object}	CartDTO
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Failure		409		{object}	ErrorResponse	"Товар недоступен"
//	@Router			/carts/{cartID}/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	var body addItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	// Количество по умолчанию — одна единица
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	res, err := c.cartUsecase.AddItem(r.Context(), &usecase.AddItemReq{
		CartID:    cartID,
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartDTO(res))
}

// changeQuantity
//
//	@Summary		Изменение количества позиции
//	@Description	Применяет дельту к количеству; при нуле и ниже позиция удаляется
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cartID	path		string				true	"Идентификатор корзины"
//	@Param			lineID	path		string				true	"Идентификатор позиции"
//	@Param			body	body		changeQuantityBody	true	"Дельта количества"
//	@Success		200		{object}	CartDTO
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/carts/{cartID}/items/{lineID} [patch]
func (c *CartHandler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")
	lineID := chi.URLParam(r, "lineID")

	var body changeQuantityBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := c.cartUsecase.ChangeQuantity(r.Context(), &usecase.ChangeQuantityReq{
		CartID: cartID,
		LineID: lineID,
		Delta:  body.Delta,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartDTO(res))
}

// removeLine
//
//	@Summary		Удаление позиции из корзины
//	@Description	Удаляет позицию; повторное удаление не является ошибкой
//	@Tags			carts
//	@Produce		json
//	@Param			cartID	path		string	true	"Идентификатор корзины"
//	@Param			lineID	path		string	true	"Идентификатор позиции"
//	@Success		200		{object}	CartDTO
//	@Router			/carts/{cartID}/items/{lineID} [delete]
func (c *CartHandler) removeLine(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")
	lineID := chi.URLParam(r, "lineID")

	res, err := c.cartUsecase.RemoveLine(r.Context(), &usecase.RemoveLineReq{
		CartID: cartID,
		LineID: lineID,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartDTO(res))
}

// checkout
//
//	@Summary		Оформление заказа
//	@Description	Создаёт заказ из корзины и очищает её в одной транзакции
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cartID	path		string			true	"Идентификатор корзины"
//	@Param			body	body		checkoutBody	true	"Адрес и инструкции доставки"
//	@Success		201		{object}	OrderDTO
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Корзина пуста"
//	@Router			/carts/{cartID}/checkout [post]
func (c *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	var body checkoutBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := c.cartUsecase.Checkout(r.Context(), &usecase.CheckoutReq{
		CartID:               cartID,
		DeliveryAddress:      body.DeliveryAddress,
		DeliveryInstructions: body.DeliveryInstructions,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderDTO(*res.Order))
}
