package handler

import (
	"errors"
	"net/http"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CartHandler обрабатывает HTTP запросы корзины текущего пользователя
type CartHandler struct {
	cartService service.CartServiceInterface
	validator   *validator.Validate
}

// NewCartHandler создает новый обработчик корзины
func NewCartHandler(cartService service.CartServiceInterface) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// Get обрабатывает GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, h.cartService.Get(c.Request.Context(), session.User.ID))
}

// AddItem обрабатывает POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req entity.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid request body",
		})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
		})
		return
	}

	cart, err := h.cartService.Add(c.Request.Context(), session.User.ID, req.ProductID, req.Qty)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{
				Error:   "Not Found",
				Message: "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// UpdateItem обрабатывает PUT /cart/items/:productId; qty <= 0 удаляет позицию
func (h *CartHandler) UpdateItem(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized"})
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid product ID",
		})
		return
	}

	var req entity.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid request body",
		})
		return
	}

	cart, err := h.cartService.UpdateQty(c.Request.Context(), session.User.ID, productID, req.Qty)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// RemoveItem обрабатывает DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized"})
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid product ID",
		})
		return
	}

	cart, err := h.cartService.Remove(c.Request.Context(), session.User.ID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// Clear обрабатывает DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), session.User.ID); err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Cart cleared"})
}
