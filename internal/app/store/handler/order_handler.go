package handler

import (
	"errors"
	"net/http"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/service"
	"cuervostore/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OrderHandler обрабатывает HTTP запросы заказов
type OrderHandler struct {
	orderService   service.OrderServiceInterface
	messageService service.MessageServiceInterface
	validator      *validator.Validate
}

// NewOrderHandler создает новый обработчик заказов
func NewOrderHandler(orderService service.OrderServiceInterface, messageService service.MessageServiceInterface) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		messageService: messageService,
		validator:      validator.New(),
	}
}

// Checkout обрабатывает POST /orders/checkout - заказ из текущей корзины
func (h *OrderHandler) Checkout(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req entity.CheckoutRequest
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

	order, err := h.orderService.Checkout(c.Request.Context(), session.User.ID, &req)
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{
				Error:   "Bad Request",
				Message: "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create order",
		})
		return
	}

	metrics.OrdersCreated.Inc()
	c.JSON(http.StatusCreated, order)
}

// Mine обрабатывает GET /orders - заказы текущего покупателя
func (h *OrderHandler) Mine(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized"})
		return
	}

	orders := h.orderService.GetByBuyer(c.Request.Context(), session.User.ID)

	c.JSON(http.StatusOK, entity.OrderListResponse{
		Orders: orders,
		Total:  len(orders),
	})
}

// All обрабатывает GET /orders/all - все заказы, только админ
func (h *OrderHandler) All(c *gin.Context) {
	orders := h.orderService.GetAll(c.Request.Context())

	c.JSON(http.StatusOK, entity.OrderListResponse{
		Orders: orders,
		Total:  len(orders),
	})
}

// Get обрабатывает GET /orders/:id - покупатель видит только свой заказ
func (h *OrderHandler) Get(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid order ID",
		})
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{
				Error:   "Not Found",
				Message: "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get order",
		})
		return
	}

	if order.BuyerID != session.User.ID && session.User.Role != entity.RoleAdmin {
		c.JSON(http.StatusForbidden, entity.ErrorResponse{
			Error:   "Forbidden",
			Message: "Not your order",
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateStatus обрабатывает PUT /orders/:id/status - только админ.
// Значение статуса не валидируется, машины состояний нет
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid order ID",
		})
		return
	}

	var req entity.UpdateOrderStatusRequest
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

	if err := h.orderService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{
				Error:   "Not Found",
				Message: "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update order status",
		})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Order status updated"})
}

// Messages обрабатывает GET /messages - очередь mock-уведомлений, только админ
func (h *OrderHandler) Messages(c *gin.Context) {
	messages := h.messageService.List(c.Request.Context())

	c.JSON(http.StatusOK, entity.MessageListResponse{
		Messages: messages,
		Total:    len(messages),
	})
}
