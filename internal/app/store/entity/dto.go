package entity

import "github.com/google/uuid"

// RegisterRequest - запрос на регистрацию
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	Career   string `json:"career"`
}

// RegisterResponse - ответ на регистрацию; код подтверждения возвращается
// наружу, потому что реальной почты нет - UI сам показывает его пользователю
type RegisterResponse struct {
	User         User   `json:"user"`
	ConfirmToken string `json:"confirm_token"`
}

// ConfirmRequest - запрос на подтверждение аккаунта
type ConfirmRequest struct {
	Token string `json:"token" validate:"required"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - ответ с сессией и подписанным session токеном
type LoginResponse struct {
	Session      Session `json:"session"`
	SessionToken string  `json:"session_token"`
}

// UpdateProfileRequest - частичное обновление профиля, пустые поля не трогаются
type UpdateProfileRequest struct {
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Career string `json:"career,omitempty"`
}

// CreateProductRequest - запрос на создание товара
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Images      []string `json:"images"`
}

// UpdateProductRequest - частичное обновление товара (nil поля не трогаются)
type UpdateProductRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int      `json:"stock,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Images      *[]string `json:"images,omitempty"`
}

// SetProductStatusRequest - запрос модератора на смену статуса товара
type SetProductStatusRequest struct {
	Status ProductStatus `json:"status" validate:"required,oneof=pending approved rejected"`
}

// AddReviewRequest - запрос на добавление отзыва
type AddReviewRequest struct {
	Stars int    `json:"stars" validate:"required,min=1,max=5"`
	Text  string `json:"text"`
}

// ProductListResponse - список товаров
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// AddCartItemRequest - запрос на добавление товара в корзину
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Qty       int       `json:"qty" validate:"required,gt=0"`
}

// UpdateCartItemRequest - запрос на изменение количества; qty <= 0 удаляет позицию
type UpdateCartItemRequest struct {
	Qty int `json:"qty"`
}

// CartResponse - корзина с производными total и count
type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

// PaymentRequest - платёжные данные при оформлении заказа;
// сохраняется только маскированный хвост номера карты
type PaymentRequest struct {
	CardNumber string `json:"card_number" validate:"required,min=12"`
	Holder     string `json:"holder"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// CheckoutRequest - запрос на оформление заказа из текущей корзины
type CheckoutRequest struct {
	Address string         `json:"address" validate:"required"`
	Payment PaymentRequest `json:"payment" validate:"required"`
}

// UpdateOrderStatusRequest - запрос на смену статуса заказа
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

// OrderListResponse - список заказов
type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

// MessageListResponse - очередь mock-уведомлений
type MessageListResponse struct {
	Messages []Message `json:"messages"`
	Total    int       `json:"total"`
}

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse - стандартный ответ об успехе
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
