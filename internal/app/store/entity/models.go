package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role представляет роль пользователя в магазине
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// User представляет пользователя в системе
type User struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"` // уникальность без учёта регистра, проверяется при регистрации
	Phone           string    `json:"phone,omitempty"`
	PasswordHash    string    `json:"-"` // не возвращаем в JSON
	Role            Role      `json:"role"`
	Avatar          string    `json:"avatar,omitempty"`
	Career          string    `json:"career,omitempty"`
	Confirmed       bool      `json:"confirmed"`
	ConfirmToken    string    `json:"-"` // одноразовый код, очищается после подтверждения
	Banned          bool      `json:"banned"`
	SellerRequested bool      `json:"seller_requested"`
	CreatedAt       time.Time `json:"created_at"`
}

// Redacted возвращает копию пользователя без секретов (для сессии и выдачи наружу)
func (u User) Redacted() User {
	u.PasswordHash = ""
	u.ConfirmToken = ""
	return u
}

// Session представляет активную сессию: урезанная копия пользователя без пароля
type Session struct {
	ID        uuid.UUID `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductStatus представляет статус модерации товара
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"  // Ожидает модерации
	ProductStatusApproved ProductStatus = "approved" // Одобрен, виден в каталоге
	ProductStatusRejected ProductStatus = "rejected" // Отклонён модератором
)

// Product представляет товар в каталоге
type Product struct {
	ID          uuid.UUID     `json:"id"`
	SellerID    uuid.UUID     `json:"seller_id"`
	SellerName  string        `json:"seller_name"` // денормализованная копия, не обновляется при смене имени продавца
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"` // может уйти в минус при оформлении заказа, проверки нет
	Category    string        `json:"category"`
	Images      []string      `json:"images"`
	Status      ProductStatus `json:"status"`
	Rating      float64       `json:"rating"` // среднее арифметическое звёзд, округлённое до одного знака
	Reviews     []Review      `json:"reviews"`
	Sold        int           `json:"sold"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Review представляет отзыв на товар, только добавление
type Review struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Stars     int       `json:"stars"` // 1..5
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItem представляет позицию корзины со снимком данных товара
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"` // цена на момент добавления, не следит за каталогом
	Image     string    `json:"image,omitempty"`
	Qty       int       `json:"qty"`
}

// OrderStatus представляет статус заказа; переходы не валидируются
type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentSummary - единственные платёжные данные, которые сохраняются:
// маскированный номер карты, полный номер отбрасывается при создании заказа
type PaymentSummary struct {
	CardNumber string `json:"card_number"` // вида ****1234
	Holder     string `json:"holder,omitempty"`
}

// Order представляет заказ
type Order struct {
	ID        uuid.UUID      `json:"id"`
	BuyerID   uuid.UUID      `json:"buyer_id"`
	Items     []CartItem     `json:"items"`
	Total     float64        `json:"total"` // сумма price*qty на момент создания, далее не пересчитывается
	Address   string         `json:"address"`
	Payment   PaymentSummary `json:"payment"`
	Status    OrderStatus    `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// Message представляет отложенное mock-уведомление (письмо с кодом подтверждения)
type Message struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"` // email
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Token     string    `json:"token,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
