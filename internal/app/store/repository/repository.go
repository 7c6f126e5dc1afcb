package repository

import (
	"context"
	"errors"

	"cuervostore/internal/app/store/entity"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrStorageWrite = errors.New("storage write failed")
)

// Ключи коллекций в key-value хранилище.
// Каждая коллекция лежит целиком под одним ключом; любая запись
// заменяет значение полностью (get-all / replace-all модель)
const (
	keyUsers    = "users"
	keyProducts = "products"
	keyOrders   = "orders"
	keyMessages = "messages"
	keyCart     = "cart:"    // + owner id
	keySession  = "session:" // + session id
)

type UserRepository interface {
	GetAll(ctx context.Context) []entity.User
	ReplaceAll(ctx context.Context, users []entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByConfirmToken(ctx context.Context, token string) (*entity.User, error)
}

type ProductRepository interface {
	GetAll(ctx context.Context) []entity.Product
	ReplaceAll(ctx context.Context, products []entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}

type OrderRepository interface {
	GetAll(ctx context.Context) []entity.Order
	ReplaceAll(ctx context.Context, orders []entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}

type CartRepository interface {
	Get(ctx context.Context, ownerID uuid.UUID) []entity.CartItem
	Replace(ctx context.Context, ownerID uuid.UUID, items []entity.CartItem) error
	Delete(ctx context.Context, ownerID uuid.UUID)
}

type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Delete(ctx context.Context, id uuid.UUID)
}

type MessageRepository interface {
	GetAll(ctx context.Context) []entity.Message
	Append(ctx context.Context, msg *entity.Message) error
}
