package service

import (
	"context"

	"cuervostore/internal/app/store/entity"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.RegisterResponse, error)
	ConfirmAccount(ctx context.Context, token string) error
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	GetSession(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)
	UpdateProfile(ctx context.Context, sessionID uuid.UUID, req *entity.UpdateProfileRequest) (*entity.User, error)
}

type CatalogServiceInterface interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetAll(ctx context.Context) []entity.Product
	GetBySeller(ctx context.Context, sellerID uuid.UUID) []entity.Product
	Search(ctx context.Context, query, category string) []entity.Product
	Create(ctx context.Context, sellerID uuid.UUID, sellerName string, req *entity.CreateProductRequest) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, req *entity.UpdateProductRequest) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) (*entity.Product, error)
	AddReview(ctx context.Context, id uuid.UUID, author string, req *entity.AddReviewRequest) (*entity.Product, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, ownerID uuid.UUID) *entity.CartResponse
	Add(ctx context.Context, ownerID, productID uuid.UUID, qty int) (*entity.CartResponse, error)
	UpdateQty(ctx context.Context, ownerID, productID uuid.UUID, qty int) (*entity.CartResponse, error)
	Remove(ctx context.Context, ownerID, productID uuid.UUID) (*entity.CartResponse, error)
	Clear(ctx context.Context, ownerID uuid.UUID) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, buyerID uuid.UUID, items []entity.CartItem, payment *entity.PaymentRequest, address string) (*entity.Order, error)
	Checkout(ctx context.Context, buyerID uuid.UUID, req *entity.CheckoutRequest) (*entity.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByBuyer(ctx context.Context, buyerID uuid.UUID) []entity.Order
	GetAll(ctx context.Context) []entity.Order
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
