package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/repository"

	"github.com/google/uuid"
)

// OrderService обрабатывает бизнес-логику заказов:
// создание с маскированием карты и списанием остатков, смена статуса
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
}

// NewOrderService создает новый сервис заказов
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
	}
}

// Create создает заказ со статусом paid.
// Итог считается как сумма price*qty позиций на момент создания.
// От платёжных данных остаётся только маскированный хвост карты.
// Остаток каждого товара уменьшается на количество без проверки
// доступности: stock может уйти в минус
func (s *OrderService) Create(ctx context.Context, buyerID uuid.UUID, items []entity.CartItem, payment *entity.PaymentRequest, address string) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}

	order := entity.Order{
		ID:      uuid.New(),
		BuyerID: buyerID,
		Items:   items,
		Total:   total,
		Address: address,
		Payment: entity.PaymentSummary{
			CardNumber: maskCardNumber(payment.CardNumber),
			Holder:     payment.Holder,
		},
		Status:    entity.OrderStatusPaid,
		CreatedAt: time.Now(),
	}

	// Списываем остатки и накручиваем счётчик продаж;
	// позиции с неизвестным товаром пропускаются
	products := s.productRepo.GetAll(ctx)
	for _, item := range items {
		for i := range products {
			if products[i].ID == item.ProductID {
				products[i].Stock -= item.Qty
				products[i].Sold += item.Qty
				break
			}
		}
	}

	if err := s.productRepo.ReplaceAll(ctx, products); err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	orders := s.orderRepo.GetAll(ctx)
	orders = append(orders, order)
	if err := s.orderRepo.ReplaceAll(ctx, orders); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	return &order, nil
}

// Checkout оформляет заказ из текущей корзины покупателя и очищает её
func (s *OrderService) Checkout(ctx context.Context, buyerID uuid.UUID, req *entity.CheckoutRequest) (*entity.Order, error) {
	items := s.cartRepo.Get(ctx, buyerID)

	order, err := s.Create(ctx, buyerID, items, &req.Payment, req.Address)
	if err != nil {
		return nil, err
	}

	s.cartRepo.Delete(ctx, buyerID)

	return order, nil
}

// GetByID получает заказ по ID
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// GetByBuyer возвращает заказы одного покупателя
func (s *OrderService) GetByBuyer(ctx context.Context, buyerID uuid.UUID) []entity.Order {
	result := []entity.Order{}
	for _, o := range s.orderRepo.GetAll(ctx) {
		if o.BuyerID == buyerID {
			result = append(result, o)
		}
	}
	return result
}

// GetAll возвращает все заказы
func (s *OrderService) GetAll(ctx context.Context) []entity.Order {
	return s.orderRepo.GetAll(ctx)
}

// UpdateStatus перезаписывает статус заказа; переходы не валидируются
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	orders := s.orderRepo.GetAll(ctx)

	idx := -1
	for i := range orders {
		if orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrOrderNotFound
	}

	orders[idx].Status = status
	if err := s.orderRepo.ReplaceAll(ctx, orders); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}

	return nil
}

// maskCardNumber оставляет только последние четыре цифры номера карты
func maskCardNumber(cardNumber string) string {
	if len(cardNumber) < 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
