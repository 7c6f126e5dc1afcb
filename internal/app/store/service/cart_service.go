package service

import (
	"context"
	"fmt"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/repository"

	"github.com/google/uuid"
)

// CartService обрабатывает корзину: слияние количества по товару,
// снимок цены и названия на момент добавления. Каждая мутация
// перезаписывает корзину владельца целиком
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService создает новый сервис корзины
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get возвращает корзину с производными total и count
func (s *CartService) Get(ctx context.Context, ownerID uuid.UUID) *entity.CartResponse {
	return buildCartResponse(s.cartRepo.Get(ctx, ownerID))
}

// Add добавляет товар: существующая позиция увеличивает количество,
// новая - снимает название, цену и первую картинку товара
func (s *CartService) Add(ctx context.Context, ownerID, productID uuid.UUID, qty int) (*entity.CartResponse, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	items := s.cartRepo.Get(ctx, ownerID)

	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Qty += qty
			merged = true
			break
		}
	}

	if !merged {
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		items = append(items, entity.CartItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Image:     image,
			Qty:       qty,
		})
	}

	if err := s.cartRepo.Replace(ctx, ownerID, items); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return buildCartResponse(items), nil
}

// UpdateQty выставляет количество; qty <= 0 удаляет позицию,
// отсутствующая позиция - no-op
func (s *CartService) UpdateQty(ctx context.Context, ownerID, productID uuid.UUID, qty int) (*entity.CartResponse, error) {
	items := s.cartRepo.Get(ctx, ownerID)

	for i := range items {
		if items[i].ProductID == productID {
			if qty <= 0 {
				items = append(items[:i], items[i+1:]...)
			} else {
				items[i].Qty = qty
			}
			break
		}
	}

	if err := s.cartRepo.Replace(ctx, ownerID, items); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return buildCartResponse(items), nil
}

// Remove удаляет позицию по ID товара
func (s *CartService) Remove(ctx context.Context, ownerID, productID uuid.UUID) (*entity.CartResponse, error) {
	items := s.cartRepo.Get(ctx, ownerID)

	filtered := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}

	if err := s.cartRepo.Replace(ctx, ownerID, filtered); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return buildCartResponse(filtered), nil
}

// Clear опустошает корзину владельца
func (s *CartService) Clear(ctx context.Context, ownerID uuid.UUID) error {
	s.cartRepo.Delete(ctx, ownerID)
	return nil
}

// buildCartResponse считает производные total и count; они не хранятся
func buildCartResponse(items []entity.CartItem) *entity.CartResponse {
	total := 0.0
	count := 0
	for _, item := range items {
		total += item.Price * float64(item.Qty)
		count += item.Qty
	}
	return &entity.CartResponse{
		Items: items,
		Total: total,
		Count: count,
	}
}
