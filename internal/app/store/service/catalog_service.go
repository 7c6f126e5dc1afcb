package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/repository"

	"github.com/google/uuid"
)

// CatalogService обрабатывает бизнес-логику каталога товаров.
// Все выборки - линейный скан коллекции, индексов нет
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService создает новый сервис каталога
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// GetProduct получает товар по ID
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// GetAll возвращает все товары без фильтра по статусу
func (s *CatalogService) GetAll(ctx context.Context) []entity.Product {
	return s.productRepo.GetAll(ctx)
}

// GetBySeller возвращает товары одного продавца, включая неодобренные
func (s *CatalogService) GetBySeller(ctx context.Context, sellerID uuid.UUID) []entity.Product {
	result := []entity.Product{}
	for _, p := range s.productRepo.GetAll(ctx) {
		if p.SellerID == sellerID {
			result = append(result, p)
		}
	}
	return result
}

// Search ищет по одобренным товарам: подстрока в названии или описании
// без учёта регистра, плюс точное совпадение категории.
// Пустой запрос или категория означает отсутствие фильтра по этой оси
func (s *CatalogService) Search(ctx context.Context, query, category string) []entity.Product {
	query = strings.ToLower(query)

	result := []entity.Product{}
	for _, p := range s.productRepo.GetAll(ctx) {
		if p.Status != entity.ProductStatusApproved {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Create создает товар в статусе pending с нулевым рейтингом
func (s *CatalogService) Create(ctx context.Context, sellerID uuid.UUID, sellerName string, req *entity.CreateProductRequest) (*entity.Product, error) {
	images := req.Images
	if images == nil {
		images = []string{}
	}

	stock := req.Stock
	if stock == 0 {
		stock = 1
	}

	product := entity.Product{
		ID:          uuid.New(),
		SellerID:    sellerID,
		SellerName:  sellerName,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       stock,
		Category:    req.Category,
		Images:      images,
		Status:      entity.ProductStatusPending,
		Rating:      0,
		Reviews:     []entity.Review{},
		Sold:        0,
		CreatedAt:   time.Now(),
	}

	products := s.productRepo.GetAll(ctx)
	products = append(products, product)
	if err := s.productRepo.ReplaceAll(ctx, products); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	return &product, nil
}

// Update вливает заполненные поля запроса в запись товара
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, req *entity.UpdateProductRequest) (*entity.Product, error) {
	products := s.productRepo.GetAll(ctx)
	idx := s.indexOf(products, id)
	if idx == -1 {
		return nil, ErrProductNotFound
	}

	if req.Title != nil {
		products[idx].Title = *req.Title
	}
	if req.Description != nil {
		products[idx].Description = *req.Description
	}
	if req.Price != nil {
		products[idx].Price = *req.Price
	}
	if req.Stock != nil {
		products[idx].Stock = *req.Stock
	}
	if req.Category != nil {
		products[idx].Category = *req.Category
	}
	if req.Images != nil {
		products[idx].Images = *req.Images
	}

	if err := s.productRepo.ReplaceAll(ctx, products); err != nil {
		return nil, fmt.Errorf("failed to save products: %w", err)
	}

	return &products[idx], nil
}

// Delete удаляет товар по ID
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	products := s.productRepo.GetAll(ctx)
	idx := s.indexOf(products, id)
	if idx == -1 {
		return ErrProductNotFound
	}

	products = append(products[:idx], products[idx+1:]...)
	if err := s.productRepo.ReplaceAll(ctx, products); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}

	return nil
}

// SetStatus меняет статус модерации товара
func (s *CatalogService) SetStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) (*entity.Product, error) {
	products := s.productRepo.GetAll(ctx)
	idx := s.indexOf(products, id)
	if idx == -1 {
		return nil, ErrProductNotFound
	}

	products[idx].Status = status
	if err := s.productRepo.ReplaceAll(ctx, products); err != nil {
		return nil, fmt.Errorf("failed to save products: %w", err)
	}

	return &products[idx], nil
}

// AddReview дописывает отзыв и пересчитывает рейтинг как среднее
// арифметическое всех звёзд, округлённое до одного знака
func (s *CatalogService) AddReview(ctx context.Context, id uuid.UUID, author string, req *entity.AddReviewRequest) (*entity.Product, error) {
	products := s.productRepo.GetAll(ctx)
	idx := s.indexOf(products, id)
	if idx == -1 {
		return nil, ErrProductNotFound
	}

	review := entity.Review{
		ID:        uuid.New(),
		Author:    author,
		Stars:     req.Stars,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	products[idx].Reviews = append(products[idx].Reviews, review)

	total := 0
	for _, r := range products[idx].Reviews {
		total += r.Stars
	}
	mean := float64(total) / float64(len(products[idx].Reviews))
	products[idx].Rating = math.Round(mean*10) / 10

	if err := s.productRepo.ReplaceAll(ctx, products); err != nil {
		return nil, fmt.Errorf("failed to save products: %w", err)
	}

	return &products[idx], nil
}

func (s *CatalogService) indexOf(products []entity.Product, id uuid.UUID) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
