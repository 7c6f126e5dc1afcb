package service

import (
	"context"
	"fmt"
	"time"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/repository"
	"cuervostore/internal/app/store/util"
	"cuervostore/pkg/logger"

	"github.com/google/uuid"
)

const keySeeded = "seeded"

// SeedService наполняет пустое хранилище демо-данными.
// Однократность обеспечивается флагом seeded в хранилище
type SeedService struct {
	kv          *util.KVStore
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewSeedService создает новый сервис демо-данных
func NewSeedService(kv *util.KVStore, userRepo repository.UserRepository, productRepo repository.ProductRepository) *SeedService {
	return &SeedService{
		kv:          kv,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// Seed создает демо-пользователей и товары, если хранилище ещё не засеяно
func (s *SeedService) Seed(ctx context.Context) error {
	var seeded bool
	if s.kv.Get(ctx, keySeeded, &seeded) && seeded {
		logger.Debug().Msg("demo data already seeded, skipping")
		return nil
	}

	admin, err := s.demoUser("Mr.Candy", "admin@cuervostore.mx", "admin123", entity.RoleAdmin, "TICS")
	if err != nil {
		return err
	}
	seller, err := s.demoUser("Ana Ramirez", "ana@demo.com", "demo123", entity.RoleSeller, "Nursing")
	if err != nil {
		return err
	}
	buyer, err := s.demoUser("Carlos Mejia", "carlos@demo.com", "demo123", entity.RoleBuyer, "Mechatronics")
	if err != nil {
		return err
	}
	seller.SellerRequested = true

	if err := s.userRepo.ReplaceAll(ctx, []entity.User{*admin, *seller, *buyer}); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	products := []entity.Product{
		s.demoProduct(seller, "Premium Nursing Kit", "Complete kit with stethoscope, blood pressure monitor and digital thermometer.", 850, 15, "health", 4.8, 23),
		s.demoProduct(admin, "Arduino Mega 2560 + Sensors", "Complete bundle for mechatronics and engineering projects. Includes 40 sensors and modules.", 1200, 8, "electronics", 4.9, 41),
		s.demoProduct(seller, "First Aid Manual", "Updated manual covering CPR techniques, trauma care and medical emergencies.", 320, 30, "books", 4.6, 67),
		s.demoProduct(admin, "Gaming Laptop Pro X", "15.6\" FHD 144Hz, RTX 4060, Intel i7-13th, 16GB RAM, 512GB NVMe.", 22999, 5, "electronics", 4.7, 12),
		s.demoProduct(seller, "Medical Scrubs Set", "Two-piece set in antimicrobial fabric. Available in blue, green and white, sizes S-XL.", 480, 20, "clothing", 4.5, 38),
		s.demoProduct(admin, "Certified Railway Helmet", "EN397 certified safety helmet for railway engineering with integrated flashlight mount.", 650, 12, "safety", 4.3, 9),
	}

	if err := s.productRepo.ReplaceAll(ctx, products); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	if !s.kv.Set(ctx, keySeeded, true) {
		return repository.ErrStorageWrite
	}

	logger.Info().Int("users", 3).Int("products", len(products)).Msg("demo data seeded")
	return nil
}

func (s *SeedService) demoUser(name, email, password string, role entity.Role, career string) (*entity.User, error) {
	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	return &entity.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Avatar:       "assets/avatars/default.svg",
		Career:       career,
		Confirmed:    true,
		Banned:       false,
		CreatedAt:    time.Now(),
	}, nil
}

func (s *SeedService) demoProduct(seller *entity.User, title, desc string, price float64, stock int, category string, rating float64, sold int) entity.Product {
	return entity.Product{
		ID:          uuid.New(),
		SellerID:    seller.ID,
		SellerName:  seller.Name,
		Title:       title,
		Description: desc,
		Price:       price,
		Stock:       stock,
		Category:    category,
		Images:      []string{},
		Status:      entity.ProductStatusApproved,
		Rating:      rating,
		Reviews:     []entity.Review{},
		Sold:        sold,
		CreatedAt:   time.Now(),
	}
}
