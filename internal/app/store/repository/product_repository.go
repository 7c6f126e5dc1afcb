package repository

import (
	"context"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/util"

	"github.com/google/uuid"
)

type productRepository struct {
	kv *util.KVStore
}

// NewProductRepository создает новый репозиторий товаров
func NewProductRepository(kv *util.KVStore) ProductRepository {
	return &productRepository{kv: kv}
}

// GetAll возвращает всю коллекцию товаров; при отсутствии ключа - пустой список
func (r *productRepository) GetAll(ctx context.Context) []entity.Product {
	products := []entity.Product{}
	r.kv.Get(ctx, keyProducts, &products)
	return products
}

// ReplaceAll перезаписывает коллекцию товаров целиком
func (r *productRepository) ReplaceAll(ctx context.Context, products []entity.Product) error {
	if !r.kv.Set(ctx, keyProducts, products) {
		return ErrStorageWrite
	}
	return nil
}

// GetByID находит товар по ID линейным сканом коллекции
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range r.GetAll(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}
