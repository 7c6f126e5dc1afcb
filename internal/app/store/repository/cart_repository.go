package repository

import (
	"context"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/util"

	"github.com/google/uuid"
)

type cartRepository struct {
	kv *util.KVStore
}

// NewCartRepository создает новый репозиторий корзин.
// Корзина хранится отдельным значением на владельца, ключ cart:<owner>
func NewCartRepository(kv *util.KVStore) CartRepository {
	return &cartRepository{kv: kv}
}

// Get возвращает корзину владельца; при отсутствии ключа - пустую
func (r *cartRepository) Get(ctx context.Context, ownerID uuid.UUID) []entity.CartItem {
	items := []entity.CartItem{}
	r.kv.Get(ctx, keyCart+ownerID.String(), &items)
	return items
}

// Replace перезаписывает корзину владельца целиком
func (r *cartRepository) Replace(ctx context.Context, ownerID uuid.UUID, items []entity.CartItem) error {
	if !r.kv.Set(ctx, keyCart+ownerID.String(), items) {
		return ErrStorageWrite
	}
	return nil
}

// Delete удаляет корзину владельца
func (r *cartRepository) Delete(ctx context.Context, ownerID uuid.UUID) {
	r.kv.Delete(ctx, keyCart+ownerID.String())
}
