package repository

import (
	"context"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/util"

	"github.com/google/uuid"
)

type orderRepository struct {
	kv *util.KVStore
}

// NewOrderRepository создает новый репозиторий заказов
func NewOrderRepository(kv *util.KVStore) OrderRepository {
	return &orderRepository{kv: kv}
}

// GetAll возвращает всю коллекцию заказов; при отсутствии ключа - пустой список
func (r *orderRepository) GetAll(ctx context.Context) []entity.Order {
	orders := []entity.Order{}
	r.kv.Get(ctx, keyOrders, &orders)
	return orders
}

// ReplaceAll перезаписывает коллекцию заказов целиком
func (r *orderRepository) ReplaceAll(ctx context.Context, orders []entity.Order) error {
	if !r.kv.Set(ctx, keyOrders, orders) {
		return ErrStorageWrite
	}
	return nil
}

// GetByID находит заказ по ID линейным сканом коллекции
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for _, o := range r.GetAll(ctx) {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, ErrNotFound
}
