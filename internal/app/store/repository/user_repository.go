package repository

import (
	"context"
	"strings"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/util"

	"github.com/google/uuid"
)

type userRepository struct {
	kv *util.KVStore
}

// NewUserRepository создает новый репозиторий пользователей
func NewUserRepository(kv *util.KVStore) UserRepository {
	return &userRepository{kv: kv}
}

// GetAll возвращает всю коллекцию пользователей; при отсутствии ключа - пустой список
func (r *userRepository) GetAll(ctx context.Context) []entity.User {
	users := []entity.User{}
	r.kv.Get(ctx, keyUsers, &users)
	return users
}

// ReplaceAll перезаписывает коллекцию пользователей целиком
func (r *userRepository) ReplaceAll(ctx context.Context, users []entity.User) error {
	if !r.kv.Set(ctx, keyUsers, users) {
		return ErrStorageWrite
	}
	return nil
}

// GetByID находит пользователя по ID линейным сканом коллекции
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.GetAll(ctx) {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// GetByEmail находит пользователя по email без учёта регистра
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.GetAll(ctx) {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// GetByConfirmToken находит неподтверждённого пользователя по коду подтверждения
func (r *userRepository) GetByConfirmToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	for _, u := range r.GetAll(ctx) {
		if u.ConfirmToken == token {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
