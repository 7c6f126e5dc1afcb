package repository

import (
	"context"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/util"

	"github.com/google/uuid"
)

type sessionRepository struct {
	kv *util.KVStore
}

// NewSessionRepository создает новый репозиторий сессий.
// Каждая сессия лежит под собственным ключом session:<id>,
// глобального "текущего пользователя" нет
func NewSessionRepository(kv *util.KVStore) SessionRepository {
	return &sessionRepository{kv: kv}
}

// Save сохраняет сессию
func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if !r.kv.Set(ctx, keySession+session.ID.String(), session) {
		return ErrStorageWrite
	}
	return nil
}

// Get возвращает сессию по ID
func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	if !r.kv.Get(ctx, keySession+id.String(), &session) {
		return nil, ErrNotFound
	}
	return &session, nil
}

// Delete безусловно удаляет сессию
func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) {
	r.kv.Delete(ctx, keySession+id.String())
}
