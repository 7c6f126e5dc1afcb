package repository

import (
	"context"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/util"
)

type messageRepository struct {
	kv *util.KVStore
}

// NewMessageRepository создает новый репозиторий mock-уведомлений.
// Коллекция только пополняется, реальная доставка не выполняется
func NewMessageRepository(kv *util.KVStore) MessageRepository {
	return &messageRepository{kv: kv}
}

// GetAll возвращает всю очередь уведомлений; при отсутствии ключа - пустую
func (r *messageRepository) GetAll(ctx context.Context) []entity.Message {
	messages := []entity.Message{}
	r.kv.Get(ctx, keyMessages, &messages)
	return messages
}

// Append дописывает уведомление в конец очереди
func (r *messageRepository) Append(ctx context.Context, msg *entity.Message) error {
	messages := r.GetAll(ctx)
	messages = append(messages, *msg)
	if !r.kv.Set(ctx, keyMessages, messages) {
		return ErrStorageWrite
	}
	return nil
}
