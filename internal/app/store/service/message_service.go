package service

import (
	"context"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/repository"
)

type MessageServiceInterface interface {
	List(ctx context.Context) []entity.Message
}

// MessageService отдаёт очередь mock-уведомлений (ящик, который в демо
// заменяет почту). Доставки нет, только просмотр
type MessageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService создает новый сервис уведомлений
func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// List возвращает все уведомления в порядке постановки в очередь
func (s *MessageService) List(ctx context.Context) []entity.Message {
	return s.messageRepo.GetAll(ctx)
}
