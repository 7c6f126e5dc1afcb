package mailbox

import (
	"context"
	"fmt"
	"time"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/repository"
	"cuervostore/pkg/metrics"

	"github.com/google/uuid"
)

// Mailer - транспорт по умолчанию: "отправка" письма сводится к
// добавлению записи в коллекцию messages, ничего наружу не уходит
type Mailer struct {
	messageRepo repository.MessageRepository
}

// NewMailer создает mailbox-транспорт поверх репозитория уведомлений
func NewMailer(messageRepo repository.MessageRepository) *Mailer {
	return &Mailer{messageRepo: messageRepo}
}

// QueueMessage дописывает письмо в очередь уведомлений
func (m *Mailer) QueueMessage(ctx context.Context, to, subject, body, token string) error {
	msg := &entity.Message{
		ID:        uuid.New(),
		Type:      "email",
		To:        to,
		Subject:   subject,
		Body:      body,
		Token:     token,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if err := m.messageRepo.Append(ctx, msg); err != nil {
		metrics.MessageErrors.WithLabelValues("mailbox").Inc()
		return fmt.Errorf("failed to queue message: %w", err)
	}

	metrics.MessagesQueued.WithLabelValues("mailbox").Inc()
	return nil
}

func (m *Mailer) Close() error {
	return nil
}
