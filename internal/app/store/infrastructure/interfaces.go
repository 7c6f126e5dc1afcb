package infrastructure

import "context"

// MailSender - контракт отправки mock-уведомлений.
// По умолчанию письмо просто складывается в хранилище (mailbox);
// реальный транспорт подставляется за тем же контрактом
type MailSender interface {
	QueueMessage(ctx context.Context, to, subject, body, token string) error
	Close() error
}
