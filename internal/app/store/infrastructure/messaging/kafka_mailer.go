package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cuervostore/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// mailEvent - формат письма в топике уведомлений
type mailEvent struct {
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Token     string    `json:"token,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// KafkaMailer публикует письма в Kafka топик - альтернативный транспорт
// за контрактом MailSender, когда уведомления обрабатывает внешний consumer
type KafkaMailer struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaMailer создает Kafka-транспорт уведомлений
func NewKafkaMailer(brokers []string, topic string) *KafkaMailer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Second,
	}

	return &KafkaMailer{writer: writer, topic: topic}
}

// QueueMessage сериализует письмо и отправляет его в топик
func (m *KafkaMailer) QueueMessage(ctx context.Context, to, subject, body, token string) error {
	event := mailEvent{
		To:        to,
		Subject:   subject,
		Body:      body,
		Token:     token,
		Timestamp: time.Now(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal mail event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(to),
		Value: value,
		Time:  time.Now(),
	}

	if err := m.writer.WriteMessages(ctx, message); err != nil {
		metrics.MessageErrors.WithLabelValues("kafka").Inc()
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	metrics.MessagesQueued.WithLabelValues("kafka").Inc()
	return nil
}

func (m *KafkaMailer) Close() error {
	return m.writer.Close()
}
