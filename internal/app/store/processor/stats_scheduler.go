package processor

import (
	"context"

	"cuervostore/internal/app/store/repository"
	"cuervostore/pkg/logger"
	"cuervostore/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// StatsScheduler периодически публикует размеры доменных коллекций
// в prometheus gauges. Доменные данные не трогает, только читает
type StatsScheduler struct {
	cron        *cron.Cron
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	messageRepo repository.MessageRepository
}

// NewStatsScheduler создает планировщик статистики
func NewStatsScheduler(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	messageRepo repository.MessageRepository,
) *StatsScheduler {
	return &StatsScheduler{
		cron:        cron.New(),
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		messageRepo: messageRepo,
	}
}

// Start запускает планировщик и сразу публикует первый снимок
func (s *StatsScheduler) Start(ctx context.Context, schedule string) error {
	logger.Info().Str("schedule", schedule).Msg("starting stats scheduler")

	_, err := s.cron.AddFunc(schedule, func() {
		s.report(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.report(ctx)

	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего запуска
func (s *StatsScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("stats scheduler stopped")
}

func (s *StatsScheduler) report(ctx context.Context) {
	users := len(s.userRepo.GetAll(ctx))
	products := len(s.productRepo.GetAll(ctx))
	orders := len(s.orderRepo.GetAll(ctx))
	messages := len(s.messageRepo.GetAll(ctx))

	metrics.SetCollectionSize("users", users)
	metrics.SetCollectionSize("products", products)
	metrics.SetCollectionSize("orders", orders)
	metrics.SetCollectionSize("messages", messages)

	logger.Debug().
		Int("users", users).
		Int("products", products).
		Int("orders", orders).
		Int("messages", messages).
		Msg("collection stats reported")
}
