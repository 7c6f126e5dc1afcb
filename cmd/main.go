package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cuervostore/internal/app/store/config"
	"cuervostore/internal/app/store/handler"
	"cuervostore/internal/app/store/infrastructure"
	"cuervostore/internal/app/store/infrastructure/mailbox"
	"cuervostore/internal/app/store/infrastructure/messaging"
	"cuervostore/internal/app/store/processor"
	"cuervostore/internal/app/store/repository"
	"cuervostore/internal/app/store/service"
	"cuervostore/internal/app/store/util"
	"cuervostore/pkg/logger"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Инициализируем логгер
	logger.Init("store", cfg.Log.Level)

	// Подключаемся к key-value хранилищу
	kv, err := util.NewKVStore(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to key-value store")
	}
	defer kv.Close()

	logger.Info().Str("addr", cfg.Redis.Address()).Msg("connected to key-value store")

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(kv)
	productRepo := repository.NewProductRepository(kv)
	orderRepo := repository.NewOrderRepository(kv)
	cartRepo := repository.NewCartRepository(kv)
	sessionRepo := repository.NewSessionRepository(kv)
	messageRepo := repository.NewMessageRepository(kv)

	// Выбираем транспорт уведомлений
	var mailer infrastructure.MailSender
	switch cfg.Mail.Transport {
	case "kafka":
		mailer = messaging.NewKafkaMailer(cfg.Mail.KafkaBrokers, cfg.Mail.KafkaTopic)
		logger.Info().Strs("brokers", cfg.Mail.KafkaBrokers).Str("topic", cfg.Mail.KafkaTopic).
			Msg("using kafka mail transport")
	default:
		mailer = mailbox.NewMailer(messageRepo)
		logger.Info().Msg("using mailbox mail transport")
	}
	defer mailer.Close()

	// Менеджер session токенов
	tokens := util.NewSessionTokenManager(cfg.Session.SecretKey, cfg.Session.TokenDuration)

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo, sessionRepo, mailer, tokens)
	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, cartRepo)
	messageService := service.NewMessageService(messageRepo)

	// Демо-данные загружаются один раз, повторный запуск их не трогает
	if cfg.Seed {
		seedService := service.NewSeedService(kv, userRepo, productRepo)
		if err := seedService.Seed(context.Background()); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	// Планировщик статистики коллекций
	statsScheduler := processor.NewStatsScheduler(userRepo, productRepo, orderRepo, messageRepo)
	if err := statsScheduler.Start(context.Background(), cfg.Stats.Schedule); err != nil {
		logger.Fatal().Err(err).Msg("failed to start stats scheduler")
	}
	defer statsScheduler.Stop()

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService, messageService)
	authMiddleware := handler.NewAuthMiddleware(tokens, authService)

	// Настраиваем маршруты
	router := handler.SetupRoutes(authHandler, catalogHandler, cartHandler, orderHandler, authMiddleware)

	// Создаем HTTP сервер
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		logger.Info().Str("addr", cfg.Server.Address()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Ожидаем сигнала завершения (graceful shutdown)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	// Даем серверу 30 секунд на завершение текущих запросов
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped gracefully")
}
