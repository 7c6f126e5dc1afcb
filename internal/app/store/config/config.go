package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config содержит все настройки приложения
type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Session SessionConfig
	Mail    MailConfig
	Stats   StatsConfig
	Log     LogConfig
	Seed    bool
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Host string
	Port string
}

// RedisConfig - настройки подключения к Redis (backend key-value хранилища)
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SessionConfig - настройки session токенов
type SessionConfig struct {
	SecretKey     string
	TokenDuration time.Duration
}

// MailConfig - настройки транспорта mock-уведомлений.
// Transport "mailbox" складывает письма в хранилище (по умолчанию),
// "kafka" публикует их в топик
type MailConfig struct {
	Transport    string
	KafkaBrokers []string
	KafkaTopic   string
}

// StatsConfig - расписание публикации размеров коллекций в метрики
type StatsConfig struct {
	Schedule string
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level string
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	sessionDuration, err := time.ParseDuration(getEnv("SESSION_TOKEN_DURATION", "168h")) // 7 дней
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TOKEN_DURATION: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			SecretKey:     getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			TokenDuration: sessionDuration,
		},
		Mail: MailConfig{
			Transport:    getEnv("MAIL_TRANSPORT", "mailbox"),
			KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			KafkaTopic:   getEnv("KAFKA_MAIL_TOPIC", "store-notifications"),
		},
		Stats: StatsConfig{
			Schedule: getEnv("STATS_SCHEDULE", "@every 1m"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Seed: getEnvBool("SEED_DEMO_DATA", true),
	}, nil
}

// Address возвращает адрес Redis в формате host:port
func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Address возвращает адрес сервера в формате host:port
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает значение переменной окружения как int
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool получает значение переменной окружения как bool
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
