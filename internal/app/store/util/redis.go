package util

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"cuervostore/pkg/logger"
	"cuervostore/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// keyPrefix - общий namespace всех ключей магазина
const keyPrefix = "cs:"

// KVStore - обёртка над Redis, хранит значения как JSON под namespaced ключами.
// Контракт: Get при отсутствии ключа или битом JSON оставляет fallback в dest
// и возвращает false; Set возвращает флаг успеха; ошибки наружу не поднимаются.
type KVStore struct {
	client *redis.Client
}

// NewKVStore подключается к Redis и проверяет соединение
func NewKVStore(addr, password string, db int) (*KVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &KVStore{client: client}, nil
}

// NewKVStoreWithClient оборачивает готовый клиент (используется в тестах с miniredis)
func NewKVStoreWithClient(client *redis.Client) *KVStore {
	return &KVStore{client: client}
}

// Get читает и декодирует значение по ключу в dest.
// Возвращает false если ключа нет, значение не декодируется или хранилище недоступно;
// dest в этом случае не изменяется, caller заранее кладёт туда fallback.
func (s *KVStore) Get(ctx context.Context, key string, dest interface{}) bool {
	start := time.Now()

	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.ObserveKvOp("get", "miss", start)
			return false
		}
		logger.Error().Err(err).Str("key", key).Msg("kv get failed")
		metrics.ObserveKvOp("get", "error", start)
		return false
	}

	// json.Unmarshal пишет в dest частично даже когда возвращает ошибку
	// (например UnmarshalTypeError на середине массива), поэтому декодируем
	// в отдельное значение и копируем в dest только после успеха
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		logger.Error().Str("key", key).Msg("kv get: dest must be a non-nil pointer")
		metrics.ObserveKvOp("get", "error", start)
		return false
	}

	decoded := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, decoded.Interface()); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("kv value is corrupt, using fallback")
		metrics.ObserveKvOp("get", "error", start)
		return false
	}
	rv.Elem().Set(decoded.Elem())

	metrics.ObserveKvOp("get", "ok", start)
	return true
}

// Set сериализует и записывает значение целиком, возвращает флаг успеха
func (s *KVStore) Set(ctx context.Context, key string, value interface{}) bool {
	start := time.Now()

	data, err := json.Marshal(value)
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("kv value serialization failed")
		metrics.ObserveKvOp("set", "error", start)
		return false
	}

	if err := s.client.Set(ctx, keyPrefix+key, data, 0).Err(); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("kv set failed")
		metrics.ObserveKvOp("set", "error", start)
		return false
	}

	metrics.ObserveKvOp("set", "ok", start)
	return true
}

// Delete безусловно удаляет ключ
func (s *KVStore) Delete(ctx context.Context, key string) {
	start := time.Now()

	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("kv delete failed")
		metrics.ObserveKvOp("delete", "error", start)
		return
	}

	metrics.ObserveKvOp("delete", "ok", start)
}

func (s *KVStore) Close() error {
	return s.client.Close()
}
