package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// HTTP Метрики
// =============================================================================

// HttpRequestsTotal - счётчик всех HTTP запросов
// Labels: service, method, path, status
// Пример запроса PromQL: rate(http_requests_total{service="store"}[5m])
var HttpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"service", "method", "path", "status"},
)

// HttpRequestDuration - гистограмма времени ответа
// Пример: histogram_quantile(0.95, rate(http_request_duration_seconds_bucket[5m]))
var HttpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"service", "method", "path"},
)

// HttpRequestsInFlight - текущее количество обрабатываемых запросов
var HttpRequestsInFlight = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being processed",
	},
	[]string{"service"},
)

// =============================================================================
// Key-Value Store Метрики
// =============================================================================

// KvOpsTotal - счётчик операций с key-value хранилищем
// Labels: op (get, set, delete), status (ok, miss, error)
var KvOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kv_ops_total",
		Help: "Total number of key-value store operations",
	},
	[]string{"service", "op", "status"},
)

// KvOpDuration - время выполнения операций с хранилищем
var KvOpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kv_op_duration_seconds",
		Help:    "Duration of key-value store operations in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	},
	[]string{"service", "op"},
)

// =============================================================================
// Доменные метрики магазина
// =============================================================================

// AuthRegistrations - счётчик успешных регистраций
var AuthRegistrations = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "store_registrations_total",
		Help: "Total number of successful user registrations",
	},
)

// AuthLogins - счётчик успешных входов
var AuthLogins = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "store_logins_total",
		Help: "Total number of successful logins",
	},
)

// OrdersCreated - счётчик созданных заказов
var OrdersCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "store_orders_created_total",
		Help: "Total number of orders created",
	},
)

// MessagesQueued - счётчик поставленных в очередь уведомлений
// Labels: transport (mailbox, kafka)
var MessagesQueued = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "store_messages_queued_total",
		Help: "Total number of queued notification messages",
	},
	[]string{"transport"},
)

// MessageErrors - счётчик ошибок отправки уведомлений
var MessageErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "store_message_errors_total",
		Help: "Total number of notification delivery errors",
	},
	[]string{"transport"},
)

// =============================================================================
// Размеры коллекций (обновляются планировщиком)
// =============================================================================

// CollectionSize - текущий размер доменной коллекции
// Labels: collection (users, products, orders, messages)
var CollectionSize = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "store_collection_size",
		Help: "Current number of records in a domain collection",
	},
	[]string{"collection"},
)
