package metrics

import "time"

const serviceName = "store"

// ObserveKvOp записывает метрики одной операции с key-value хранилищем
func ObserveKvOp(op, status string, start time.Time) {
	KvOpsTotal.WithLabelValues(serviceName, op, status).Inc()
	KvOpDuration.WithLabelValues(serviceName, op).Observe(time.Since(start).Seconds())
}

// SetCollectionSize обновляет gauge размера коллекции
func SetCollectionSize(collection string, size int) {
	CollectionSize.WithLabelValues(collection).Set(float64(size))
}
