package redis

import "time"

// ClientInterface определяет интерфейс для работы с Redis
// Реализуется типом Client
type ClientInterface interface {
	// IncrementOperationStats увеличивает счетчики операции (created, updated, deleted)
	IncrementOperationStats(operation string) error

	// GetOperationStats получает общие счетчики по всем операциям
	GetOperationStats() (map[string]int64, error)

	// GetDailyOperationCount получает количество операций за день
	GetDailyOperationCount(operation string, day time.Time) (int64, error)

	// ClearOperationStats очищает все счетчики
	ClearOperationStats() error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)
