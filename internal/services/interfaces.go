package services

import (
	"context"
	"time"

	"transactions-service/internal/models"
	"transactions-service/internal/query"
)

// TransactionService определяет интерфейс для работы с транзакциями.
// Идентификаторы и тела запросов принимаются в сыром виде и валидируются внутри сервиса
// до любого обращения к хранилищу.
type TransactionService interface {
	// ListTransactions возвращает все транзакции, отсортированные по sort/order
	ListTransactions(ctx context.Context, params query.ListParams) ([]models.Transaction, error)

	// GetTransaction возвращает транзакцию по id
	GetTransaction(ctx context.Context, rawID string) (*models.Transaction, error)

	// CreateTransaction создает транзакцию
	CreateTransaction(ctx context.Context, payload map[string]interface{}) (*models.Transaction, error)

	// UpdateTransaction полностью заменяет amount и date существующей транзакции
	UpdateTransaction(ctx context.Context, rawID string, payload map[string]interface{}) (*models.Transaction, error)

	// DeleteTransaction удаляет транзакцию
	DeleteTransaction(ctx context.Context, rawID string) error

	// OperationStats возвращает счетчики операций из Redis; nil, если Redis не подключен
	OperationStats() (map[string]int64, error)
	// DailyOperationStats возвращает счетчики операций за день; nil, если Redis не подключен
	DailyOperationStats(day time.Time) (map[string]int64, error)
	// ResetOperationStats обнуляет счетчики операций; без Redis ничего не делает
	ResetOperationStats() error

	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error
}
