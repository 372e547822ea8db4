package storage

import (
	"context"
	"errors"

	"transactions-service/internal/models"
	"transactions-service/internal/query"
)

// ErrTransactionNotFound возвращается изменяющими операциями, если запрос не затронул ни одной строки
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository определяет интерфейс для работы с транзакциями в хранилище.
// Каждая операция - одна автоматически фиксируемая инструкция.
type TransactionRepository interface {
	// CreateTransaction сохраняет новую транзакцию; id назначает хранилище
	CreateTransaction(ctx context.Context, in models.TransactionInput) (*models.TransactionRecord, error)

	// GetTransactionByID получает транзакцию по id; возвращает nil, nil если ее нет
	GetTransactionByID(ctx context.Context, id int64) (*models.TransactionRecord, error)

	// ListTransactions получает все транзакции в заданном порядке
	ListTransactions(ctx context.Context, q query.ListQuery) ([]*models.TransactionRecord, error)

	// UpdateTransaction перезаписывает amount и date ровно одной строки с указанным id
	UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (*models.TransactionRecord, error)

	// DeleteTransaction удаляет строку с указанным id
	DeleteTransaction(ctx context.Context, id int64) error

	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error

	// Close закрывает соединение с хранилищем
	Close() error
}
