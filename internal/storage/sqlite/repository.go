package sqlite

import (
	"context"

	"transactions-service/internal/models"
	"transactions-service/internal/query"
	"transactions-service/internal/storage"
)

// Repository реализует интерфейс TransactionRepository для SQLite
type Repository struct {
	storage *SQLiteStorage
}

// NewRepository создает новый репозиторий SQLite
func NewRepository(storage *SQLiteStorage) storage.TransactionRepository {
	return &Repository{storage: storage}
}

// CreateTransaction сохраняет транзакцию в БД
func (r *Repository) CreateTransaction(ctx context.Context, in models.TransactionInput) (*models.TransactionRecord, error) {
	return r.storage.CreateTransaction(ctx, in)
}

// GetTransactionByID получает транзакцию по id
func (r *Repository) GetTransactionByID(ctx context.Context, id int64) (*models.TransactionRecord, error) {
	return r.storage.GetTransactionByID(ctx, id)
}

// ListTransactions получает все транзакции из БД
func (r *Repository) ListTransactions(ctx context.Context, q query.ListQuery) ([]*models.TransactionRecord, error) {
	return r.storage.ListTransactions(ctx, q)
}

// UpdateTransaction перезаписывает транзакцию
func (r *Repository) UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (*models.TransactionRecord, error) {
	return r.storage.UpdateTransaction(ctx, id, in)
}

// DeleteTransaction удаляет транзакцию
func (r *Repository) DeleteTransaction(ctx context.Context, id int64) error {
	return r.storage.DeleteTransaction(ctx, id)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.storage.Ping(ctx)
}

func (r *Repository) Close() error {
	return r.storage.Close()
}
