package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transactions-service/internal/models"
	"transactions-service/internal/query"
	"transactions-service/internal/shaper"
	"transactions-service/internal/storage"

	"gorm.io/gorm"
)

// transactionRow - строка таблицы transactions
type transactionRow struct {
	ID     int64     `gorm:"primaryKey;autoIncrement"`
	Amount int64     `gorm:"not null;index"`
	Date   time.Time `gorm:"type:date;not null;index"`
}

func (transactionRow) TableName() string {
	return "transactions"
}

func (r *transactionRow) toRecord() (*models.TransactionRecord, error) {
	date, err := shaper.NormalizeDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: %w", r.ID, err)
	}
	return &models.TransactionRecord{ID: r.ID, Amount: r.Amount, Date: date}, nil
}

// Repository реализует интерфейс TransactionRepository для PostgreSQL
type Repository struct {
	db *gorm.DB
}

// NewRepository создает новый репозиторий PostgreSQL
func NewRepository(db *gorm.DB) storage.TransactionRepository {
	return &Repository{db: db}
}

func (r *Repository) CreateTransaction(ctx context.Context, in models.TransactionInput) (*models.TransactionRecord, error) {
	row := transactionRow{Amount: in.Amount, Date: in.Date}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return row.toRecord()
}

func (r *Repository) GetTransactionByID(ctx context.Context, id int64) (*models.TransactionRecord, error) {
	var row transactionRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return row.toRecord()
}

func (r *Repository) ListTransactions(ctx context.Context, q query.ListQuery) ([]*models.TransactionRecord, error) {
	var rows []transactionRow
	if err := r.db.WithContext(ctx).Order(q.OrderClause()).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	records := make([]*models.TransactionRecord, 0, len(rows))
	for i := range rows {
		rec, err := rows[i].toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// UpdateTransaction перезаписывает строку с указанным id
func (r *Repository) UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (*models.TransactionRecord, error) {
	result := r.db.WithContext(ctx).
		Model(&transactionRow{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"amount": in.Amount, "date": in.Date})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, storage.ErrTransactionNotFound
	}

	row := transactionRow{ID: id, Amount: in.Amount, Date: in.Date}
	return row.toRecord()
}

func (r *Repository) DeleteTransaction(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&transactionRow{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrTransactionNotFound
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
