package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transactions-service/internal/models"
	"transactions-service/internal/shaper"
)

// rowScanner - общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTransaction читает строку и нормализует дату, которую драйвер может вернуть как time.Time или текст
func scanTransaction(row rowScanner) (*models.TransactionRecord, error) {
	var (
		rec     models.TransactionRecord
		rawDate interface{}
	)
	if err := row.Scan(&rec.ID, &rec.Amount, &rawDate); err != nil {
		return nil, err
	}

	date, err := shaper.NormalizeDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: %w", rec.ID, err)
	}
	rec.Date = date
	return &rec, nil
}

// CreateTransaction сохраняет транзакцию в БД и возвращает сохраненную строку
func (s *SQLiteStorage) CreateTransaction(ctx context.Context, in models.TransactionInput) (*models.TransactionRecord, error) {
	query := `
		INSERT INTO transactions (amount, date)
		VALUES (?, ?)
		RETURNING id, amount, date
	`

	var rec *models.TransactionRecord
	err := retryOperation(func() error {
		var scanErr error
		rec, scanErr = scanTransaction(s.DB.QueryRowContext(ctx, query, in.Amount, shaper.FormatDate(in.Date)))
		return scanErr
	}, writeRetries, writeRetryDelay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("insert returned no row")
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}
