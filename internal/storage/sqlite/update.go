package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"transactions-service/internal/models"
	"transactions-service/internal/shaper"
	"transactions-service/internal/storage"
)

// UpdateTransaction перезаписывает amount и date транзакции с указанным id
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (*models.TransactionRecord, error) {
	query := `
		UPDATE transactions
		SET amount = ?,
		    date = ?
		WHERE id = ?
		RETURNING id, amount, date
	`

	var rec *models.TransactionRecord
	err := retryOperation(func() error {
		var scanErr error
		rec, scanErr = scanTransaction(s.DB.QueryRowContext(ctx, query, in.Amount, shaper.FormatDate(in.Date), id))
		return scanErr
	}, writeRetries, writeRetryDelay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}
