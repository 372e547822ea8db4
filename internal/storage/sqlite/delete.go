package sqlite

import (
	"context"

	"transactions-service/internal/storage"
)

// DeleteTransaction удаляет транзакцию с указанным id
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id int64) error {
	query := `DELETE FROM transactions WHERE id = ?`

	var affected int64
	err := retryOperation(func() error {
		res, err := s.DB.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	}, writeRetries, writeRetryDelay)
	if err != nil {
		return err
	}

	if affected == 0 {
		return storage.ErrTransactionNotFound
	}
	return nil
}
