package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transactions-service/internal/models"
	"transactions-service/internal/query"
)

// GetTransactionByID получает транзакцию по id
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id int64) (*models.TransactionRecord, error) {
	query := `
		SELECT id, amount, date
		FROM transactions
		WHERE id = ?
	`

	rec, err := scanTransaction(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListTransactions получает все транзакции из БД.
// Дата хранится как текст YYYY-MM-DD, поэтому текстовая сортировка совпадает с хронологической.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, q query.ListQuery) ([]*models.TransactionRecord, error) {
	stmt := fmt.Sprintf(`
		SELECT id, amount, date
		FROM transactions
		ORDER BY %s
	`, q.OrderClause())

	rows, err := s.DB.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*models.TransactionRecord, 0)
	for rows.Next() {
		rec, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, rec)
	}

	return transactions, rows.Err()
}
