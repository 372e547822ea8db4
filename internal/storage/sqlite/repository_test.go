package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"transactions-service/config"
	"transactions-service/internal/models"
	"transactions-service/internal/query"
	"transactions-service/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) storage.TransactionRepository {
	t.Helper()

	cfg := &config.Config{
		DB: config.DBConfig{
			DBPath: filepath.Join(t.TempDir(), "test.db"),
		},
	}

	conn, err := NewConnection(cfg)
	require.NoError(t, err)

	repo := NewRepository(conn)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestNewConnection_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "transactions.db")

	conn, err := NewConnection(&config.Config{DB: config.DBConfig{DBPath: dbPath}})
	require.NoError(t, err)
	defer conn.Close()

	assert.FileExists(t, dbPath)
	assert.NoError(t, conn.Ping(context.Background()))
}

func TestNewConnection_InMemory(t *testing.T) {
	conn, err := NewConnection(&config.Config{DB: config.DBConfig{DBPath: ":memory:"}})
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	rec, err := repo.CreateTransaction(context.Background(), models.TransactionInput{Amount: 5, Date: date(t, "2024-02-29")})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", rec.Date.Format(models.DateLayout))
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTransaction(ctx, models.TransactionInput{Amount: 800, Date: date(t, "2024-01-01")})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(800), created.Amount)
	assert.Equal(t, date(t, "2024-01-01"), created.Date)

	fetched, err := repo.GetTransactionByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created, fetched)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := setupTestRepository(t)

	rec, err := repo.GetTransactionByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRepository_IDsAreNotReused(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	first, err := repo.CreateTransaction(ctx, models.TransactionInput{Amount: 1, Date: date(t, "2024-01-01")})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteTransaction(ctx, first.ID))

	second, err := repo.CreateTransaction(ctx, models.TransactionInput{Amount: 2, Date: date(t, "2024-01-02")})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestRepository_ListEmpty(t *testing.T) {
	repo := setupTestRepository(t)

	list, err := repo.ListTransactions(context.Background(), query.DefaultListQuery())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRepository_ListOrdering(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	inputs := []models.TransactionInput{
		{Amount: 100, Date: date(t, "2023-11-30")},
		{Amount: 90, Date: date(t, "2023-12-01")},
		{Amount: 110, Date: date(t, "2023-01-15")},
	}
	for _, in := range inputs {
		_, err := repo.CreateTransaction(ctx, in)
		require.NoError(t, err)
	}

	amounts := func(recs []*models.TransactionRecord) []int64 {
		out := make([]int64, 0, len(recs))
		for _, rec := range recs {
			out = append(out, rec.Amount)
		}
		return out
	}

	tests := []struct {
		q    query.ListQuery
		want []int64
	}{
		{query.DefaultListQuery(), []int64{90, 100, 110}},
		{query.ListQuery{Sort: query.SortByDate, Order: query.OrderAsc}, []int64{110, 100, 90}},
		{query.ListQuery{Sort: query.SortByAmount, Order: query.OrderAsc}, []int64{90, 100, 110}},
		{query.ListQuery{Sort: query.SortByAmount, Order: query.OrderDesc}, []int64{110, 100, 90}},
	}

	for _, tt := range tests {
		list, err := repo.ListTransactions(ctx, tt.q)
		require.NoError(t, err)
		assert.Equal(t, tt.want, amounts(list), tt.q.String())
	}
}

func TestRepository_Update(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTransaction(ctx, models.TransactionInput{Amount: 100, Date: date(t, "2023-11-30")})
	require.NoError(t, err)
	other, err := repo.CreateTransaction(ctx, models.TransactionInput{Amount: 7, Date: date(t, "2020-01-01")})
	require.NoError(t, err)

	updated, err := repo.UpdateTransaction(ctx, created.ID, models.TransactionInput{Amount: 250, Date: date(t, "2024-03-15")})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(250), updated.Amount)
	assert.Equal(t, date(t, "2024-03-15"), updated.Date)

	// Обновляется ровно одна строка
	untouched, err := repo.GetTransactionByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, other, untouched)
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := setupTestRepository(t)

	_, err := repo.UpdateTransaction(context.Background(), 99, models.TransactionInput{Amount: 1, Date: date(t, "2024-01-01")})
	assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTransaction(ctx, models.TransactionInput{Amount: 100, Date: date(t, "2023-11-30")})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTransaction(ctx, created.ID))

	rec, err := repo.GetTransactionByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, rec)

	assert.ErrorIs(t, repo.DeleteTransaction(ctx, created.ID), storage.ErrTransactionNotFound)
}

func TestRepository_NormalizesTimestampRows(t *testing.T) {
	cfg := &config.Config{DB: config.DBConfig{DBPath: filepath.Join(t.TempDir(), "legacy.db")}}
	conn, err := NewConnection(cfg)
	require.NoError(t, err)
	defer conn.Close()

	// Строка, записанная сторонним клиентом с меткой времени вместо даты
	_, err = conn.DB.Exec(`INSERT INTO transactions (amount, date) VALUES (?, ?)`, 42, "2023-12-01 13:45:00")
	require.NoError(t, err)

	list, err := NewRepository(conn).ListTransactions(context.Background(), query.DefaultListQuery())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, date(t, "2023-12-01"), list[0].Date)
}
