package mocks

import (
	"context"
	"time"

	"transactions-service/internal/models"
	"transactions-service/internal/query"

	"github.com/stretchr/testify/mock"
)

// MockTransactionService является моком для services.TransactionService интерфейса
type MockTransactionService struct {
	mock.Mock
}

// ListTransactions мок для ListTransactions
func (m *MockTransactionService) ListTransactions(ctx context.Context, params query.ListParams) ([]models.Transaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

// GetTransaction мок для GetTransaction
func (m *MockTransactionService) GetTransaction(ctx context.Context, rawID string) (*models.Transaction, error) {
	args := m.Called(ctx, rawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// CreateTransaction мок для CreateTransaction
func (m *MockTransactionService) CreateTransaction(ctx context.Context, payload map[string]interface{}) (*models.Transaction, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// UpdateTransaction мок для UpdateTransaction
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, rawID string, payload map[string]interface{}) (*models.Transaction, error) {
	args := m.Called(ctx, rawID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// DeleteTransaction мок для DeleteTransaction
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, rawID string) error {
	args := m.Called(ctx, rawID)
	return args.Error(0)
}

// OperationStats мок для OperationStats
func (m *MockTransactionService) OperationStats() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// DailyOperationStats мок для DailyOperationStats
func (m *MockTransactionService) DailyOperationStats(day time.Time) (map[string]int64, error) {
	args := m.Called(day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// ResetOperationStats мок для ResetOperationStats
func (m *MockTransactionService) ResetOperationStats() error {
	args := m.Called()
	return args.Error(0)
}

// Ping мок для Ping
func (m *MockTransactionService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
