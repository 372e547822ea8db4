package mocks

import (
	"context"

	"transactions-service/internal/models"
	"transactions-service/internal/query"

	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository является моком для storage.TransactionRepository интерфейса
type MockTransactionRepository struct {
	mock.Mock
}

// CreateTransaction мок для CreateTransaction
func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, in models.TransactionInput) (*models.TransactionRecord, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionRecord), args.Error(1)
}

// GetTransactionByID мок для GetTransactionByID
func (m *MockTransactionRepository) GetTransactionByID(ctx context.Context, id int64) (*models.TransactionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionRecord), args.Error(1)
}

// ListTransactions мок для ListTransactions
func (m *MockTransactionRepository) ListTransactions(ctx context.Context, q query.ListQuery) ([]*models.TransactionRecord, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TransactionRecord), args.Error(1)
}

// UpdateTransaction мок для UpdateTransaction
func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (*models.TransactionRecord, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionRecord), args.Error(1)
}

// DeleteTransaction мок для DeleteTransaction
func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Ping мок для Ping
func (m *MockTransactionRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close мок для Close
func (m *MockTransactionRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
