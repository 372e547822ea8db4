package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockClientInterface является моком для redis.ClientInterface интерфейса
type MockClientInterface struct {
	mock.Mock
}

// IncrementOperationStats мок для IncrementOperationStats
func (m *MockClientInterface) IncrementOperationStats(operation string) error {
	args := m.Called(operation)
	return args.Error(0)
}

// GetOperationStats мок для GetOperationStats
func (m *MockClientInterface) GetOperationStats() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// GetDailyOperationCount мок для GetDailyOperationCount
func (m *MockClientInterface) GetDailyOperationCount(operation string, day time.Time) (int64, error) {
	args := m.Called(operation, day)
	return args.Get(0).(int64), args.Error(1)
}

// ClearOperationStats мок для ClearOperationStats
func (m *MockClientInterface) ClearOperationStats() error {
	args := m.Called()
	return args.Error(0)
}

// Close мок для Close
func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}
