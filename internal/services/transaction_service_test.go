package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"transactions-service/internal/apperr"
	kafkamocks "transactions-service/internal/kafka/mocks"
	"transactions-service/internal/models"
	"transactions-service/internal/query"
	"transactions-service/internal/redis"
	redismocks "transactions-service/internal/redis/mocks"
	"transactions-service/internal/storage"
	storagemocks "transactions-service/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return d
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{"amount": json.Number("800"), "date": "2024-01-01"}
}

func TestNewTransactionService(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)
	mockProducer := new(kafkamocks.MockProducer)

	service := NewTransactionService(mockRepo, mockProducer)

	impl, ok := service.(*TransactionServiceImpl)
	require.True(t, ok)
	assert.Equal(t, mockRepo, impl.repo)
	assert.Equal(t, mockProducer, impl.producer)
	assert.Nil(t, impl.redisClient)
}

func TestTransactionService_CreateTransaction_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(storagemocks.MockTransactionRepository)
	mockProducer := new(kafkamocks.MockProducer)
	mockRedis := new(redismocks.MockClientInterface)
	service := NewTransactionServiceWithRedis(mockRepo, mockProducer, mockRedis)

	in := models.TransactionInput{Amount: 800, Date: mustDate(t, "2024-01-01")}
	mockRepo.On("CreateTransaction", ctx, in).
		Return(&models.TransactionRecord{ID: 1, Amount: 800, Date: in.Date}, nil)
	mockProducer.On("SendTransactionEvent", mock.MatchedBy(func(e *models.TransactionEvent) bool {
		return e.EventType == models.EventTypeCreated &&
			e.Data.TransactionID == 1 &&
			e.Data.Amount == 800 &&
			e.Data.Date == "2024-01-01"
	})).Return(nil)
	mockRedis.On("IncrementOperationStats", redis.OperationCreated).Return(nil)

	tx, err := service.CreateTransaction(ctx, validPayload())

	require.NoError(t, err)
	assert.Equal(t, &models.Transaction{ID: 1, Amount: 800, Date: "2024-01-01"}, tx)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
	mockRedis.AssertExpectations(t)
}

func TestTransactionService_CreateTransaction_ValidationError(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)
	mockProducer := new(kafkamocks.MockProducer)
	service := NewTransactionService(mockRepo, mockProducer)

	_, err := service.CreateTransaction(context.Background(), map[string]interface{}{
		"amount": json.Number("100"),
		"date":   "30-11-2023",
	})

	vErr, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindBadFormat, vErr.Kind)
	assert.Equal(t, "date", vErr.Field)

	// Ни одного обращения к хранилищу и Kafka
	mockRepo.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	mockProducer.AssertNotCalled(t, "SendTransactionEvent", mock.Anything)
}

func TestTransactionService_CreateTransaction_RepositoryError(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)
	mockProducer := new(kafkamocks.MockProducer)
	service := NewTransactionService(mockRepo, mockProducer)

	mockRepo.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

	_, err := service.CreateTransaction(context.Background(), validPayload())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	_, isValidation := apperr.AsValidation(err)
	assert.False(t, isValidation)
	assert.False(t, apperr.IsNotFound(err))
	mockProducer.AssertNotCalled(t, "SendTransactionEvent", mock.Anything)
}

func TestTransactionService_CreateTransaction_NotificationFailuresIgnored(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)
	mockProducer := new(kafkamocks.MockProducer)
	mockRedis := new(redismocks.MockClientInterface)
	service := NewTransactionServiceWithRedis(mockRepo, mockProducer, mockRedis)

	mockRepo.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(&models.TransactionRecord{ID: 5, Amount: 800, Date: mustDate(t, "2024-01-01")}, nil)
	mockProducer.On("SendTransactionEvent", mock.Anything).Return(errors.New("broker down"))
	mockRedis.On("IncrementOperationStats", redis.OperationCreated).Return(errors.New("connection refused"))

	tx, err := service.CreateTransaction(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, int64(5), tx.ID)
}

func TestTransactionService_CreateTransaction_WithoutIntegrations(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)
	service := NewTransactionService(mockRepo, nil)

	mockRepo.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(&models.TransactionRecord{ID: 2, Amount: 800, Date: mustDate(t, "2024-01-01")}, nil)

	tx, err := service.CreateTransaction(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, int64(2), tx.ID)
}

func TestTransactionService_GetTransaction(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(storagemocks.MockTransactionRepository)
	service := NewTransactionService(mockRepo, nil)

	mockRepo.On("GetTransactionByID", ctx, int64(3)).
		Return(&models.TransactionRecord{ID: 3, Amount: -40, Date: mustDate(t, "2023-12-01")}, nil)
	mockRepo.On("GetTransactionByID", ctx, int64(4)).Return(nil, nil)

	tx, err := service.GetTransaction(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, &models.Transaction{ID: 3, Amount: -40, Date: "2023-12-01"}, tx)

	_, err = service.GetTransaction(ctx, "4")
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Transaction's id '4' not found", err.Error())

	_, err = service.GetTransaction(ctx, "abc")
	vErr, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindBadType, vErr.Kind)
	assert.Equal(t, "id", vErr.Field)
}

func TestTransactionService_ListTransactions(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(storagemocks.MockTransactionRepository)
	service := NewTransactionService(mockRepo, nil)

	mockRepo.On("ListTransactions", ctx, query.ListQuery{Sort: query.SortByAmount, Order: query.OrderAsc}).
		Return([]*models.TransactionRecord{
			{ID: 2, Amount: 90, Date: mustDate(t, "2023-12-01")},
			{ID: 1, Amount: 100, Date: mustDate(t, "2023-11-30")},
		}, nil)
	mockRepo.On("ListTransactions", ctx, query.DefaultListQuery()).
		Return([]*models.TransactionRecord{}, nil)

	list, err := service.ListTransactions(ctx, query.ListParams{Sort: query.Param("amount"), Order: query.Param("asc")})
	require.NoError(t, err)
	assert.Equal(t, []models.Transaction{
		{ID: 2, Amount: 90, Date: "2023-12-01"},
		{ID: 1, Amount: 100, Date: "2023-11-30"},
	}, list)

	list, err = service.ListTransactions(ctx, query.ListParams{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestTransactionService_ListTransactions_InvalidSort(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)
	service := NewTransactionService(mockRepo, nil)

	_, err := service.ListTransactions(context.Background(), query.ListParams{Sort: query.Param("id")})

	vErr, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindBadValue, vErr.Kind)
	assert.Equal(t, "sort", vErr.Field)
	mockRepo.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
}

func TestTransactionService_UpdateTransaction_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(storagemocks.MockTransactionRepository)
	mockProducer := new(kafkamocks.MockProducer)
	service := NewTransactionService(mockRepo, mockProducer)

	in := models.TransactionInput{Amount: 800, Date: mustDate(t, "2024-01-01")}
	mockRepo.On("GetTransactionByID", ctx, int64(7)).
		Return(&models.TransactionRecord{ID: 7, Amount: 1, Date: mustDate(t, "2020-01-01")}, nil)
	mockRepo.On("UpdateTransaction", ctx, int64(7), in).
		Return(&models.TransactionRecord{ID: 7, Amount: 800, Date: in.Date}, nil)
	mockProducer.On("SendTransactionEvent", mock.MatchedBy(func(e *models.TransactionEvent) bool {
		return e.EventType == models.EventTypeUpdated && e.Data.TransactionID == 7
	})).Return(nil)

	tx, err := service.UpdateTransaction(ctx, "7", validPayload())

	require.NoError(t, err)
	assert.Equal(t, &models.Transaction{ID: 7, Amount: 800, Date: "2024-01-01"}, tx)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestTransactionService_UpdateTransaction_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(storagemocks.MockTransactionRepository)
	service := NewTransactionService(mockRepo, nil)

	mockRepo.On("GetTransactionByID", ctx, int64(9)).Return(nil, nil)

	_, err := service.UpdateTransaction(ctx, "9", validPayload())

	assert.True(t, apperr.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionService_UpdateTransaction_BodyValidatedBeforeExistence(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)
	service := NewTransactionService(mockRepo, nil)

	_, err := service.UpdateTransaction(context.Background(), "9", map[string]interface{}{"date": "2024-01-01"})

	vErr, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindMissingField, vErr.Kind)
	assert.Equal(t, "amount", vErr.Field)
	mockRepo.AssertNotCalled(t, "GetTransactionByID", mock.Anything, mock.Anything)
}

func TestTransactionService_UpdateTransaction_DeletedConcurrently(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(storagemocks.MockTransactionRepository)
	service := NewTransactionService(mockRepo, nil)

	mockRepo.On("GetTransactionByID", ctx, int64(7)).
		Return(&models.TransactionRecord{ID: 7, Amount: 1, Date: mustDate(t, "2020-01-01")}, nil)
	mockRepo.On("UpdateTransaction", ctx, int64(7), mock.Anything).Return(nil, storage.ErrTransactionNotFound)

	_, err := service.UpdateTransaction(ctx, "7", validPayload())

	assert.True(t, apperr.IsNotFound(err))
}

func TestTransactionService_DeleteTransaction(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(storagemocks.MockTransactionRepository)
	mockRedis := new(redismocks.MockClientInterface)
	service := NewTransactionServiceWithRedis(mockRepo, nil, mockRedis)

	mockRepo.On("GetTransactionByID", ctx, int64(7)).
		Return(&models.TransactionRecord{ID: 7, Amount: 1, Date: mustDate(t, "2020-01-01")}, nil)
	mockRepo.On("DeleteTransaction", ctx, int64(7)).Return(nil)
	mockRedis.On("IncrementOperationStats", redis.OperationDeleted).Return(nil)

	require.NoError(t, service.DeleteTransaction(ctx, "7"))
	mockRepo.AssertExpectations(t)
	mockRedis.AssertExpectations(t)
}

func TestTransactionService_DeleteTransaction_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(storagemocks.MockTransactionRepository)
	service := NewTransactionService(mockRepo, nil)

	mockRepo.On("GetTransactionByID", ctx, int64(8)).Return(nil, nil)

	err := service.DeleteTransaction(ctx, "8")

	assert.True(t, apperr.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "DeleteTransaction", mock.Anything, mock.Anything)
}

func TestTransactionService_DeleteTransaction_OverflowingID(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)
	service := NewTransactionService(mockRepo, nil)

	err := service.DeleteTransaction(context.Background(), "99999999999999999999")

	assert.True(t, apperr.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "GetTransactionByID", mock.Anything, mock.Anything)
}

func TestTransactionService_OperationStats(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)

	stats, err := NewTransactionService(mockRepo, nil).OperationStats()
	require.NoError(t, err)
	assert.Nil(t, stats)

	mockRedis := new(redismocks.MockClientInterface)
	mockRedis.On("GetOperationStats").Return(map[string]int64{redis.OperationCreated: 3}, nil)

	stats, err = NewTransactionServiceWithRedis(mockRepo, nil, mockRedis).OperationStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats[redis.OperationCreated])
}

func TestTransactionService_DailyOperationStats(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)
	day := mustDate(t, "2024-01-01")

	stats, err := NewTransactionService(mockRepo, nil).DailyOperationStats(day)
	require.NoError(t, err)
	assert.Nil(t, stats)

	mockRedis := new(redismocks.MockClientInterface)
	mockRedis.On("GetDailyOperationCount", redis.OperationCreated, day).Return(int64(4), nil)
	mockRedis.On("GetDailyOperationCount", redis.OperationUpdated, day).Return(int64(1), nil)
	mockRedis.On("GetDailyOperationCount", redis.OperationDeleted, day).Return(int64(0), nil)

	stats, err = NewTransactionServiceWithRedis(mockRepo, nil, mockRedis).DailyOperationStats(day)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		redis.OperationCreated: 4,
		redis.OperationUpdated: 1,
		redis.OperationDeleted: 0,
	}, stats)
}

func TestTransactionService_DailyOperationStats_Error(t *testing.T) {
	day := mustDate(t, "2024-01-01")
	mockRedis := new(redismocks.MockClientInterface)
	mockRedis.On("GetDailyOperationCount", redis.OperationCreated, day).Return(int64(0), errors.New("connection refused"))

	_, err := NewTransactionServiceWithRedis(new(storagemocks.MockTransactionRepository), nil, mockRedis).DailyOperationStats(day)
	assert.ErrorContains(t, err, "connection refused")
}

func TestTransactionService_ResetOperationStats(t *testing.T) {
	mockRepo := new(storagemocks.MockTransactionRepository)
	assert.NoError(t, NewTransactionService(mockRepo, nil).ResetOperationStats())

	mockRedis := new(redismocks.MockClientInterface)
	mockRedis.On("ClearOperationStats").Return(nil).Once()

	assert.NoError(t, NewTransactionServiceWithRedis(mockRepo, nil, mockRedis).ResetOperationStats())
	mockRedis.AssertExpectations(t)
}

func TestTransactionService_Ping(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(storagemocks.MockTransactionRepository)
	mockRepo.On("Ping", ctx).Return(errors.New("closed"))

	err := NewTransactionService(mockRepo, nil).Ping(ctx)
	assert.EqualError(t, err, "closed")
}
