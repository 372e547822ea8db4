package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"transactions-service/internal/apperr"
	"transactions-service/internal/kafka"
	"transactions-service/internal/logger"
	"transactions-service/internal/models"
	"transactions-service/internal/query"
	"transactions-service/internal/redis"
	"transactions-service/internal/shaper"
	"transactions-service/internal/storage"
	"transactions-service/internal/validation"
)

const serviceName = "transactions-service"

// TransactionServiceImpl реализует интерфейс TransactionService
type TransactionServiceImpl struct {
	repo        storage.TransactionRepository
	producer    kafka.Producer        // Опционально: события об изменениях
	redisClient redis.ClientInterface // Опционально: счетчики операций
}

// NewTransactionService создает новый сервис транзакций
func NewTransactionService(repo storage.TransactionRepository, producer kafka.Producer) TransactionService {
	return &TransactionServiceImpl{
		repo:     repo,
		producer: producer,
	}
}

// NewTransactionServiceWithRedis создает новый сервис транзакций со счетчиками в Redis
func NewTransactionServiceWithRedis(repo storage.TransactionRepository, producer kafka.Producer, redisClient redis.ClientInterface) TransactionService {
	return &TransactionServiceImpl{
		repo:        repo,
		producer:    producer,
		redisClient: redisClient,
	}
}

// ListTransactions возвращает все транзакции в заданном порядке
func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, params query.ListParams) ([]models.Transaction, error) {
	q, err := query.ParseListQuery(params)
	if err != nil {
		return nil, s.rejected(err)
	}

	records, err := s.repo.ListTransactions(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return shaper.Transactions(records), nil
}

// GetTransaction возвращает транзакцию по id
func (s *TransactionServiceImpl) GetTransaction(ctx context.Context, rawID string) (*models.Transaction, error) {
	id, err := validation.ParseID(rawID)
	if err != nil {
		return nil, s.rejected(err)
	}

	rec, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	tx := shaper.Transaction(rec)
	return &tx, nil
}

// CreateTransaction валидирует тело и сохраняет новую транзакцию
func (s *TransactionServiceImpl) CreateTransaction(ctx context.Context, payload map[string]interface{}) (*models.Transaction, error) {
	in, err := validation.ValidateTransactionInput(payload)
	if err != nil {
		return nil, s.rejected(err)
	}

	rec, err := s.repo.CreateTransaction(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.notify(models.EventTypeCreated, redis.OperationCreated, rec.ID, rec)

	tx := shaper.Transaction(rec)
	return &tx, nil
}

// UpdateTransaction полностью заменяет транзакцию. Порядок: id, тело, существование, запись.
func (s *TransactionServiceImpl) UpdateTransaction(ctx context.Context, rawID string, payload map[string]interface{}) (*models.Transaction, error) {
	id, err := validation.ParseID(rawID)
	if err != nil {
		return nil, s.rejected(err)
	}

	in, err := validation.ValidateTransactionInput(payload)
	if err != nil {
		return nil, s.rejected(err)
	}

	if _, err := s.findExisting(ctx, id); err != nil {
		return nil, err
	}

	rec, err := s.repo.UpdateTransaction(ctx, id, in)
	if errors.Is(err, storage.ErrTransactionNotFound) {
		// Строку удалили между проверкой и записью
		return nil, apperr.NewNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.notify(models.EventTypeUpdated, redis.OperationUpdated, rec.ID, rec)

	tx := shaper.Transaction(rec)
	return &tx, nil
}

// DeleteTransaction удаляет транзакцию после проверки существования
func (s *TransactionServiceImpl) DeleteTransaction(ctx context.Context, rawID string) error {
	id, err := validation.ParseID(rawID)
	if err != nil {
		return s.rejected(err)
	}

	if _, err := s.findExisting(ctx, id); err != nil {
		return err
	}

	err = s.repo.DeleteTransaction(ctx, id)
	if errors.Is(err, storage.ErrTransactionNotFound) {
		return apperr.NewNotFoundError(id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.notify(models.EventTypeDeleted, redis.OperationDeleted, id, nil)
	return nil
}

// OperationStats возвращает счетчики операций
func (s *TransactionServiceImpl) OperationStats() (map[string]int64, error) {
	if s.redisClient == nil {
		return nil, nil
	}
	return s.redisClient.GetOperationStats()
}

// DailyOperationStats возвращает счетчики операций за указанный день
func (s *TransactionServiceImpl) DailyOperationStats(day time.Time) (map[string]int64, error) {
	if s.redisClient == nil {
		return nil, nil
	}

	stats := make(map[string]int64, len(redis.Operations))
	for _, operation := range redis.Operations {
		count, err := s.redisClient.GetDailyOperationCount(operation, day)
		if err != nil {
			return nil, fmt.Errorf("failed to get daily stats for %s: %w", operation, err)
		}
		stats[operation] = count
	}
	return stats, nil
}

// ResetOperationStats удаляет все счетчики операций
func (s *TransactionServiceImpl) ResetOperationStats() error {
	if s.redisClient == nil {
		return nil
	}
	return s.redisClient.ClearOperationStats()
}

func (s *TransactionServiceImpl) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// findExisting возвращает строку с указанным id или NotFoundError
func (s *TransactionServiceImpl) findExisting(ctx context.Context, id int64) (*models.TransactionRecord, error) {
	rec, err := s.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if rec == nil {
		return nil, apperr.NewNotFoundError(id)
	}
	return rec, nil
}

// rejected записывает в журнал отклоненный запрос и возвращает исходную ошибку
func (s *TransactionServiceImpl) rejected(err error) error {
	if vErr, ok := apperr.AsValidation(err); ok {
		logger.LogEvent(logger.EventValidationFailed, serviceName, "validation", map[string]interface{}{
			"field": vErr.Field,
			"kind":  string(vErr.Kind),
		})
	}
	return err
}

// notify выполняется после фиксации изменения. Ошибки Kafka и Redis только логируются:
// запись в хранилище уже выполнена и откатываться не должна.
func (s *TransactionServiceImpl) notify(eventType, operation string, id int64, rec *models.TransactionRecord) {
	logger.LogEvent(logger.EventType(eventType), serviceName, "storage", map[string]interface{}{
		"transaction_id": id,
	})

	if s.producer != nil {
		event := &models.TransactionEvent{
			EventID:   "evt_" + uuid.New().String(),
			EventType: eventType,
			Timestamp: time.Now(),
			Data:      models.TransactionEventData{TransactionID: id},
		}
		if rec != nil {
			event.Data.Amount = rec.Amount
			event.Data.Date = shaper.FormatDate(rec.Date)
		}

		if err := s.producer.SendTransactionEvent(event); err != nil {
			log.Printf("Failed to send %s event for transaction %d: %v", eventType, id, err)
		} else {
			logger.LogEvent(logger.EventKafkaSent, serviceName, "kafka", map[string]interface{}{
				"event_id":       event.EventID,
				"event_type":     eventType,
				"transaction_id": id,
			})
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.IncrementOperationStats(operation); err != nil {
			log.Printf("Failed to update %s stats in Redis: %v", operation, err)
		} else {
			logger.LogEvent(logger.EventRedisUpdated, serviceName, "redis", map[string]interface{}{
				"operation": operation,
			})
		}
	}
}
