package transactions

import (
	"fmt"
	"log"

	"transactions-service/config"
	"transactions-service/internal/kafka"
	"transactions-service/internal/redis"
	"transactions-service/internal/services"
	"transactions-service/internal/storage"
	"transactions-service/internal/storage/postgres"
	"transactions-service/internal/storage/sqlite"
)

// Dependencies содержит все зависимости сервиса транзакций
type Dependencies struct {
	StorageRepo        storage.TransactionRepository
	KafkaProducer      kafka.Producer
	RedisClient        redis.ClientInterface
	TransactionService services.TransactionService
}

// NewRepository открывает хранилище, выбранное через DB_DRIVER
func NewRepository(cfg *config.Config) (storage.TransactionRepository, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite, "":
		conn, err := sqlite.NewConnection(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
		}
		return sqlite.NewRepository(conn), nil
	case config.DriverPostgres:
		db, err := postgres.NewConnection(cfg)
		if err != nil {
			return nil, err
		}
		return postgres.NewRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
}

// InitializeDependencies инициализирует все зависимости сервиса.
// Kafka и Redis необязательны: при пустой конфигурации или ошибке подключения сервис работает без них.
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	storageRepo, err := NewRepository(cfg)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{StorageRepo: storageRepo}

	if cfg.Kafka.Enabled() {
		log.Println("Connecting to Kafka...")
		producer, err := kafka.NewProducer(cfg)
		if err != nil {
			log.Printf("Warning: Kafka is unavailable, change events will not be published: %v", err)
		} else {
			deps.KafkaProducer = producer
		}
	} else {
		log.Println("Kafka is not configured, change events are disabled")
	}

	if cfg.Redis.Enabled() {
		log.Println("Connecting to Redis...")
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Printf("Warning: Redis is unavailable, operation stats are disabled: %v", err)
		} else {
			log.Println("Redis connection established")
			deps.RedisClient = redisClient
		}
	} else {
		log.Println("Redis is not configured, operation stats are disabled")
	}

	if deps.RedisClient != nil {
		deps.TransactionService = services.NewTransactionServiceWithRedis(storageRepo, deps.KafkaProducer, deps.RedisClient)
	} else {
		deps.TransactionService = services.NewTransactionService(storageRepo, deps.KafkaProducer)
	}

	return deps, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	var firstErr error
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if d.StorageRepo != nil {
		if err := d.StorageRepo.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
