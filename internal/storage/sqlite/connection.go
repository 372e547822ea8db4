package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"transactions-service/config"

	_ "modernc.org/sqlite"
)

const (
	defaultDBPath = "./data/transactions.db"
	memoryDBPath  = ":memory:"
)

// SQLiteStorage представляет хранилище SQLite
type SQLiteStorage struct {
	DB *sql.DB
}

// NewConnection создает новое соединение с SQLite
func NewConnection(cfg *config.Config) (*SQLiteStorage, error) {
	// Определяем путь к файлу БД
	dbPath := cfg.DB.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	if dbPath != memoryDBPath {
		// Создаем директорию, если её нет
		dbDir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)

	log.Printf("Connecting to SQLite: path=%s", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Настройка пула соединений
	db.SetMaxOpenConns(1) // SQLite поддерживает только одно соединение для записи
	db.SetMaxIdleConns(1)
	if dbPath != memoryDBPath {
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	storage := &SQLiteStorage{DB: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Println("SQLite connection established")
	return storage, nil
}

// Ping проверяет соединение с БД
func (s *SQLiteStorage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close закрывает соединение с БД
func (s *SQLiteStorage) Close() error {
	return s.DB.Close()
}
