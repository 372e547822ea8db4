package models

import (
	"time"
)

// DateLayout - единственный формат даты, принимаемый от клиентов и возвращаемый им
const DateLayout = "2006-01-02"

// Transaction представляет транзакцию в том виде, в котором она отдается клиентам
type Transaction struct {
	ID     int64  `json:"id" example:"1"`
	Amount int64  `json:"amount" example:"800"`
	Date   string `json:"date" example:"2024-01-01"`
}

// TransactionRequest описывает тело запроса на создание или замену транзакции (для Swagger)
type TransactionRequest struct {
	Amount int64  `json:"amount" example:"800"`
	Date   string `json:"date" example:"2024-01-01"`
}

// TransactionInput представляет провалидированные данные транзакции
type TransactionInput struct {
	Amount int64
	Date   time.Time
}

// TransactionRecord представляет строку таблицы transactions после нормализации даты
type TransactionRecord struct {
	ID     int64
	Amount int64
	Date   time.Time
}

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error" example:"Transaction's id '1' not found"`
	Kind  string `json:"kind,omitempty" example:"bad_format"`
	Field string `json:"field,omitempty" example:"date"`
}

// TransactionEvent представляет событие изменения транзакции в Kafka
type TransactionEvent struct {
	EventID   string               `json:"event_id"`
	EventType string               `json:"event_type"`
	Timestamp time.Time            `json:"timestamp"`
	Data      TransactionEventData `json:"data"`
}

// TransactionEventData представляет данные транзакции в Kafka
type TransactionEventData struct {
	TransactionID int64  `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Date          string `json:"date"`
}

const (
	EventTypeCreated = "transaction_created"
	EventTypeUpdated = "transaction_updated"
	EventTypeDeleted = "transaction_deleted"
)
