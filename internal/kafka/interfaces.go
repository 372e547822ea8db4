package kafka

import (
	"transactions-service/internal/models"
)

// Producer определяет интерфейс для отправки событий об изменении транзакций в Kafka
type Producer interface {
	SendTransactionEvent(event *models.TransactionEvent) error

	Close() error
}
