package shaper

import (
	"transactions-service/internal/models"
)

// Transaction формирует ответ клиенту из строки хранилища
func Transaction(rec *models.TransactionRecord) models.Transaction {
	return models.Transaction{
		ID:     rec.ID,
		Amount: rec.Amount,
		Date:   FormatDate(rec.Date),
	}
}

// Transactions формирует список для ответа; пустая таблица дает пустой (не nil) срез
func Transactions(recs []*models.TransactionRecord) []models.Transaction {
	out := make([]models.Transaction, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Transaction(rec))
	}
	return out
}
