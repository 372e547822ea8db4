package validation

import (
	"encoding/json"
	"math"
	"time"

	"transactions-service/internal/apperr"
	"transactions-service/internal/models"
)

const (
	FieldAmount = "amount"
	FieldDate   = "date"

	datePattern = "YYYY-MM-DD"
)

// ValidateTransactionInput проверяет тело запроса на создание или полную замену транзакции.
// Порядок проверок: наличие обоих полей, тип amount, тип date, формат date.
func ValidateTransactionInput(payload map[string]interface{}) (models.TransactionInput, error) {
	for _, field := range []string{FieldAmount, FieldDate} {
		if _, ok := payload[field]; !ok {
			return models.TransactionInput{}, apperr.NewValidationError(
				apperr.KindMissingField, field, "field '%s' is required", field,
			)
		}
	}

	amount, ok := asInteger(payload[FieldAmount])
	if !ok {
		return models.TransactionInput{}, apperr.NewValidationError(
			apperr.KindBadType, FieldAmount, "field 'amount' must be an integer",
		)
	}

	rawDate, ok := payload[FieldDate].(string)
	if !ok {
		return models.TransactionInput{}, apperr.NewValidationError(
			apperr.KindBadType, FieldDate, "field 'date' must be a string",
		)
	}

	date, err := time.Parse(models.DateLayout, rawDate)
	if err != nil {
		return models.TransactionInput{}, apperr.NewValidationError(
			apperr.KindBadFormat, FieldDate, "field 'date' must match the pattern %s, got '%s'", datePattern, rawDate,
		)
	}

	return models.TransactionInput{Amount: amount, Date: date}, nil
}

// asInteger принимает целые числа из JSON (json.Number), из Go-кода и из protobuf Struct (float64 без дробной части)
func asInteger(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		if n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
