package validation

import (
	"strconv"

	"transactions-service/internal/apperr"
)

const FieldID = "id"

// ParseID разбирает идентификатор транзакции из пути запроса.
// Идентификатор из одних цифр, не помещающийся в int64, существовать не может.
func ParseID(raw string) (int64, error) {
	if raw == "" || !allDigits(raw) {
		return 0, apperr.NewValidationError(apperr.KindBadType, FieldID, "id '%s' must be a non-negative integer", raw)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.NewNotFoundError(raw)
	}
	return id, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
