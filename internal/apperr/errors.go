package apperr

import (
	"errors"
	"fmt"
)

// Kind определяет разновидность ошибки валидации
type Kind string

const (
	KindMissingField Kind = "missing_field"
	KindBadType      Kind = "bad_type"
	KindBadFormat    Kind = "bad_format"
	KindBadValue     Kind = "bad_value"
)

// ValidationError описывает некорректные данные, пришедшие от клиента
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError создает ошибку валидации с сообщением в формате fmt
func NewValidationError(kind Kind, field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFoundError означает, что транзакции с указанным идентификатором нет в хранилище
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Transaction's id '%s' not found", e.ID)
}

func NewNotFoundError(id interface{}) *NotFoundError {
	return &NotFoundError{ID: fmt.Sprint(id)}
}

// AsValidation возвращает ошибку валидации из цепочки err, если она там есть
func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// IsNotFound сообщает, содержит ли цепочка err ошибку NotFoundError
func IsNotFound(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}
