package validation

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"transactions-service/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var payload map[string]interface{}
	require.NoError(t, dec.Decode(&payload))
	return payload
}

func TestValidateTransactionInput_Valid(t *testing.T) {
	input, err := ValidateTransactionInput(decodePayload(t, `{"amount": 800, "date": "2024-01-01"}`))
	require.NoError(t, err)

	assert.Equal(t, int64(800), input.Amount)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), input.Date)
}

func TestValidateTransactionInput_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		kind  apperr.Kind
		field string
	}{
		{"missing amount", `{"date": "2024-01-01"}`, apperr.KindMissingField, "amount"},
		{"missing date", `{"amount": 1}`, apperr.KindMissingField, "date"},
		{"missing both reports amount first", `{}`, apperr.KindMissingField, "amount"},
		{"amount as string", `{"amount": "100", "date": "2024-01-01"}`, apperr.KindBadType, "amount"},
		{"amount fractional", `{"amount": 10.5, "date": "2024-01-01"}`, apperr.KindBadType, "amount"},
		{"amount null", `{"amount": null, "date": "2024-01-01"}`, apperr.KindBadType, "amount"},
		{"amount bool", `{"amount": true, "date": "2024-01-01"}`, apperr.KindBadType, "amount"},
		{"type checked before date", `{"amount": "x", "date": 5}`, apperr.KindBadType, "amount"},
		{"date as number", `{"amount": 1, "date": 20240101}`, apperr.KindBadType, "date"},
		{"date wrong pattern", `{"amount": 1, "date": "30-11-2023"}`, apperr.KindBadFormat, "date"},
		{"date with time", `{"amount": 1, "date": "2023-11-30T10:00:00Z"}`, apperr.KindBadFormat, "date"},
		{"date out of range", `{"amount": 1, "date": "2023-02-30"}`, apperr.KindBadFormat, "date"},
		{"date single digit month", `{"amount": 1, "date": "2023-1-05"}`, apperr.KindBadFormat, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateTransactionInput(decodePayload(t, tt.body))
			require.Error(t, err)

			vErr, ok := apperr.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, vErr.Kind)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestValidateTransactionInput_BadFormatNamesPattern(t *testing.T) {
	_, err := ValidateTransactionInput(map[string]interface{}{"amount": 1, "date": "30-11-2023"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestValidateTransactionInput_StructNumbers(t *testing.T) {
	// protobuf Struct отдает все числа как float64
	input, err := ValidateTransactionInput(map[string]interface{}{"amount": float64(90), "date": "2023-12-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(90), input.Amount)

	_, err = ValidateTransactionInput(map[string]interface{}{"amount": 90.25, "date": "2023-12-01"})
	require.Error(t, err)
}

func TestValidateTransactionInput_Deterministic(t *testing.T) {
	payload := map[string]interface{}{"amount": "bad", "date": "2023-12-01"}
	_, first := ValidateTransactionInput(payload)
	_, second := ValidateTransactionInput(payload)
	assert.Equal(t, first, second)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("15")
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	for _, raw := range []string{"", "abc", "-1", "1.5", " 1", "1e3"} {
		_, err := ParseID(raw)
		vErr, ok := apperr.AsValidation(err)
		require.True(t, ok, raw)
		assert.Equal(t, apperr.KindBadType, vErr.Kind, raw)
	}

	_, err = ParseID("99999999999999999999")
	assert.True(t, apperr.IsNotFound(err))
}
