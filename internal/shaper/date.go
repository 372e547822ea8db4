package shaper

import (
	"fmt"
	"strings"
	"time"

	"transactions-service/internal/models"
)

// Форматы, в которых хранилища возвращают дату или метку времени в виде текста
var storedDateLayouts = []string{
	models.DateLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
}

// NormalizeDate приводит значение даты из хранилища (дата, метка времени, текст) к календарной дате в UTC
func NormalizeDate(v interface{}) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return calendarDate(d), nil
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("stored date is NULL")
		}
		return calendarDate(*d), nil
	case string:
		return parseStoredDate(d)
	case []byte:
		return parseStoredDate(string(d))
	case nil:
		return time.Time{}, fmt.Errorf("stored date is NULL")
	default:
		return time.Time{}, fmt.Errorf("unsupported stored date type %T", v)
	}
}

// FormatDate возвращает дату в формате YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

func parseStoredDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range storedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return calendarDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized stored date %q", s)
}

// calendarDate отбрасывает время суток, сохраняя день в исходной временной зоне значения
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
