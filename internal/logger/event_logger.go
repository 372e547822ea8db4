package logger

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTransactionCreated EventType = "transaction_created"
	EventTransactionUpdated EventType = "transaction_updated"
	EventTransactionDeleted EventType = "transaction_deleted"
	EventValidationFailed   EventType = "validation_failed"
	EventKafkaSent          EventType = "kafka_sent"
	EventRedisUpdated       EventType = "redis_updated"
)

const defaultMaxEvents = 1000

// Event - запись журнала операций. Data содержит только идентификаторы и признаки операции,
// сами записи транзакций в журнал не копируются.
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Service   string                 `json:"service"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Component string                 `json:"component"` // http, grpc, kafka, redis, storage
}

type EventLogger struct {
	events  []Event
	mu      sync.RWMutex
	maxSize int
}

var globalLogger = NewEventLogger(defaultMaxEvents)

func NewEventLogger(maxSize int) *EventLogger {
	if maxSize <= 0 {
		maxSize = defaultMaxEvents
	}
	return &EventLogger{
		events:  make([]Event, 0, maxSize),
		maxSize: maxSize,
	}
}

func LogEvent(eventType EventType, service string, component string, data map[string]interface{}) {
	globalLogger.LogEvent(eventType, service, component, data)
}

func (el *EventLogger) LogEvent(eventType EventType, service string, component string, data map[string]interface{}) {
	el.mu.Lock()
	defer el.mu.Unlock()

	el.events = append(el.events, Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Service:   service,
		Component: component,
		Timestamp: time.Now(),
		Data:      data,
	})

	if len(el.events) > el.maxSize {
		el.events = el.events[len(el.events)-el.maxSize:]
	}
}

func GetEvents(limit int) []Event {
	return globalLogger.GetEvents(limit)
}

// GetEvents возвращает последние limit событий в порядке записи; limit <= 0 - все события
func (el *EventLogger) GetEvents(limit int) []Event {
	el.mu.RLock()
	defer el.mu.RUnlock()

	return lastN(el.events, limit)
}

func GetEventsByType(eventType EventType, limit int) []Event {
	return globalLogger.GetEventsByType(eventType, limit)
}

func (el *EventLogger) GetEventsByType(eventType EventType, limit int) []Event {
	el.mu.RLock()
	defer el.mu.RUnlock()

	filtered := make([]Event, 0)
	for _, event := range el.events {
		if event.Type == eventType {
			filtered = append(filtered, event)
		}
	}
	return lastN(filtered, limit)
}

func lastN(events []Event, limit int) []Event {
	if limit <= 0 || limit > len(events) {
		limit = len(events)
	}

	result := make([]Event, limit)
	copy(result, events[len(events)-limit:])
	return result
}

func GetStats() map[string]interface{} {
	return globalLogger.GetStats()
}

func (el *EventLogger) GetStats() map[string]interface{} {
	el.mu.RLock()
	defer el.mu.RUnlock()

	componentStats := make(map[string]int)
	serviceStats := make(map[string]int)
	typeStats := make(map[string]int)

	for _, event := range el.events {
		componentStats[event.Component]++
		serviceStats[event.Service]++
		typeStats[string(event.Type)]++
	}

	stats := map[string]interface{}{
		"total_events": len(el.events),
		"components":   componentStats,
		"services":     serviceStats,
		"event_types":  typeStats,
	}
	if n := len(el.events); n > 0 {
		stats["last_event_at"] = el.events[n-1].Timestamp.Format(time.RFC3339)
	}

	return stats
}

func (e Event) MarshalJSON() ([]byte, error) {
	type Alias Event
	return json.Marshal(&struct {
		Timestamp string `json:"timestamp"`
		*Alias
	}{
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Alias:     (*Alias)(&e),
	})
}
