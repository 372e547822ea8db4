package redis

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

const (
	OperationCreated = "created"
	OperationUpdated = "updated"
	OperationDeleted = "deleted"

	statsKeyPrefix = "transactions:ops"
	dailyStatsTTL  = 48 * time.Hour
)

// Operations - все операции, для которых ведутся счетчики
var Operations = []string{OperationCreated, OperationUpdated, OperationDeleted}

func totalKey(operation string) string {
	return fmt.Sprintf("%s:%s:total", statsKeyPrefix, operation)
}

func dailyKey(operation string, day time.Time) string {
	return fmt.Sprintf("%s:%s:daily:%s", statsKeyPrefix, operation, day.UTC().Format("2006-01-02"))
}

// IncrementOperationStats увеличивает общий и дневной счетчики операции
func (c *Client) IncrementOperationStats(operation string) error {
	ctx := context.Background()
	daily := dailyKey(operation, time.Now())

	pipe := c.rdb.Pipeline()
	pipe.Incr(ctx, totalKey(operation))
	pipe.Incr(ctx, daily)
	pipe.Expire(ctx, daily, dailyStatsTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// GetOperationStats возвращает общие счетчики по всем операциям; отсутствующий ключ - ноль
func (c *Client) GetOperationStats() (map[string]int64, error) {
	ctx := context.Background()
	stats := make(map[string]int64, len(Operations))

	for _, operation := range Operations {
		count, err := c.rdb.Get(ctx, totalKey(operation)).Int64()
		if err == redisv9.Nil {
			count = 0
		} else if err != nil {
			return nil, fmt.Errorf("failed to get stats for %s: %w", operation, err)
		}
		stats[operation] = count
	}

	return stats, nil
}

// GetDailyOperationCount получает количество операций за указанный день
func (c *Client) GetDailyOperationCount(operation string, day time.Time) (int64, error) {
	ctx := context.Background()
	count, err := c.rdb.Get(ctx, dailyKey(operation, day)).Int64()
	if err == redisv9.Nil {
		return 0, nil
	}
	return count, err
}
