package redis

import (
	"context"
	"fmt"
)

// ClearOperationStats удаляет все счетчики операций
func (c *Client) ClearOperationStats() error {
	ctx := context.Background()

	iter := c.rdb.Scan(ctx, 0, statsKeyPrefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to clear stats: %w", err)
	}

	return nil
}
