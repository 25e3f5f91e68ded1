package timeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache кэш рассчитанных раскладок сетки в Redis.
// Раскладка детерминирована от входных данных, поэтому короткий TTL
// заменяет явную инвалидацию: после обновления броней кэш устаревает
// максимум через ttl.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кэш раскладок поверх готового клиента Redis
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает сериализованную раскладку по ключу
// Второй результат false = в кэше нет значения (не ошибка)
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("timeline cache: get %s: %w", key, err)
	}
	return data, true, nil
}

// Set сохраняет сериализованную раскладку с TTL
func (c *Cache) Set(ctx context.Context, key string, data []byte) error {
	if err := c.client.Set(ctx, c.fullKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("timeline cache: set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) fullKey(key string) string {
	return "frontdesk:timeline:" + key
}
