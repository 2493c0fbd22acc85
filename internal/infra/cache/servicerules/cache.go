package servicerules

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

const cacheKey = "salon:service_rules:v1"

// ErrCache возвращается при ошибках работы с Redis
var ErrCache = errors.New("servicerules.cache: redis error")

// Cache кэш сохраненных переопределений правил в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш поверх клиента Redis
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

type cachedRule struct {
	ServiceID  string `json:"serviceId"`
	Kind       string `json:"kind"`
	BlockHours int    `json:"blockHours"`
}

// Get возвращает закэшированные правила; found=false, если кэш пуст
func (c *Cache) Get(ctx context.Context) ([]*domain.ServiceRule, bool, error) {
	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get: %v", ErrCache, err)
	}

	var cached []cachedRule
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("%w: decode: %v", ErrCache, err)
	}

	rules := make([]*domain.ServiceRule, len(cached))
	for i, r := range cached {
		rules[i] = &domain.ServiceRule{
			ServiceID:  r.ServiceID,
			Kind:       domain.RuleKind(r.Kind),
			BlockHours: r.BlockHours,
		}
	}
	return rules, true, nil
}

// Set сохраняет правила с TTL
func (c *Cache) Set(ctx context.Context, rules []*domain.ServiceRule) error {
	cached := make([]cachedRule, len(rules))
	for i, r := range rules {
		cached[i] = cachedRule{
			ServiceID:  r.ServiceID,
			Kind:       string(r.Kind),
			BlockHours: r.BlockHours,
		}
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCache, err)
	}
	return nil
}

// Invalidate удаляет кэш
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCache, err)
	}
	return nil
}
