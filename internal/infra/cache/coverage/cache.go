package coverage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// keyPrefix префикс всех ключей кеша покрытия
const keyPrefix = "coverage:"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Cache redis-кеш наборов покрытых городов.
// Наборы читаются на каждый подбор специалистов и меняются только при
// пересборке расстояний, поэтому кеш инвалидируется целиком по префиксу.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// New создает кеш покрытия поверх redis
func New(addr, password string, db int, ttl time.Duration, log Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Ping проверяет соединение с redis
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close закрывает соединение с redis
func (c *Cache) Close() error {
	return c.client.Close()
}

// Get читает набор покрытых городов из кеша.
// Второй результат false означает промах кеша; ошибки redis не
// пробрасываются - промах дешевле отказа.
func (c *Cache) Get(ctx context.Context, origin string, radiusKm float64) ([]domain.CoveredCity, bool) {
	data, err := c.client.Get(ctx, cacheKey(origin, radiusKm)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("coverage cache: get failed for origin=%s radius=%.0f: %v", origin, radiusKm, err)
		return nil, false
	}

	var covered []domain.CoveredCity
	if err := json.Unmarshal(data, &covered); err != nil {
		c.log.Warn("coverage cache: corrupted entry for origin=%s radius=%.0f: %v", origin, radiusKm, err)
		return nil, false
	}

	return covered, true
}

// Set сохраняет набор покрытых городов в кеш
func (c *Cache) Set(ctx context.Context, origin string, radiusKm float64, covered []domain.CoveredCity) {
	data, err := json.Marshal(covered)
	if err != nil {
		c.log.Error("coverage cache: marshal failed for origin=%s: %v", origin, err)
		return
	}

	if err := c.client.Set(ctx, cacheKey(origin, radiusKm), data, c.ttl).Err(); err != nil {
		c.log.Warn("coverage cache: set failed for origin=%s radius=%.0f: %v", origin, radiusKm, err)
	}
}

// Invalidate удаляет все закешированные наборы покрытия.
// Вызывается после пересборки таблицы расстояний.
func (c *Cache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("coverage cache: scan keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("coverage cache: delete keys: %w", err)
	}

	c.log.Info("coverage cache: invalidated %d entries", len(keys))
	return nil
}

// cacheKey кодирует радиус без потерь: дробные радиусы - валидный ввод,
// и округление склеивало бы разные наборы покрытия в один ключ
func cacheKey(origin string, radiusKm float64) string {
	return keyPrefix + origin + ":" + strconv.FormatFloat(radiusKm, 'g', -1, 64)
}
