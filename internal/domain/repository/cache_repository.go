package repository

import (
	"context"
	"time"
)

// CacheRepository - интерфейс кеша для идемпотентных ответов провайдера
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
