package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// SetNX stores the value only if the key does not exist yet and reports
	// whether it was stored. Used for per-phone OTP dispatch cooldowns.
	SetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
