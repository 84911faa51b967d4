package cache

import (
	"context"

	"github.com/Domenick1991/busbooking/config"
	"github.com/redis/go-redis/v9"
)

// RedisSequence hands out booking numbers. INCR is atomic on the server, so
// numbers stay monotonic across multiple API instances; an in-process
// counter would not survive a restart or a second replica.
type RedisSequence struct {
	client *redis.Client
}

func NewRedisSequence(cfg config.RedisConfig) *RedisSequence {
	return &RedisSequence{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (s *RedisSequence) NextBookingNumber(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, bookingNumberKey()).Result()
}

func (s *RedisSequence) Close() error {
	return s.client.Close()
}

func bookingNumberKey() string {
	return "seq:booking_number"
}
