package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Reservation is the state an idempotency key is held in.
type Reservation string

const (
	// ReservationNone means the caller now holds the key.
	ReservationNone Reservation = ""
	// ReservationPending means another request is still sending.
	ReservationPending Reservation = "pending"
	// ReservationSent means the message was delivered.
	ReservationSent Reservation = "sent"
)

// Deduper reserves idempotency keys so repeated submissions of one form are
// delivered once.
type Deduper interface {
	// Reserve takes key as pending and returns ReservationNone, or leaves it
	// untouched and returns the state it is already held in.
	Reserve(ctx context.Context, key string, ttl time.Duration) (Reservation, error)
	// Complete marks a held key as sent.
	Complete(ctx context.Context, key string, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

// redisKeyIdempotency returns the Redis key holding a submission reservation.
func redisKeyIdempotency(key string) string { return "contact:idempotency:" + key }

type RedisDeduper struct {
	rdb *redis.Client
}

func NewRedisDeduper(rdb *redis.Client) *RedisDeduper {
	return &RedisDeduper{rdb: rdb}
}

func (d *RedisDeduper) Reserve(ctx context.Context, key string, ttl time.Duration) (Reservation, error) {
	k := redisKeyIdempotency(key)
	ok, err := d.rdb.SetNX(ctx, k, string(ReservationPending), ttl).Result()
	if err != nil {
		return ReservationNone, err
	}
	if ok {
		return ReservationNone, nil
	}

	state, err := d.rdb.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// expired or released between the two calls
		return d.Reserve(ctx, key, ttl)
	}
	if err != nil {
		return ReservationNone, err
	}
	if Reservation(state) == ReservationSent {
		return ReservationSent, nil
	}
	return ReservationPending, nil
}

func (d *RedisDeduper) Complete(ctx context.Context, key string, ttl time.Duration) error {
	return d.rdb.Set(ctx, redisKeyIdempotency(key), string(ReservationSent), ttl).Err()
}

func (d *RedisDeduper) Release(ctx context.Context, key string) error {
	return d.rdb.Del(ctx, redisKeyIdempotency(key)).Err()
}

type memoryEntry struct {
	state   Reservation
	expires time.Time
}

// MemoryDeduper is the single-process fallback used when Redis is not configured.
type MemoryDeduper struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryDeduper() *MemoryDeduper {
	return &MemoryDeduper{entries: make(map[string]memoryEntry), now: time.Now}
}

func (d *MemoryDeduper) Reserve(_ context.Context, key string, ttl time.Duration) (Reservation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for k, e := range d.entries {
		if !now.Before(e.expires) {
			delete(d.entries, k)
		}
	}

	if e, held := d.entries[key]; held {
		return e.state, nil
	}
	d.entries[key] = memoryEntry{state: ReservationPending, expires: now.Add(ttl)}
	return ReservationNone, nil
}

func (d *MemoryDeduper) Complete(_ context.Context, key string, ttl time.Duration) error {
	d.mu.Lock()
	d.entries[key] = memoryEntry{state: ReservationSent, expires: d.now().Add(ttl)}
	d.mu.Unlock()
	return nil
}

func (d *MemoryDeduper) Release(_ context.Context, key string) error {
	d.mu.Lock()
	delete(d.entries, key)
	d.mu.Unlock()
	return nil
}
