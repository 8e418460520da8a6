package communication

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"blobwar/game"

	"github.com/redis/go-redis/v9"
)

// Redis is a Channel stored in a single Redis string key, for workers that
// run on another host than their supervisor.
type Redis struct {
	client *redis.Client
	key    string
	owned  bool
}

// NewRedis uses key on an existing client. Closing the channel leaves the
// client open.
func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

// DialRedis connects to the server at url (redis://host:port/db).
func DialRedis(url, key string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &Redis{client: redis.NewClient(opts), key: key, owned: true}, nil
}

func (r *Redis) Key() string {
	return r.key
}

// Reset deletes the key so that readers see nothing published.
func (r *Redis) Reset(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to reset channel %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Store(ctx context.Context, move game.Movement, found bool) error {
	current, err := r.Load(ctx)
	if err != nil {
		return err
	}
	w := encode(Record{Seq: current.Seq + 1, Move: move, Found: found})
	if err := r.client.Set(ctx, r.key, strconv.FormatUint(w, 10), 0).Err(); err != nil {
		return fmt.Errorf("failed to store in channel %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Load(ctx context.Context) (Record, error) {
	value, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to load channel %s: %w", r.key, err)
	}
	w, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("corrupt channel %s: %w", r.key, err)
	}
	return decode(w), nil
}

func (r *Redis) Close() error {
	if !r.owned {
		return nil
	}
	return r.client.Close()
}
