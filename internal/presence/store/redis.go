package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aleator1o/anunciosloc/internal/presence"
	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const presenceKeyPrefix = "presence:"

// RedisPresenceStore keeps one JSON value per user under
// presence:<userId>. SET gives the atomic single-row replace the
// contract asks for; keys carry no TTL because the engine never expires
// a fix.
type RedisPresenceStore struct {
	client *redis.Client
	logger *logger.Logger
}

func NewRedisPresenceStore(client *redis.Client, logger logger.Logger) *RedisPresenceStore {
	return &RedisPresenceStore{
		client: client,
		logger: &logger,
	}
}

// NewRedisClient dials redis with the pool settings tuned for many
// small, frequent presence writes (devices push roughly every 30 s).
func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "presenceStore.NewRedisClient.ParseURL: ")
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 5
	opt.MaxRetries = 3
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "presenceStore.NewRedisClient.Ping: ")
	}
	return client, nil
}

func (s *RedisPresenceStore) Upsert(ctx context.Context, record *presence.PresenceRecord) error {
	if record.UserID == uuid.Nil {
		return appErrors.InvalidArg("presence record requires a user id")
	}
	record.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "presenceStore.Upsert.Marshal: ")
	}

	if err := s.client.Set(ctx, presenceKeyPrefix+record.UserID.String(), payload, 0).Err(); err != nil {
		return errors.Wrap(err, "presenceStore.Upsert.Set: ")
	}
	return nil
}

func (s *RedisPresenceStore) Get(ctx context.Context, userID uuid.UUID) (*presence.PresenceRecord, error) {
	val, err := s.client.Get(ctx, presenceKeyPrefix+userID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, appErrors.ErrPresenceNotFound
		}
		return nil, errors.Wrap(err, "presenceStore.Get.Get: ")
	}

	record := new(presence.PresenceRecord)
	if err := json.Unmarshal([]byte(val), record); err != nil {
		return nil, errors.Wrap(err, "presenceStore.Get.Unmarshal: ")
	}
	return record, nil
}
