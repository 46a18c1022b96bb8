package session

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	apperrors "medequip-system/pkg/errors"
)

const keyPrefix = "session:"

// Session is what the store keeps per signed-in user. The cookie only
// carries the opaque id; everything else lives in Redis.
type Session struct {
	ID     string
	UserID uint64
	Role   string
}

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Create(ctx context.Context, userID uint64, role string) (*Session, error) {
	sid := uuid.NewString()
	key := keyPrefix + sid

	if err := s.client.HSet(ctx, key,
		"user_id", strconv.FormatUint(userID, 10),
		"role", role,
	).Err(); err != nil {
		return nil, err
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return nil, err
	}

	return &Session{ID: sid, UserID: userID, Role: role}, nil
}

func (s *Store) Get(ctx context.Context, sid string) (*Session, error) {
	vals, err := s.client.HGetAll(ctx, keyPrefix+sid).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, apperrors.ErrSessionNotFound
	}

	userID, err := strconv.ParseUint(vals["user_id"], 10, 64)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}

	return &Session{ID: sid, UserID: userID, Role: vals["role"]}, nil
}

// Touch slides the session TTL forward on activity.
func (s *Store) Touch(ctx context.Context, sid string) error {
	return s.client.Expire(ctx, keyPrefix+sid, s.ttl).Err()
}

func (s *Store) Destroy(ctx context.Context, sid string) error {
	return s.client.Del(ctx, keyPrefix+sid).Err()
}
