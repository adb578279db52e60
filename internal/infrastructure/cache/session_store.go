package cache

import (
	"context"
	"fmt"
	"time"

	domainRepo "clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionMarker = "valid"

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore keeps issued token ids under
// "<kind>_token:<user id>:<token id>" keys that expire with the token.
func NewRedisSessionStore(client *redis.Client) domainRepo.SessionStore {
	return &redisSessionStore{client: client}
}

func sessionKey(kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", kind, userID.String(), tokenID)
}

func (s *redisSessionStore) Save(ctx context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(kind, userID, tokenID), sessionMarker, ttl).Err()
}

func (s *redisSessionStore) Exists(ctx context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, sessionKey(kind, userID, tokenID)).Err()
}

// RevokeAll drops every token of the user. SCAN is used instead of KEYS so
// a large keyspace does not block the server.
func (s *redisSessionStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	for _, kind := range []domainRepo.TokenKind{domainRepo.AccessTokenKind, domainRepo.RefreshTokenKind} {
		pattern := fmt.Sprintf("%s_token:%s:*", kind, userID.String())
		iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}
