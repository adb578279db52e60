package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TokenKind string

const (
	AccessTokenKind  TokenKind = "access"
	RefreshTokenKind TokenKind = "refresh"
)

// SessionStore tracks issued token ids; a token whose id is absent has been
// revoked or has expired.
type SessionStore interface {
	Save(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}
