package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	domainRepo "clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
)

// MemorySessionStore is an in-process SessionStore. Expiry is ignored.
type MemorySessionStore struct {
	mu   sync.Mutex
	keys map[string]time.Duration
	Err  error
}

var _ domainRepo.SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{keys: make(map[string]time.Duration)}
}

func memoryKey(kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", kind, userID, tokenID)
}

func (s *MemorySessionStore) Save(_ context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[memoryKey(kind, userID, tokenID)] = ttl
	return nil
}

func (s *MemorySessionStore) Exists(_ context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[memoryKey(kind, userID, tokenID)]
	return ok, nil
}

func (s *MemorySessionStore) Revoke(_ context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, memoryKey(kind, userID, tokenID))
	return nil
}

func (s *MemorySessionStore) RevokeAll(_ context.Context, userID uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.keys {
		if strings.Contains(key, ":"+userID.String()+":") {
			delete(s.keys, key)
		}
	}
	return nil
}

// Len returns the number of live token ids.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}
