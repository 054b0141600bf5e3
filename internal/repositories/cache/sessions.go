package cache

import (
	"context"
	"errors"
	"time"

	"hexadigitall/internal/services/wizard"
)

const (
	sessionKeyPrefix = "wizard:session:"
	sessionTTL       = 24 * time.Hour
)

// SessionStore is the Redis-backed wizard session store. Sessions
// expire after a day of inactivity; every save refreshes the TTL.
type SessionStore struct {
	cache *CacheService
}

// NewSessionStore creates a session store over the cache service.
func NewSessionStore(cacheSvc *CacheService) *SessionStore {
	return &SessionStore{cache: cacheSvc}
}

func (s *SessionStore) Get(ctx context.Context, id string) (*wizard.Session, error) {
	var session wizard.Session
	if err := s.cache.GetJSON(ctx, sessionKeyPrefix+id, &session); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, wizard.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *SessionStore) Save(ctx context.Context, session *wizard.Session) error {
	return s.cache.SetJSON(ctx, sessionKeyPrefix+session.ID, session, sessionTTL)
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+id)
}
