package memory

import (
	"context"
	"sync"
	"time"

	"lead-assessment-service/internal/domain"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
// Records expire ttl after their last save; a zero ttl keeps them forever.
// Expired records are dropped when read and swept on Save at most once per ttl.
type SessionStore struct {
	ttl   time.Duration
	clock func() time.Time

	mu        sync.RWMutex
	sessions  map[string]storedSession
	nextSweep time.Time
}

type storedSession struct {
	rec       domain.SessionRecord
	expiresAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		clock:    time.Now,
		sessions: make(map[string]storedSession),
	}
}

func (s *SessionStore) Save(_ context.Context, rec domain.SessionRecord) error {
	now := s.clock()
	entry := storedSession{rec: copyRecord(rec)}
	if s.ttl > 0 {
		entry.expiresAt = now.Add(s.ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ttl > 0 && !now.Before(s.nextSweep) {
		s.sweepLocked(now)
		s.nextSweep = now.Add(s.ttl)
	}
	s.sessions[rec.ID] = entry
	return nil
}

func (s *SessionStore) sweepLocked(now time.Time) {
	for id, entry := range s.sessions {
		if !entry.expiresAt.IsZero() && !entry.expiresAt.After(now) {
			delete(s.sessions, id)
		}
	}
}

func (s *SessionStore) Get(_ context.Context, sessionID string) (domain.SessionRecord, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return domain.SessionRecord{}, domain.ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && !entry.expiresAt.After(s.clock()) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return domain.SessionRecord{}, domain.ErrSessionNotFound
	}
	return copyRecord(entry.rec), nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Len reports how many sessions are held, expired or not.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func copyRecord(rec domain.SessionRecord) domain.SessionRecord {
	answers := make(map[string]string, len(rec.Answers))
	for k, v := range rec.Answers {
		answers[k] = v
	}
	rec.Answers = answers
	return rec
}
