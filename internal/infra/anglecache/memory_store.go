package anglecache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/planets/internal/domain/orbit"
)

type angleRecord struct {
	angle     float64
	expiresAt time.Time
}

// MemoryStore keeps angles in process memory. Used when no Valkey address
// is configured and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]angleRecord
	now     func() time.Time
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]angleRecord),
		now:     time.Now,
	}
}

// GetAngle implements orbit.AngleCache.
func (s *MemoryStore) GetAngle(_ context.Context, target string, day time.Time) (float64, bool, error) {
	key := entryKey(target, day)
	s.mu.RLock()
	record, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return 0, false, nil
	}
	if s.hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return 0, false, nil
	}
	return record.angle, true, nil
}

// SaveAngle stores angle with an optional TTL; ttl <= 0 never expires.
func (s *MemoryStore) SaveAngle(_ context.Context, target string, day time.Time, angle float64, ttl time.Duration) error {
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entryKey(target, day)] = angleRecord{angle: angle, expiresAt: exp}
	return nil
}

// size reports the number of stored entries, expired ones included.
func (s *MemoryStore) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ orbit.AngleCache = (*MemoryStore)(nil)
