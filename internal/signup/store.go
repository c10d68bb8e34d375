package signup

import (
	"context"
	"sync"
	"time"

	"creatorcrewz/internal/logger"
)

const DefaultSessionTTL = 30 * time.Minute

// DefaultMaxForms bounds how many in-progress forms a MemoryStore holds.
const DefaultMaxForms = 10000

// Store keeps in-progress forms between requests, keyed by an opaque session id.
type Store interface {
	Get(id string) (*Form, bool)
	Put(id string, form *Form)
	Delete(id string)
}

type storeEntry struct {
	form      *Form
	expiresAt time.Time
}

// MemoryStore is a process-local Store with sliding expiry.
// Forms hold plaintext passwords, so they are never written anywhere else.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	maxForms int
	now      func() time.Time
	entries  map[string]storeEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemoryStore{
		ttl:      ttl,
		maxForms: DefaultMaxForms,
		now:      time.Now,
		entries:  make(map[string]storeEntry),
	}
}

// SetMaxForms changes the capacity. Values below 1 are ignored.
func (s *MemoryStore) SetMaxForms(n int) {
	if n < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxForms = n
}

// Get returns the form for id and extends its expiry.
func (s *MemoryStore) Get(id string) (*Form, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if !now.Before(entry.expiresAt) {
		delete(s.entries, id)
		return nil, false
	}
	entry.expiresAt = now.Add(s.ttl)
	s.entries[id] = entry
	return entry.form, true
}

// Put stores form under id. A full store drops expired forms first, then the
// one closest to expiry.
func (s *MemoryStore) Put(id string, form *Form) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, exists := s.entries[id]; !exists && len(s.entries) >= s.maxForms {
		s.sweepLocked(now)
		if len(s.entries) >= s.maxForms {
			s.evictOldestLocked()
		}
	}
	s.entries[id] = storeEntry{form: form, expiresAt: now.Add(s.ttl)}
}

func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops every entry expired at now and returns how many were removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(now)
}

func (s *MemoryStore) sweepLocked(now time.Time) int {
	removed := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, entry := range s.entries {
		if oldestID == "" || entry.expiresAt.Before(oldest) {
			oldestID, oldest = id, entry.expiresAt
		}
	}
	if oldestID != "" {
		delete(s.entries, oldestID)
	}
}

// Run sweeps every interval until ctx is done.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				logger.Debug("Expired signup forms swept", "count", n)
			}
		}
	}
}
