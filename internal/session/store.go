package session

import (
	"sync"
	"time"
)

// Store maps session tokens to records. Implementations must be safe for
// concurrent use. Get does not apply any expiry policy; that lives in
// Manager.
type Store interface {
	Put(token string, rec Record)
	Get(token string) (Record, bool)
	Remove(token string)

	// RemoveIf deletes the record for token only if cond holds for the
	// record currently stored, checked and removed as one step.
	RemoveIf(token string, cond func(Record) bool) bool

	// Len reports how many records are held, stale ones included.
	Len() int
}

// Sweeper is implemented by stores that can drop every stale record at once.
type Sweeper interface {
	Sweep(now time.Time, ttl time.Duration) int
}

// MemoryStore keeps sessions in process memory. Contents are lost on
// restart, which logs everybody out. Records are copied in and out, so
// callers never hold pointers into stored state.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Record)}
}

// Put inserts or overwrites the record for token.
func (s *MemoryStore) Put(token string, rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = rec.clone()
}

// Get returns the record for token, stale or not.
func (s *MemoryStore) Get(token string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[token]
	if !ok {
		return Record{}, false
	}
	return rec.clone(), true
}

// Remove deletes token. Removing an unknown token is a no-op.
func (s *MemoryStore) Remove(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// RemoveIf deletes token when cond accepts its current record. cond runs
// under the store lock and receives a copy.
func (s *MemoryStore) RemoveIf(token string, cond func(Record) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[token]
	if !ok || !cond(rec.clone()) {
		return false
	}
	delete(s.sessions, token)
	return true
}

// Sweep removes all records that are at least ttl old and returns how many
// were dropped.
func (s *MemoryStore) Sweep(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for token, rec := range s.sessions {
		if rec.Expired(now, ttl) {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}

// Len returns the number of stored records, stale ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
