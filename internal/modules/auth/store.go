package auth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

const sweepInterval = 10 * time.Minute

// Store keeps authenticated sessions in process memory, keyed by an opaque
// token. Expired entries are removed lazily on validation and periodically
// by the sweep goroutine.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]time.Time // token -> creation time
	ttl      time.Duration
	done     chan struct{}
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Create mints a new session token: 32 random bytes, hex encoded.
func (s *Store) Create() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.sessions[token] = time.Now()
	s.mu.Unlock()

	return token, nil
}

func (s *Store) Validate(token string) bool {
	if token == "" {
		return false
	}

	s.mu.RLock()
	createdAt, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if time.Since(createdAt) > s.ttl {
		s.Invalidate(token)
		return false
	}
	return true
}

// Invalidate removes a session; reports whether it existed.
func (s *Store) Invalidate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return false
	}
	delete(s.sessions, token)
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

func (s *Store) Close() {
	close(s.done)
}

func (s *Store) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for token, createdAt := range s.sessions {
				if now.Sub(createdAt) > s.ttl {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
