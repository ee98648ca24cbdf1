package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store owns all live sessions. Sessions are process-local and die with the
// process; there is no cross-restart persistence.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	secret   []byte
	advisor  Advisor
}

func NewStore(secret []byte, adv Advisor) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		secret:   secret,
		advisor:  adv,
	}
}

// Create makes a fresh session and returns it with its signed token.
func (s *Store) Create() (*Session, string, error) {
	id := uuid.NewString()

	token, err := GenerateToken(s.secret, id)
	if err != nil {
		return nil, "", err
	}

	sess := New(id, s.advisor)

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return sess, token, nil
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}
