package session

import (
	"context"
	"sync"

	"kurashi-partner-backend/internal/advisor"
	"kurashi-partner-backend/internal/energy"
	"kurashi-partner-backend/internal/garden"
	"kurashi-partner-backend/internal/menu"
	"kurashi-partner-backend/internal/tasks"
)

// Advisor is the generation gateway as the session wires it into each
// component.
type Advisor interface {
	Configured() bool
	Generate(ctx context.Context, prompt string, image *advisor.Image) (string, error)
}

// Session is the explicit per-session context: one instance of every
// stateful component, owned exclusively by this session. It replaces any
// ambient globals; all access goes through the session's single
// coarse-grained lock.
type Session struct {
	ID string

	Energy     *energy.Ledger
	Tasks      *tasks.Registry
	Completion *tasks.CompletionFlow
	Garden     *garden.Tracker
	Menu       *menu.Planner

	mu      sync.Mutex
	notices []string
}

func New(id string, adv Advisor) *Session {
	s := &Session{
		ID:     id,
		Energy: energy.NewLedger(),
		Tasks:  tasks.NewRegistry(),
	}
	s.Completion = tasks.NewCompletionFlow(s.Energy, s.Tasks, adv, s)
	s.Garden = garden.NewTracker(s.Tasks, adv)
	s.Menu = menu.NewPlanner(adv)
	return s
}

// Lock takes the session's coarse lock. Handlers hold it for the whole
// request; deferred gateway work reacquires it via Push.
func (s *Session) Lock() { s.mu.Lock() }

func (s *Session) Unlock() { s.mu.Unlock() }

// Push queues a transient, dismissible notice (coaching advice and the
// like). Safe to call from background goroutines.
func (s *Session) Push(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	s.notices = append(s.notices, text)
	s.mu.Unlock()
}

// DrainNotices returns and clears the queued notices. Caller must hold the
// session lock.
func (s *Session) DrainNotices() []string {
	out := s.notices
	s.notices = nil
	return out
}
