package tasks

import (
	"context"
	"log"

	"kurashi-partner-backend/internal/advisor"
	"kurashi-partner-backend/internal/energy"
)

// Advisor is the slice of the generation gateway the completion flow needs.
type Advisor interface {
	Configured() bool
	Generate(ctx context.Context, prompt string, image *advisor.Image) (string, error)
}

// Notifier receives transient, dismissible messages for the user.
type Notifier interface {
	Push(text string)
}

// coachingDiffThreshold: overruns beyond this trigger a coaching message.
const coachingDiffThreshold = 20

// PendingCompletion is the transient state between selecting a task for
// completion and confirming it. At most one exists per session.
type PendingCompletion struct {
	Task       Task `json:"task"`
	ActualCost int  `json:"actual_cost"`
}

// CompletionFlow walks one task through Idle → Selected → Idle. Confirm
// commits the energy deduction and done flag first; the coaching request is
// fire-and-forget and can never block or unwind the committed mutation.
type CompletionFlow struct {
	ledger   *energy.Ledger
	registry *Registry
	advisor  Advisor
	notifier Notifier
	pending  *PendingCompletion
}

func NewCompletionFlow(ledger *energy.Ledger, registry *Registry, adv Advisor, notifier Notifier) *CompletionFlow {
	return &CompletionFlow{
		ledger:   ledger,
		registry: registry,
		advisor:  adv,
		notifier: notifier,
	}
}

// Pending returns the current selection, or nil when idle.
func (f *CompletionFlow) Pending() *PendingCompletion {
	if f.pending == nil {
		return nil
	}
	p := *f.pending
	return &p
}

// Select opens a completion attempt for the task with the given id. The
// actual cost defaults to the estimate.
func (f *CompletionFlow) Select(id int) error {
	if f.pending != nil {
		return ErrCompletionActive
	}
	t, ok := f.registry.Get(id)
	if !ok || t.Done {
		return ErrTaskNotFound
	}
	f.pending = &PendingCompletion{Task: t, ActualCost: t.EstimatedCost}
	return nil
}

// AdjustActual updates the reported cost, clamped into [0,100].
func (f *CompletionFlow) AdjustActual(cost int) error {
	if f.pending == nil {
		return ErrNoPending
	}
	if cost < 0 {
		cost = 0
	}
	if cost > 100 {
		cost = 100
	}
	f.pending.ActualCost = cost
	return nil
}

// Confirm commits the completion: deduct energy, mark the task done, then
// request coaching advice when the estimate was badly off. The advice is
// delivered as a notice later; a failed request is only logged, since the
// task is already complete.
func (f *CompletionFlow) Confirm() error {
	p := f.pending
	if p == nil {
		return ErrNoPending
	}

	f.ledger.Deduct(p.ActualCost)
	f.registry.MarkDone(p.Task.ID)

	diff := p.ActualCost - p.Task.EstimatedCost
	if diff > coachingDiffThreshold && f.advisor != nil && f.advisor.Configured() {
		task := p.Task
		actual := p.ActualCost
		go func() {
			advice, err := f.advisor.Generate(context.Background(),
				advisor.CoachingPrompt(task.Name, task.EstimatedCost, actual), nil)
			if err != nil {
				log.Printf("coaching advice request failed: %v", err)
				return
			}
			if f.notifier != nil {
				f.notifier.Push(advice)
			}
		}()
	}

	f.pending = nil
	return nil
}

// Cancel drops the selection without touching the ledger or registry.
func (f *CompletionFlow) Cancel() {
	f.pending = nil
}
