package tasks

import "strings"

// Registry exclusively owns the session's task collection. Tasks are never
// deleted; the only mutation after creation is flipping Done to true.
type Registry struct {
	tasks []Task
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a new task. Malformed input (empty name, unknown tag) is
// silently ignored and reported with ok=false. The estimated cost is clamped
// into [1,100]. IDs are monotonic, assigned at creation.
func (r *Registry) Add(name string, estimatedCost int, tag Tag) (Task, bool) {
	if strings.TrimSpace(name) == "" || !tag.Valid() {
		return Task{}, false
	}
	if estimatedCost < 1 {
		estimatedCost = 1
	}
	if estimatedCost > 100 {
		estimatedCost = 100
	}

	t := Task{
		ID:            len(r.tasks),
		Name:          name,
		EstimatedCost: estimatedCost,
		Tag:           tag,
	}
	r.tasks = append(r.tasks, t)
	return t, true
}

// All returns a snapshot of every task in creation order.
func (r *Registry) All() []Task {
	out := make([]Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Active returns the not-yet-done tasks in creation order, recomputed from
// the live collection on every call.
func (r *Registry) Active() []Task {
	var out []Task
	for _, t := range r.tasks {
		if !t.Done {
			out = append(out, t)
		}
	}
	return out
}

// MustTasks returns the subsequence tagged Must.
func (r *Registry) MustTasks() []Task {
	var out []Task
	for _, t := range r.tasks {
		if t.Tag == TagMust {
			out = append(out, t)
		}
	}
	return out
}

func (r *Registry) Get(id int) (Task, bool) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// MarkDone flips the task's done flag. No-op when the id is absent.
func (r *Registry) MarkDone(id int) {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Done = true
			return
		}
	}
}

// AllMustDone reports whether every Must task is done. An empty Must set is
// explicitly not "all done", so a reward can never trigger vacuously.
func (r *Registry) AllMustDone() bool {
	found := false
	for _, t := range r.tasks {
		if t.Tag != TagMust {
			continue
		}
		if !t.Done {
			return false
		}
		found = true
	}
	return found
}
