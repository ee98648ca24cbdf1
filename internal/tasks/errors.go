package tasks

import "errors"

var (
	// ErrCompletionActive means a completion is already being confirmed;
	// only one pending completion may exist at a time.
	ErrCompletionActive = errors.New("tasks: another completion is already pending")

	// ErrNoPending means confirm/adjust was called with nothing selected.
	ErrNoPending = errors.New("tasks: no pending completion")

	// ErrTaskNotFound means the id does not name a completable task.
	ErrTaskNotFound = errors.New("tasks: task not found")
)
