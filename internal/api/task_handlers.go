package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"kurashi-partner-backend/internal/analytics"
	"kurashi-partner-backend/internal/session"
	"kurashi-partner-backend/internal/tasks"
)

type taskView struct {
	tasks.Task
	TagLabel string `json:"tag_label"`
}

func taskViews(ts []tasks.Task) []taskView {
	out := make([]taskView, 0, len(ts))
	for _, t := range ts {
		out = append(out, taskView{Task: t, TagLabel: t.Tag.Label()})
	}
	return out
}

// TasksHandler lists active tasks and creates new ones. A malformed
// submission is ignored rather than rejected.
func TasksHandler(rec *analytics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodGet:
			sess.Lock()
			var list []tasks.Task
			if r.URL.Query().Get("all") != "" {
				list = sess.Tasks.All()
			} else {
				list = sess.Tasks.Active()
			}
			sess.Unlock()
			writeJSON(w, http.StatusOK, map[string]any{"tasks": taskViews(list)})

		case http.MethodPost:
			var body struct {
				Name          string `json:"name"`
				EstimatedCost int    `json:"estimated_cost"`
				Tag           string `json:"tag"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}

			sess.Lock()
			t, added := sess.Tasks.Add(body.Name, body.EstimatedCost, tasks.Tag(strings.ToLower(body.Tag)))
			sess.Unlock()

			if !added {
				// ValidationSkipped: ignored submission, not an error.
				writeJSON(w, http.StatusOK, map[string]any{"ok": false})
				return
			}

			env := analytics.FromRequest(r)
			env.SessionID = sess.ID
			rec.Log(r.Context(), env, "task_added", map[string]any{
				"task_id":        t.ID,
				"tag":            string(t.Tag),
				"estimated_cost": t.EstimatedCost,
				"name_len":       len(strings.TrimSpace(t.Name)),
			})

			writeJSON(w, http.StatusOK, map[string]any{
				"ok":   true,
				"task": taskView{Task: t, TagLabel: t.Tag.Label()},
			})

		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// CompletionHandler drives the select/adjust/cancel states of the
// completion workflow. Confirm has its own route.
func CompletionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodGet:
			sess.Lock()
			p := sess.Completion.Pending()
			sess.Unlock()
			writeJSON(w, http.StatusOK, map[string]any{"pending": p})

		case http.MethodPost:
			var body struct {
				TaskID int `json:"task_id"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}

			sess.Lock()
			err := sess.Completion.Select(body.TaskID)
			p := sess.Completion.Pending()
			sess.Unlock()

			switch {
			case errors.Is(err, tasks.ErrCompletionActive):
				http.Error(w, "another completion is pending", http.StatusConflict)
			case errors.Is(err, tasks.ErrTaskNotFound):
				http.Error(w, "task not found", http.StatusNotFound)
			case err != nil:
				http.Error(w, "select error", http.StatusInternalServerError)
			default:
				writeJSON(w, http.StatusOK, map[string]any{"pending": p})
			}

		case http.MethodPut:
			var body struct {
				ActualCost int `json:"actual_cost"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}

			sess.Lock()
			err := sess.Completion.AdjustActual(body.ActualCost)
			p := sess.Completion.Pending()
			sess.Unlock()

			if errors.Is(err, tasks.ErrNoPending) {
				http.Error(w, "no pending completion", http.StatusConflict)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"pending": p})

		case http.MethodDelete:
			sess.Lock()
			sess.Completion.Cancel()
			sess.Unlock()
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})

		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// ConfirmCompletionHandler commits the pending completion: energy deducted,
// task done, coaching advice (if any) delivered later as a notice.
func ConfirmCompletionHandler(rec *analytics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		sess, ok := session.FromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sess.Lock()
		p := sess.Completion.Pending()
		err := sess.Completion.Confirm()
		view := energyView(sess.Energy)
		sess.Unlock()

		if errors.Is(err, tasks.ErrNoPending) {
			http.Error(w, "no pending completion", http.StatusConflict)
			return
		}

		env := analytics.FromRequest(r)
		env.SessionID = sess.ID
		rec.Log(r.Context(), env, "task_completed", map[string]any{
			"task_id":        p.Task.ID,
			"estimated_cost": p.Task.EstimatedCost,
			"actual_cost":    p.ActualCost,
			"diff":           p.ActualCost - p.Task.EstimatedCost,
		})

		writeJSON(w, http.StatusOK, view)
	}
}
