package api

import (
	"encoding/json"
	"net/http"

	"kurashi-partner-backend/internal/advisor"
	"kurashi-partner-backend/internal/energy"
	"kurashi-partner-backend/internal/session"
)

func energyView(l *energy.Ledger) map[string]any {
	return map[string]any{
		"level":    l.Level(),
		"depleted": l.IsDepleted(),
	}
}

// EnergyHandler reads and sets the session's energy level.
func EnergyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodGet:
			sess.Lock()
			view := energyView(sess.Energy)
			sess.Unlock()
			writeJSON(w, http.StatusOK, view)

		case http.MethodPut:
			var body struct {
				Level int `json:"level"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}

			sess.Lock()
			sess.Energy.SetLevel(body.Level)
			view := energyView(sess.Energy)
			sess.Unlock()
			writeJSON(w, http.StatusOK, view)

		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// RestHandler is the "rest" path at zero energy: informational only.
func RestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": energy.RestMessage})
	}
}

// MicrotaskHandler asks the gateway for one tiny task. A gateway failure
// surfaces as inline text in place of a suggestion, never as a hard error.
func MicrotaskHandler(adv Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		suggestion, err := adv.Generate(r.Context(), advisor.MicrotaskPrompt, nil)
		if err != nil {
			writeJSON(w, http.StatusOK, map[string]any{"message": softFailMessage(err)})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"suggestion": suggestion})
	}
}
