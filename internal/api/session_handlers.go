package api

import (
	"net/http"

	"kurashi-partner-backend/internal/analytics"
	"kurashi-partner-backend/internal/session"
)

// CreateSessionHandler mints a new session and returns its bearer token.
func CreateSessionHandler(store *session.Store, rec *analytics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
			return
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		sess, token, err := store.Create()
		if err != nil {
			http.Error(w, "session create error", http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.SessionID = sess.ID
		rec.Log(r.Context(), env, "session_created", map[string]any{})

		writeJSON(w, http.StatusOK, map[string]any{"token": token})
	}
}

// NoticesHandler drains the session's transient notices (coaching advice
// and other dismissible messages).
func NoticesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		sess, ok := session.FromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sess.Lock()
		notices := sess.DrainNotices()
		sess.Unlock()

		if notices == nil {
			notices = []string{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"notices": notices})
	}
}
