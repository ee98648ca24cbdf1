package api

import (
	"errors"
	"io"
	"net/http"

	"kurashi-partner-backend/internal/advisor"
	"kurashi-partner-backend/internal/analytics"
	"kurashi-partner-backend/internal/menu"
	"kurashi-partner-backend/internal/session"
)

const maxReceiptBytes = 10 << 20

// MenuHandler owns the meal-plan artifact: generate from a receipt photo
// plus postal code, read the current plan, clear it.
func MenuHandler(rec *analytics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodGet:
			sess.Lock()
			plan := sess.Menu.Current()
			sess.Unlock()
			writeJSON(w, http.StatusOK, map[string]any{"plan": plan})

		case http.MethodPost:
			if err := r.ParseMultipartForm(maxReceiptBytes); err != nil {
				http.Error(w, "invalid multipart form", http.StatusBadRequest)
				return
			}

			postal := r.FormValue("postal_code")

			var image *advisor.Image
			if file, hdr, err := r.FormFile("receipt"); err == nil {
				data, readErr := io.ReadAll(file)
				file.Close()
				if readErr != nil {
					http.Error(w, "unreadable receipt image", http.StatusBadRequest)
					return
				}
				mime := hdr.Header.Get("Content-Type")
				if mime == "" {
					mime = http.DetectContentType(data)
				}
				image = &advisor.Image{Data: data, MIME: mime}
			}

			sess.Lock()
			plan, err := sess.Menu.Generate(r.Context(), image, postal)
			sess.Unlock()

			if errors.Is(err, menu.ErrMissingInput) {
				http.Error(w, "receipt image and postal code are required", http.StatusBadRequest)
				return
			}
			if err != nil {
				// Gateway failure: inline message in place of the plan,
				// previous plan untouched.
				writeJSON(w, http.StatusOK, map[string]any{"message": softFailMessage(err)})
				return
			}

			env := analytics.FromRequest(r)
			env.SessionID = sess.ID
			rec.Log(r.Context(), env, "menu_generated", map[string]any{
				"plan_len": len(plan),
			})

			writeJSON(w, http.StatusOK, map[string]any{"plan": plan})

		case http.MethodDelete:
			sess.Lock()
			sess.Menu.Clear()
			sess.Unlock()
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})

		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
