package api

import (
	"errors"
	"net/http"

	"kurashi-partner-backend/internal/analytics"
	"kurashi-partner-backend/internal/garden"
	"kurashi-partner-backend/internal/session"
)

// GardenHandler reports the growth state and eligibility for watering.
func GardenHandler() http.HandlerFunc {
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
		view := map[string]any{
			"water_count": sess.Garden.WaterCount(),
			"stage":       sess.Garden.Stage(),
			"eligible":    sess.Tasks.AllMustDone(),
		}
		sess.Unlock()
		writeJSON(w, http.StatusOK, view)
	}
}

// WaterGardenHandler records one consistency check ("watering"). The third
// successful one blooms; generation failures are soft and the milestone
// stays consumed.
func WaterGardenHandler(rec *analytics.Recorder) http.HandlerFunc {
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
		res, err := sess.Garden.RecordDay(r.Context())
		sess.Unlock()

		if errors.Is(err, garden.ErrNotEligible) {
			http.Error(w, "must tasks not all done", http.StatusConflict)
			return
		}

		env := analytics.FromRequest(r)
		env.SessionID = sess.ID
		rec.Log(r.Context(), env, "garden_watered", map[string]any{
			"water_count": res.WaterCount,
			"bloomed":     res.Bloomed,
		})
		if res.Flower != nil {
			rec.Log(r.Context(), env, "flower_bloomed", map[string]any{
				"name_len": len(res.Flower.Name),
			})
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// GalleryHandler lists the bloomed flowers in chronological order.
func GalleryHandler() http.HandlerFunc {
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
		flowers := sess.Garden.Gallery()
		sess.Unlock()

		writeJSON(w, http.StatusOK, map[string]any{"flowers": flowers})
	}
}
