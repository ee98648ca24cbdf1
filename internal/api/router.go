package api

import (
	"net/http"

	"kurashi-partner-backend/internal/analytics"
	"kurashi-partner-backend/internal/session"
)

// Router wires every route. Everything except /health and /session sits
// behind the session middleware.
func Router(store *session.Store, adv Advisor, rec *analytics.Recorder, secret []byte) *http.ServeMux {
	mw := session.NewMiddleware(store, secret)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/session", CreateSessionHandler(store, rec))

	mux.HandleFunc("/energy", mw.Wrap(EnergyHandler()))
	mux.HandleFunc("/energy/rest", mw.Wrap(RestHandler()))
	mux.HandleFunc("/energy/microtask", mw.Wrap(MicrotaskHandler(adv)))

	mux.HandleFunc("/tasks", mw.Wrap(TasksHandler(rec)))
	mux.HandleFunc("/completion", mw.Wrap(CompletionHandler()))
	mux.HandleFunc("/completion/confirm", mw.Wrap(ConfirmCompletionHandler(rec)))

	mux.HandleFunc("/garden", mw.Wrap(GardenHandler()))
	mux.HandleFunc("/garden/water", mw.Wrap(WaterGardenHandler(rec)))
	mux.HandleFunc("/garden/gallery", mw.Wrap(GalleryHandler()))

	mux.HandleFunc("/menu", mw.Wrap(MenuHandler(rec)))

	mux.HandleFunc("/notices", mw.Wrap(NoticesHandler()))

	return mux
}
