package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"kurashi-partner-backend/internal/advisor"
	"kurashi-partner-backend/internal/analytics"
	"kurashi-partner-backend/internal/api"
	"kurashi-partner-backend/internal/config"
	"kurashi-partner-backend/internal/session"
)

func main() {
	cfg := config.Load()

	rec, err := analytics.Open(cfg.AnalyticsDSN)
	if err != nil {
		log.Fatal("❌ Failed to connect analytics DB:", err)
	}
	defer rec.Close()

	if rec.Enabled() {
		log.Println("✅ Analytics connected to PostgreSQL!")
	} else {
		log.Println("ℹ️ Analytics disabled (no ANALYTICS_DSN)")
	}

	adv := advisor.New(cfg.GeminiKey, cfg.GeminiModel)
	if adv.Configured() {
		log.Println("✅ Gemini advisor configured, model:", cfg.GeminiModel)
	} else {
		log.Println("⚠️ No GEMINI_API_KEY set — AI features degrade gracefully")
	}

	store := session.NewStore(cfg.SessionSecret, adv)

	mux := api.Router(store, adv, rec, cfg.SessionSecret)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Platform", "X-App-Version", "X-Device-Locale"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	log.Println("🚀 API server is running on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
