package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr string

	GeminiKey   string
	GeminiModel string

	SessionSecret []byte

	AnalyticsDSN string
}

func Load() *Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-pro-latest"
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "DEV_SESSION_SECRET_CHANGE_ME"
	}

	return &Config{
		Addr:          addr,
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   model,
		SessionSecret: []byte(secret),
		AnalyticsDSN:  os.Getenv("ANALYTICS_DSN"),
	}
}
