package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// Envelope is what we store with every event. Backend-trustable fields only.
type Envelope struct {
	SessionID    string
	Platform     string
	AppVersion   string
	DeviceLocale string
}

// FromRequest extracts envelope fields from request headers.
func FromRequest(r *http.Request) Envelope {
	platform := strings.TrimSpace(r.Header.Get("X-Platform"))
	if platform == "" {
		platform = "unknown"
	} else {
		platform = strings.ToLower(platform)
		if platform != "ios" && platform != "android" && platform != "web" {
			platform = "unknown"
		}
	}

	appVer := strings.TrimSpace(r.Header.Get("X-App-Version"))
	locale := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if locale == "" {
		locale = strings.TrimSpace(r.Header.Get("X-Device-Locale"))
	}

	return Envelope{
		Platform:     platform,
		AppVersion:   appVer,
		DeviceLocale: locale,
	}
}

// Recorder writes events to the analytics store. With no DSN configured it
// is a no-op; analytics must never block or fail the core flow.
type Recorder struct {
	db *sql.DB
}

// Enabled reports whether events actually go anywhere.
func (rec *Recorder) Enabled() bool {
	return rec != nil && rec.db != nil
}

// Log inserts one event, best effort. Never logs raw user text; callers pass
// sanitized props only.
func (rec *Recorder) Log(ctx context.Context, env Envelope, eventName string, props map[string]any) {
	if !rec.Enabled() || eventName == "" || env.SessionID == "" {
		return
	}

	b, err := json.Marshal(props)
	if err != nil {
		// if props can't marshal, don't break core flow
		return
	}

	_, _ = rec.db.ExecContext(ctx, `
		INSERT INTO analytics_events (
			event_name, event_time,
			session_id, platform, app_version, device_locale,
			properties
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
	`, eventName, time.Now().UTC(),
		env.SessionID, env.Platform, nullIfEmpty(env.AppVersion), nullIfEmpty(env.DeviceLocale),
		string(b),
	)
}

func nullIfEmpty(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
