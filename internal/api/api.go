// Package api is the HTTP surface of the companion backend: one route per
// session operation, all behind the session bearer middleware.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"kurashi-partner-backend/internal/advisor"
)

// Advisor is the slice of the generation gateway the handlers call directly.
type Advisor interface {
	Configured() bool
	Generate(ctx context.Context, prompt string, image *advisor.Image) (string, error)
}

const msgConfigureKey = "APIキーを設定してください。"

// softFailMessage converts a gateway failure into the inline text shown in
// place of the expected content. Nothing here is fatal.
func softFailMessage(err error) string {
	if errors.Is(err, advisor.ErrUnconfigured) {
		return msgConfigureKey
	}
	return "エラーが発生しました: " + err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
