package garden

import (
	"encoding/json"
	"errors"
	"fmt"

	"kurashi-partner-backend/internal/advisor"
)

// ErrArtifactParse means a structured response could not be interpreted as a
// flower. Surfaced as a soft notice; the triggering milestone stays consumed.
var ErrArtifactParse = errors.New("garden: flower response could not be parsed")

// Flower is an immutable generated reward artifact.
type Flower struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	SVG         string `json:"svg"`
}

// ParseFlower interprets a raw gateway response as a flower, tolerating
// markdown code fences around the JSON payload.
func ParseFlower(raw string) (Flower, error) {
	var f Flower
	if err := json.Unmarshal([]byte(advisor.StripCodeFence(raw)), &f); err != nil {
		return Flower{}, fmt.Errorf("%w: %v", ErrArtifactParse, err)
	}
	return f, nil
}
