package menu

import (
	"context"
	"errors"
	"strings"

	"kurashi-partner-backend/internal/advisor"
)

// ErrMissingInput means the receipt image or postal code was absent.
var ErrMissingInput = errors.New("menu: receipt image and postal code are required")

// Advisor is the slice of the generation gateway the planner needs.
type Advisor interface {
	Configured() bool
	Generate(ctx context.Context, prompt string, image *advisor.Image) (string, error)
}

// Planner holds at most one live meal plan: free-form formatted text,
// replaced wholesale by each generation.
type Planner struct {
	advisor Advisor
	plan    string
}

func NewPlanner(adv Advisor) *Planner {
	return &Planner{advisor: adv}
}

// Generate builds one composite prompt from the postal code, sends it with
// the receipt image in a single gateway call and stores the returned text
// verbatim. A failed call leaves the previous plan in place.
func (p *Planner) Generate(ctx context.Context, image *advisor.Image, postalCode string) (string, error) {
	if image == nil || len(image.Data) == 0 || strings.TrimSpace(postalCode) == "" {
		return "", ErrMissingInput
	}

	text, err := p.advisor.Generate(ctx, advisor.MenuPrompt(postalCode), image)
	if err != nil {
		return "", err
	}

	p.plan = text
	return text, nil
}

// Current returns the live plan, empty when none.
func (p *Planner) Current() string { return p.plan }

// Clear resets the plan to empty.
func (p *Planner) Clear() { p.plan = "" }
