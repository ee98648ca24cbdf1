package garden

import (
	"context"
	"errors"
	"log"

	"kurashi-partner-backend/internal/advisor"
)

// Stage is a read-only projection of the water counter, not stored state.
type Stage string

const (
	StageSeed   Stage = "seed"
	StageSprout Stage = "sprout"
	StageBud    Stage = "bud"
)

// bloomAt is the number of qualifying consistency checks per flower.
const bloomAt = 3

// ErrNotEligible means Must tasks are still open, so the day cannot be
// recorded. The counter is left untouched.
var ErrNotEligible = errors.New("garden: must tasks not all done")

// MustChecker gates watering on task consistency.
type MustChecker interface {
	AllMustDone() bool
}

// Advisor is the slice of the generation gateway the tracker needs.
type Advisor interface {
	Configured() bool
	Generate(ctx context.Context, prompt string, image *advisor.Image) (string, error)
}

// Notices shown when a bloom happens but no artifact could be produced.
const (
	noticeUnconfigured = "APIキーがあれば、あなただけの花が咲きます。"
	noticeBloomFailed  = "花の生成に失敗しました...でも気持ちは満開です！"
)

// WaterResult reports the outcome of one consistency check.
type WaterResult struct {
	WaterCount int     `json:"water_count"`
	Bloomed    bool    `json:"bloomed"`
	Flower     *Flower `json:"flower,omitempty"`
	Notice     string  `json:"notice,omitempty"`
}

// Tracker counts consistency checks and turns every third one into a bloom.
// The gallery is append-only, in chronological bloom order.
type Tracker struct {
	must       MustChecker
	advisor    Advisor
	waterCount int
	gallery    []Flower
}

func NewTracker(must MustChecker, adv Advisor) *Tracker {
	return &Tracker{must: must, advisor: adv}
}

func (t *Tracker) WaterCount() int { return t.waterCount }

func (t *Tracker) Stage() Stage {
	switch t.waterCount {
	case 1:
		return StageSprout
	case 2:
		return StageBud
	}
	return StageSeed
}

// Gallery returns the bloomed flowers in order.
func (t *Tracker) Gallery() []Flower {
	out := make([]Flower, len(t.gallery))
	copy(out, t.gallery)
	return out
}

// RecordDay registers one consistency check. It fails with ErrNotEligible
// while Must tasks are open. The third check consumes the milestone first
// and then attempts to generate a flower: a gateway or parse failure keeps
// the counter at zero and only yields a soft notice, and an unconfigured
// gateway consumes the milestone silently.
func (t *Tracker) RecordDay(ctx context.Context) (WaterResult, error) {
	if t.must == nil || !t.must.AllMustDone() {
		return WaterResult{WaterCount: t.waterCount}, ErrNotEligible
	}

	t.waterCount++
	if t.waterCount < bloomAt {
		return WaterResult{WaterCount: t.waterCount}, nil
	}

	// Milestone consumed before generation. A failed bloom does not roll
	// this back; the user's consistency is honored either way.
	t.waterCount = 0
	res := WaterResult{Bloomed: true}

	if t.advisor == nil || !t.advisor.Configured() {
		res.Notice = noticeUnconfigured
		return res, nil
	}

	raw, err := t.advisor.Generate(ctx, advisor.FlowerPrompt, nil)
	if err != nil {
		log.Printf("flower generation failed: %v", err)
		res.Notice = noticeBloomFailed
		return res, nil
	}

	f, err := ParseFlower(raw)
	if err != nil {
		log.Printf("flower response unusable: %v", err)
		res.Notice = noticeBloomFailed
		return res, nil
	}

	t.gallery = append(t.gallery, f)
	res.Flower = &f
	return res, nil
}
