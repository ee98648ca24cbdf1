package garden

import (
	"context"
	"errors"
	"testing"

	"kurashi-partner-backend/internal/advisor"
	"kurashi-partner-backend/internal/tasks"
)

type fakeAdvisor struct {
	configured bool
	reply      string
	err        error
	calls      int
}

func (f *fakeAdvisor) Configured() bool { return f.configured }

func (f *fakeAdvisor) Generate(ctx context.Context, prompt string, image *advisor.Image) (string, error) {
	f.calls++
	return f.reply, f.err
}

const flowerJSON = `{"name":"月光草","description":"夜にだけ光る","emoji":"🌙","svg":"<svg></svg>"}`

// requalify marks every Must task done, adding one if none is open.
func requalify(t *testing.T, r *tasks.Registry) {
	t.Helper()
	task, ok := r.Add("must task", 10, tasks.TagMust)
	if ok {
		r.MarkDone(task.ID)
	}
	for _, m := range r.MustTasks() {
		r.MarkDone(m.ID)
	}
}

func TestRecordDayNotEligible(t *testing.T) {
	r := tasks.NewRegistry()
	tr := NewTracker(r, &fakeAdvisor{configured: true})

	res, err := tr.RecordDay(context.Background())
	if !errors.Is(err, ErrNotEligible) {
		t.Fatalf("expected ErrNotEligible, got %v", err)
	}
	if res.WaterCount != 0 || tr.WaterCount() != 0 {
		t.Fatalf("counter must be unchanged, got %d", tr.WaterCount())
	}

	// An open Must task also blocks.
	r.Add("open must", 10, tasks.TagMust)
	if _, err := tr.RecordDay(context.Background()); !errors.Is(err, ErrNotEligible) {
		t.Fatalf("expected ErrNotEligible with open Must task, got %v", err)
	}
}

func TestThreeWateringsBloomExactlyOnce(t *testing.T) {
	r := tasks.NewRegistry()
	adv := &fakeAdvisor{configured: true, reply: "```json\n" + flowerJSON + "\n```"}
	tr := NewTracker(r, adv)

	counts := []int{1, 2, 0}
	for i := 0; i < 3; i++ {
		requalify(t, r)
		res, err := tr.RecordDay(context.Background())
		if err != nil {
			t.Fatalf("watering %d: unexpected error: %v", i+1, err)
		}
		if res.WaterCount != counts[i] {
			t.Fatalf("watering %d: expected count %d, got %d", i+1, counts[i], res.WaterCount)
		}
		if bloomed := i == 2; res.Bloomed != bloomed {
			t.Fatalf("watering %d: bloomed=%v", i+1, res.Bloomed)
		}
	}

	if adv.calls != 1 {
		t.Fatalf("expected exactly one generation call, got %d", adv.calls)
	}

	gallery := tr.Gallery()
	if len(gallery) != 1 {
		t.Fatalf("expected 1 flower, got %d", len(gallery))
	}
	if gallery[0].Name != "月光草" || gallery[0].Emoji != "🌙" {
		t.Fatalf("unexpected flower %+v", gallery[0])
	}
}

// Unconfigured gateway: the third milestone is still consumed, silently.
func TestBloomWithoutGatewayConsumesMilestone(t *testing.T) {
	r := tasks.NewRegistry()
	adv := &fakeAdvisor{configured: false}
	tr := NewTracker(r, adv)

	for i := 0; i < 3; i++ {
		requalify(t, r)
		if _, err := tr.RecordDay(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if tr.WaterCount() != 0 {
		t.Fatalf("expected counter reset, got %d", tr.WaterCount())
	}
	if len(tr.Gallery()) != 0 {
		t.Fatalf("gallery must stay empty without a gateway")
	}
	if adv.calls != 0 {
		t.Fatalf("unconfigured gateway must not be called")
	}
}

func TestBloomRequestFailureKeepsMilestoneConsumed(t *testing.T) {
	r := tasks.NewRegistry()
	adv := &fakeAdvisor{configured: true, err: &advisor.RequestError{Err: errors.New("quota")}}
	tr := NewTracker(r, adv)

	var last WaterResult
	for i := 0; i < 3; i++ {
		requalify(t, r)
		res, err := tr.RecordDay(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last = res
	}

	if !last.Bloomed {
		t.Fatalf("expected bloom on third watering")
	}
	if last.Flower != nil {
		t.Fatalf("failed generation must not produce a flower")
	}
	if last.Notice == "" {
		t.Fatalf("expected a soft failure notice")
	}
	if tr.WaterCount() != 0 {
		t.Fatalf("milestone must stay consumed, got count %d", tr.WaterCount())
	}
}

func TestBloomParseFailureYieldsSoftNotice(t *testing.T) {
	r := tasks.NewRegistry()
	adv := &fakeAdvisor{configured: true, reply: "not json at all"}
	tr := NewTracker(r, adv)

	var last WaterResult
	for i := 0; i < 3; i++ {
		requalify(t, r)
		last, _ = tr.RecordDay(context.Background())
	}

	if last.Notice == "" {
		t.Fatalf("expected a soft failure notice")
	}
	if len(tr.Gallery()) != 0 {
		t.Fatalf("unparseable flower must not enter the gallery")
	}
	if tr.WaterCount() != 0 {
		t.Fatalf("milestone must stay consumed")
	}
}

func TestStageProjection(t *testing.T) {
	r := tasks.NewRegistry()
	tr := NewTracker(r, &fakeAdvisor{configured: false})

	if tr.Stage() != StageSeed {
		t.Fatalf("expected seed, got %s", tr.Stage())
	}

	requalify(t, r)
	tr.RecordDay(context.Background())
	if tr.Stage() != StageSprout {
		t.Fatalf("expected sprout, got %s", tr.Stage())
	}

	requalify(t, r)
	tr.RecordDay(context.Background())
	if tr.Stage() != StageBud {
		t.Fatalf("expected bud, got %s", tr.Stage())
	}

	requalify(t, r)
	tr.RecordDay(context.Background())
	if tr.Stage() != StageSeed {
		t.Fatalf("expected seed after bloom, got %s", tr.Stage())
	}
}

func TestGalleryIsAppendOnlyInBloomOrder(t *testing.T) {
	r := tasks.NewRegistry()
	adv := &fakeAdvisor{configured: true, reply: `{"name":"一番","description":"","emoji":"🌸","svg":""}`}
	tr := NewTracker(r, adv)

	bloom := func() {
		for i := 0; i < 3; i++ {
			requalify(t, r)
			if _, err := tr.RecordDay(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}

	bloom()
	adv.reply = `{"name":"二番","description":"","emoji":"🌺","svg":""}`
	bloom()

	g := tr.Gallery()
	if len(g) != 2 {
		t.Fatalf("expected 2 flowers, got %d", len(g))
	}
	if g[0].Name != "一番" || g[1].Name != "二番" {
		t.Fatalf("expected chronological order, got %q then %q", g[0].Name, g[1].Name)
	}
}
