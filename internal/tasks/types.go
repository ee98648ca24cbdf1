package tasks

// Tag classifies a task. Closed set; comparison is always exact match,
// display text lives in Label.
type Tag string

const (
	TagMust  Tag = "must"
	TagHeavy Tag = "heavy"
	TagLight Tag = "light"
)

func (t Tag) Valid() bool {
	switch t {
	case TagMust, TagHeavy, TagLight:
		return true
	}
	return false
}

// Label returns the user-facing name for the tag.
func (t Tag) Label() string {
	switch t {
	case TagMust:
		return "Must (必須)"
	case TagHeavy:
		return "Heavy (重い)"
	case TagLight:
		return "Light (軽い)"
	}
	return string(t)
}

type Task struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	EstimatedCost int    `json:"estimated_cost"`
	Tag           Tag    `json:"tag"`
	Done          bool   `json:"done"`
}
