package energy

const (
	// InitialLevel is where every new session starts.
	InitialLevel = 80
	// MaxLevel caps the ledger; levels never leave [0, MaxLevel].
	MaxLevel = 100
)

// RestMessage is the fixed reply for the "rest" path at zero energy.
// Purely informational, no state change.
const RestMessage = "了解です。今日はもう閉店しましょう。おやすみなさい🌙"

// Ledger owns the session's energy level. All inputs are clamped, never
// rejected; the level is mutated nowhere else.
type Ledger struct {
	level int
}

func NewLedger() *Ledger {
	return &Ledger{level: InitialLevel}
}

func (l *Ledger) Level() int { return l.level }

// SetLevel clamps v into [0, MaxLevel]. Used for direct slider input.
func (l *Ledger) SetLevel(v int) {
	if v < 0 {
		v = 0
	}
	if v > MaxLevel {
		v = MaxLevel
	}
	l.level = v
}

// Deduct lowers the level by amount, never below zero. Negative amounts
// count as zero.
func (l *Ledger) Deduct(amount int) {
	if amount < 0 {
		amount = 0
	}
	l.level -= amount
	if l.level < 0 {
		l.level = 0
	}
}

// IsDepleted reports whether the session is out of energy.
func (l *Ledger) IsDepleted() bool {
	return l.level <= 0
}
