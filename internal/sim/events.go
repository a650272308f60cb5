package sim

// Snapshot is a read-only copy of the observable state, handed to
// presentation collaborators after every mutation.
type Snapshot struct {
	Stats   Stats
	Clock   Clock
	Aura    int
	Boosts  Boosts
	Profile Profile
	Over    bool
}

// Events carries the presentation callbacks the session emits into.
// Any callback may be nil; the core never reads presentation state back.
type Events struct {
	// StatsChanged fires after every attribute mutation (chart refresh).
	StatsChanged func(Snapshot)
	// Notify carries a human-readable message; fire-and-forget.
	Notify func(string)
	// DayChanged fires on every day rollover with the new day number.
	DayChanged func(day int)
	// BoostExpired fires exactly once per boost at the expiry transition.
	BoostExpired func(kind BoostKind)
	// GameOver fires exactly once when the run terminates.
	GameOver func(ending Ending, final Snapshot)
}

func (e Events) statsChanged(s Snapshot) {
	if e.StatsChanged != nil {
		e.StatsChanged(s)
	}
}

func (e Events) notify(msg string) {
	if e.Notify != nil {
		e.Notify(msg)
	}
}

func (e Events) dayChanged(day int) {
	if e.DayChanged != nil {
		e.DayChanged(day)
	}
}

func (e Events) boostExpired(kind BoostKind) {
	if e.BoostExpired != nil {
		e.BoostExpired(kind)
	}
}

func (e Events) gameOver(ending Ending, final Snapshot) {
	if e.GameOver != nil {
		e.GameOver(ending, final)
	}
}
