package sim

// BoostTimer is one timed multiplier: active exactly while DaysLeft > 0
// outside of the decrement step itself.
type BoostTimer struct {
	Active   bool `json:"active"`
	DaysLeft int  `json:"daysLeft"`
}

// Boosts holds the three purchasable boost timers. A fixed struct rather
// than a map keeps the set of kinds closed.
type Boosts struct {
	Energy BoostTimer `json:"energy"`
	Study  BoostTimer `json:"study"`
	Social BoostTimer `json:"social"`
}

func (b *Boosts) timer(kind BoostKind) *BoostTimer {
	switch kind {
	case BoostEnergy:
		return &b.Energy
	case BoostStudy:
		return &b.Study
	default:
		return &b.Social
	}
}

// IsActive reports whether the boost is currently running.
func (b *Boosts) IsActive(kind BoostKind) bool {
	return b.timer(kind).Active
}

// DaysLeft returns the remaining whole days for a boost.
func (b *Boosts) DaysLeft(kind BoostKind) int {
	return b.timer(kind).DaysLeft
}

// Activate starts a boost for durationDays. An already-active boost is
// rejected so callers never charge aura for it twice.
func (b *Boosts) Activate(kind BoostKind, durationDays int) error {
	t := b.timer(kind)
	if t.Active {
		return BoostActiveError{Kind: kind, DaysLeft: t.DaysLeft}
	}
	t.Active = true
	t.DaysLeft = durationDays
	return nil
}

// Tick decrements every active timer by one day and returns the kinds
// that expired on this tick, in stable order. Invoked exactly once per
// day rollover.
func (b *Boosts) Tick() []BoostKind {
	var expired []BoostKind
	for _, kind := range BoostKinds {
		t := b.timer(kind)
		if !t.Active {
			continue
		}
		t.DaysLeft--
		if t.DaysLeft <= 0 {
			t.Active = false
			t.DaysLeft = 0
			expired = append(expired, kind)
		}
	}
	return expired
}
