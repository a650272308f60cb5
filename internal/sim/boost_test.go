package sim

import (
	"errors"
	"testing"
)

func TestBoostActivateRejectsActive(t *testing.T) {
	var b Boosts
	if err := b.Activate(BoostEnergy, 3); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !b.IsActive(BoostEnergy) || b.DaysLeft(BoostEnergy) != 3 {
		t.Fatalf("energy boost not running after activation")
	}

	err := b.Activate(BoostEnergy, 3)
	var active BoostActiveError
	if !errors.As(err, &active) {
		t.Fatalf("second activation err=%v, want BoostActiveError", err)
	}
	if active.Kind != BoostEnergy || active.DaysLeft != 3 {
		t.Fatalf("BoostActiveError=%+v, want energy with 3 days left", active)
	}
}

func TestBoostTickExpiry(t *testing.T) {
	var b Boosts
	if err := b.Activate(BoostStudy, 2); err != nil {
		t.Fatalf("activate: %v", err)
	}

	if expired := b.Tick(); len(expired) != 0 {
		t.Fatalf("first tick expired %v, want none", expired)
	}
	if b.DaysLeft(BoostStudy) != 1 {
		t.Fatalf("daysLeft=%d, want 1", b.DaysLeft(BoostStudy))
	}

	expired := b.Tick()
	if len(expired) != 1 || expired[0] != BoostStudy {
		t.Fatalf("second tick expired %v, want [study]", expired)
	}
	if b.IsActive(BoostStudy) || b.DaysLeft(BoostStudy) != 0 {
		t.Fatalf("study boost still running after expiry")
	}
}

func TestBoostTickStableOrder(t *testing.T) {
	var b Boosts
	if err := b.Activate(BoostSocial, 1); err != nil {
		t.Fatalf("activate social: %v", err)
	}
	if err := b.Activate(BoostEnergy, 1); err != nil {
		t.Fatalf("activate energy: %v", err)
	}

	expired := b.Tick()
	if len(expired) != 2 || expired[0] != BoostEnergy || expired[1] != BoostSocial {
		t.Fatalf("expired=%v, want [energy social]", expired)
	}
}

func TestBoostTickSkipsInactive(t *testing.T) {
	var b Boosts
	if expired := b.Tick(); expired != nil {
		t.Fatalf("tick on idle timers expired %v, want nil", expired)
	}
}
