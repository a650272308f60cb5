package sim

import (
	"errors"
	"math"
	"testing"

	"studentlife/internal/config"
)

type eventLog struct {
	notes        []string
	days         []int
	expired      []BoostKind
	gameOvers    []Ending
	statsChanges int
}

func (l *eventLog) events() Events {
	return Events{
		StatsChanged: func(Snapshot) { l.statsChanges++ },
		Notify:       func(msg string) { l.notes = append(l.notes, msg) },
		DayChanged:   func(day int) { l.days = append(l.days, day) },
		BoostExpired: func(kind BoostKind) { l.expired = append(l.expired, kind) },
		GameOver:     func(e Ending, _ Snapshot) { l.gameOvers = append(l.gameOvers, e) },
	}
}

func (l *eventLog) countNote(msg string) int {
	n := 0
	for _, note := range l.notes {
		if note == msg {
			n++
		}
	}
	return n
}

func newTestSession(diff Difficulty, ev Events) *Session {
	bal := config.DefaultBalance()
	st := NewState(bal, NewProfile("Test", GenderOther, "engineering"))
	return NewSession(st, bal, diff, ev)
}

func approx(t *testing.T, got, want float64, label string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s=%v, want %v", label, got, want)
	}
}

func TestDoGymOnMedium(t *testing.T) {
	log := &eventLog{}
	ses := newTestSession(DifficultyMedium, log.events())

	res, err := ses.Do(ActivityGym)
	if err != nil {
		t.Fatalf("Do(gym): %v", err)
	}
	approx(t, res.Amount, 0.8, "amount")

	snap := ses.Snapshot()
	approx(t, snap.Stats.Fitness, 0.8, "fitness")
	approx(t, snap.Stats.MentalHealth, 0.4, "mentalHealth")
	if snap.Aura != 102 {
		t.Fatalf("aura=%d, want 102", snap.Aura)
	}
	if snap.Clock.Day != 1 || snap.Clock.Hour != 9 || snap.Clock.Minute != 0 {
		t.Fatalf("clock=%s, want Day 1 09:00", snap.Clock)
	}
	if res.DayRolled || res.GameOver {
		t.Fatalf("unexpected rollover or game over: %+v", res)
	}
	if res.AuraAwarded != 2 || res.AuraTotal != 102 {
		t.Fatalf("aura result=%d/%d, want 2/102", res.AuraAwarded, res.AuraTotal)
	}
	if log.statsChanges != 1 {
		t.Fatalf("statsChanges=%d, want 1", log.statsChanges)
	}
	if len(log.notes) == 0 || log.notes[0] != "You worked out at the gym! Fitness +0.8" {
		t.Fatalf("notes=%v, want leading gym message", log.notes)
	}
	if log.countNote("+2 Aura Points!") != 1 {
		t.Fatalf("notes=%v, want one aura note", log.notes)
	}
}

func TestDoDifficultyMultipliers(t *testing.T) {
	for diff, want := range map[Difficulty]float64{
		DifficultyEasy:   1.2 * 0.8,
		DifficultyMedium: 0.8,
		DifficultyHard:   0.8 * 0.8,
	} {
		ses := newTestSession(diff, Events{})
		res, err := ses.Do(ActivityGym)
		if err != nil {
			t.Fatalf("Do(gym) on %s: %v", diff, err)
		}
		approx(t, res.Amount, want, string(diff)+" amount")
	}
}

func TestStudyBonusDoublesAcademics(t *testing.T) {
	log := &eventLog{}
	ses := newTestSession(DifficultyMedium, log.events())

	buy, err := ses.Purchase(RewardStudyBonus)
	if err != nil {
		t.Fatalf("Purchase(study-bonus): %v", err)
	}
	if buy.Cost != 25 || buy.AuraLeft != 75 || buy.BoostDays != 2 {
		t.Fatalf("purchase=%+v, want cost 25, 75 left, 2 days", buy)
	}

	res, err := ses.Do(ActivityStudy)
	if err != nil {
		t.Fatalf("Do(study): %v", err)
	}
	approx(t, res.Amount, 1.4, "boosted amount")
	approx(t, ses.Snapshot().Stats.Academics, 1.4, "academics")
	approx(t, ses.Snapshot().Stats.MentalHealth, 0, "mentalHealth clamped at floor")

	// The bonus only touches activities that carry the study boost.
	gym, err := ses.Do(ActivityGym)
	if err != nil {
		t.Fatalf("Do(gym): %v", err)
	}
	approx(t, gym.Amount, 0.8, "gym amount with study bonus active")
}

func TestDoEligibilityFailureMutatesNothing(t *testing.T) {
	log := &eventLog{}
	ses := newTestSession(DifficultyMedium, log.events())
	before := ses.Snapshot()

	_, err := ses.Do(ActivitySports)
	var gate NotEligibleError
	if !errors.As(err, &gate) {
		t.Fatalf("Do(sports) err=%v, want NotEligibleError", err)
	}
	if gate.Activity != ActivitySports || gate.Field != FieldFitness || gate.Need != 3 || gate.Have != 0 {
		t.Fatalf("NotEligibleError=%+v, want sports fitness 3/0", gate)
	}

	if after := ses.Snapshot(); after != before {
		t.Fatalf("state changed on ineligible activity: %+v -> %+v", before, after)
	}
	if log.statsChanges != 0 || len(log.notes) != 0 {
		t.Fatalf("events fired on ineligible activity")
	}
}

func TestEventFriendComments(t *testing.T) {
	log := &eventLog{}
	ses := newTestSession(DifficultyMedium, log.events())
	ses.State().Stats.Social = 5

	res, err := ses.Do(ActivityParty)
	if err != nil {
		t.Fatalf("Do(party): %v", err)
	}
	if len(res.Comments) != 5 {
		t.Fatalf("comments=%d, want 5", len(res.Comments))
	}
	if res.Comments[0] != "Leenex: That was fun!" {
		t.Fatalf("first comment=%q", res.Comments[0])
	}
	if log.countNote(res.Comments[0]) != 1 {
		t.Fatalf("friend comment missing from notifications")
	}
}

func TestPurchaseInsufficientAura(t *testing.T) {
	log := &eventLog{}
	ses := newTestSession(DifficultyMedium, log.events())
	ses.State().Aura = 19
	before := ses.Snapshot()

	_, err := ses.Purchase(RewardSkipDay)
	var short InsufficientAuraError
	if !errors.As(err, &short) {
		t.Fatalf("Purchase(skip-day) err=%v, want InsufficientAuraError", err)
	}
	if short.Reward != RewardSkipDay || short.Cost != 20 || short.Have != 19 {
		t.Fatalf("InsufficientAuraError=%+v, want skip-day 20/19", short)
	}

	if after := ses.Snapshot(); after != before {
		t.Fatalf("state changed on rejected purchase: %+v -> %+v", before, after)
	}
	if ses.State().SkippedDays != 0 {
		t.Fatalf("skippedDays=%d, want 0", ses.State().SkippedDays)
	}
	if len(log.days) != 0 {
		t.Fatalf("day events fired on rejected purchase: %v", log.days)
	}
}

func TestPurchaseActiveBoostNotCharged(t *testing.T) {
	ses := newTestSession(DifficultyMedium, Events{})

	if _, err := ses.Purchase(RewardEnergyBoost); err != nil {
		t.Fatalf("Purchase(energy-boost): %v", err)
	}
	if aura := ses.Snapshot().Aura; aura != 85 {
		t.Fatalf("aura=%d, want 85", aura)
	}

	_, err := ses.Purchase(RewardEnergyBoost)
	var active BoostActiveError
	if !errors.As(err, &active) {
		t.Fatalf("second purchase err=%v, want BoostActiveError", err)
	}
	if aura := ses.Snapshot().Aura; aura != 85 {
		t.Fatalf("aura=%d after rejected re-purchase, want 85", aura)
	}
	if days := ses.State().Boosts.DaysLeft(BoostEnergy); days != 3 {
		t.Fatalf("daysLeft=%d after rejected re-purchase, want 3", days)
	}
}

func TestSkipDayTicksBoostsOnce(t *testing.T) {
	log := &eventLog{}
	ses := newTestSession(DifficultyMedium, log.events())

	if _, err := ses.Purchase(RewardEnergyBoost); err != nil {
		t.Fatalf("Purchase(energy-boost): %v", err)
	}
	for i := 0; i < 3; i++ {
		res, err := ses.Purchase(RewardSkipDay)
		if err != nil {
			t.Fatalf("Purchase(skip-day) #%d: %v", i+1, err)
		}
		if !res.DayRolled {
			t.Fatalf("skip #%d did not roll the day", i+1)
		}
	}

	snap := ses.Snapshot()
	if snap.Clock.Day != 4 {
		t.Fatalf("day=%d, want 4", snap.Clock.Day)
	}
	if snap.Aura != 25 {
		t.Fatalf("aura=%d, want 25", snap.Aura)
	}
	if ses.State().SkippedDays != 3 {
		t.Fatalf("skippedDays=%d, want 3", ses.State().SkippedDays)
	}
	if len(log.expired) != 1 || log.expired[0] != BoostEnergy {
		t.Fatalf("expired=%v, want exactly one energy expiry", log.expired)
	}
	if n := log.countNote("Energy Boost has worn off!"); n != 1 {
		t.Fatalf("worn-off notes=%d, want 1", n)
	}
	if len(log.days) != 3 || log.days[0] != 2 || log.days[2] != 4 {
		t.Fatalf("day events=%v, want [2 3 4]", log.days)
	}
}

func TestTherapyFlatFinancesCost(t *testing.T) {
	ses := newTestSession(DifficultyEasy, Events{})
	ses.State().Stats.Finances = 5

	res, err := ses.Do(ActivityTherapy)
	if err != nil {
		t.Fatalf("Do(therapy): %v", err)
	}
	approx(t, res.Amount, 1.2, "amount")

	snap := ses.Snapshot()
	approx(t, snap.Stats.MentalHealth, 1.2, "mentalHealth")
	// The finances cost is flat regardless of difficulty.
	approx(t, snap.Stats.Finances, 3, "finances")
}

func TestMentalRefreshPurchase(t *testing.T) {
	ses := newTestSession(DifficultyMedium, Events{})
	ses.State().Stats.MentalHealth = 18

	res, err := ses.Purchase(RewardMentalRefresh)
	if err != nil {
		t.Fatalf("Purchase(mental-refresh): %v", err)
	}
	if res.Cost != 30 || res.AuraLeft != 70 {
		t.Fatalf("purchase=%+v, want cost 30, 70 left", res)
	}
	approx(t, ses.Snapshot().Stats.MentalHealth, 20, "mentalHealth clamped at ceiling")
	if res.DayRolled {
		t.Fatalf("mental refresh should not touch the clock")
	}
}

func TestTerminationFiresClassifierOnce(t *testing.T) {
	log := &eventLog{}
	ses := newTestSession(DifficultyMedium, log.events())
	ses.State().Clock.Day = 7
	ses.State().Stats = Stats{Fitness: 2, Academics: 16, Social: 4, MentalHealth: 15, Finances: 3}

	res, err := ses.Purchase(RewardSkipDay)
	if err != nil {
		t.Fatalf("Purchase(skip-day): %v", err)
	}
	if !res.GameOver || res.Ending != EndingScholar {
		t.Fatalf("result=%+v, want game over with Scholar ending", res)
	}
	if len(log.gameOvers) != 1 || log.gameOvers[0] != EndingScholar {
		t.Fatalf("gameOvers=%v, want [Scholar]", log.gameOvers)
	}

	if _, err := ses.Do(ActivityGym); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Do after termination err=%v, want ErrGameOver", err)
	}
	if _, err := ses.Purchase(RewardMentalRefresh); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Purchase after termination err=%v, want ErrGameOver", err)
	}
	if len(log.gameOvers) != 1 {
		t.Fatalf("gameOvers=%v, want a single firing", log.gameOvers)
	}
}

func TestLoadedFinishedRunDoesNotRefire(t *testing.T) {
	log := &eventLog{}
	bal := config.DefaultBalance()
	st := NewState(bal, NewProfile("Test", GenderOther, "engineering"))
	st.Clock.Day = 8
	st.Stats = Stats{Fitness: 15, Academics: 5, Social: 4, MentalHealth: 5, Finances: 3}

	ses := NewSession(st, bal, DifficultyMedium, log.events())
	if !ses.Over() {
		t.Fatalf("expected loaded run to be over")
	}
	if ses.Ending() != EndingAthlete {
		t.Fatalf("ending=%q, want Athlete", ses.Ending())
	}
	if _, err := ses.Do(ActivityGym); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Do err=%v, want ErrGameOver", err)
	}
	if len(log.gameOvers) != 0 {
		t.Fatalf("gameOvers=%v, want none on load", log.gameOvers)
	}
}

func TestActivityRolloverStillAwardsAura(t *testing.T) {
	log := &eventLog{}
	ses := newTestSession(DifficultyMedium, log.events())
	ses.State().Clock.Hour = 21

	res, err := ses.Do(ActivityGym)
	if err != nil {
		t.Fatalf("Do(gym): %v", err)
	}
	if !res.DayRolled {
		t.Fatalf("expected rollover past the end of day")
	}
	snap := ses.Snapshot()
	if snap.Clock.Day != 2 || snap.Clock.Hour != 8 {
		t.Fatalf("clock=%s, want Day 2 08:00", snap.Clock)
	}
	if snap.Aura != 102 {
		t.Fatalf("aura=%d, want awarded despite rollover", snap.Aura)
	}
	if len(log.days) != 1 || log.days[0] != 2 {
		t.Fatalf("day events=%v, want [2]", log.days)
	}
}

func TestNewSessionInvalidDifficultyFallsBack(t *testing.T) {
	bal := config.DefaultBalance()
	st := NewState(bal, NewProfile("", "", ""))
	ses := NewSession(st, bal, Difficulty("brutal"), Events{})
	if ses.Difficulty() != DefaultDifficulty {
		t.Fatalf("difficulty=%q, want %q", ses.Difficulty(), DefaultDifficulty)
	}
}
