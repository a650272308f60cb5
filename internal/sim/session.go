package sim

import (
	"fmt"

	"studentlife/internal/config"
)

// State is the complete persistable simulation state for one playthrough.
type State struct {
	Stats       Stats
	Clock       Clock
	Aura        int
	Boosts      Boosts
	Profile     Profile
	SkippedDays int
}

// NewState returns a fresh playthrough for the given character.
func NewState(bal config.Balance, profile Profile) *State {
	return &State{
		Clock:   NewClock(bal.DayStartHour),
		Aura:    bal.StartingAura,
		Profile: profile,
	}
}

// Session owns one playthrough's state and applies every game rule to
// it. Handlers run one at a time to completion; a day roll triggered
// mid-handler settles (boost tick, termination check) before the handler
// returns.
type Session struct {
	state *State
	bal   config.Balance
	diff  Difficulty
	ev    Events

	endNotified bool
}

// NewSession wraps an existing state. A state loaded already past the
// final day will not re-fire the GameOver event.
func NewSession(state *State, bal config.Balance, diff Difficulty, ev Events) *Session {
	if !diff.IsValid() {
		diff = DefaultDifficulty
	}
	s := &Session{state: state, bal: bal, diff: diff, ev: ev}
	s.endNotified = s.Over()
	return s
}

// State exposes the underlying state for persistence.
func (s *Session) State() *State { return s.state }

// Difficulty returns the difficulty the session runs at.
func (s *Session) Difficulty() Difficulty { return s.diff }

// Balance returns the balance configuration in effect.
func (s *Session) Balance() config.Balance { return s.bal }

// Over reports whether the run has passed the final day.
func (s *Session) Over() bool {
	return s.state.Clock.Day > s.bal.FinalDay
}

// Ending classifies the current vector. Meaningful once Over() is true;
// classification is pure, so re-reading it is safe.
func (s *Session) Ending() Ending {
	return Classify(s.state.Stats)
}

// Snapshot returns a read-only copy of the observable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Stats:   s.state.Stats,
		Clock:   s.state.Clock,
		Aura:    s.state.Aura,
		Boosts:  s.state.Boosts,
		Profile: s.state.Profile,
		Over:    s.Over(),
	}
}

// ActivityResult reports what one resolved activity did.
type ActivityResult struct {
	Activity    Activity
	Amount      float64
	Deltas      []StatDelta
	AuraAwarded int
	AuraTotal   int
	DayRolled   bool
	Clock       Clock
	Comments    []string
	GameOver    bool
	Ending      Ending
}

// Do resolves one activity: eligibility, then deltas, then clock, then
// aura. Eligibility failure mutates nothing.
func (s *Session) Do(id ActivityID) (*ActivityResult, error) {
	if s.Over() {
		return nil, ErrGameOver
	}
	act, ok := ActivityByID(id)
	if !ok {
		return nil, fmt.Errorf("unknown activity: %s", id)
	}

	if req := act.Requires; req != nil {
		have := s.state.Stats.Get(req.Field)
		if have < req.Min {
			return nil, NotEligibleError{Activity: act.ID, Field: req.Field, Need: req.Min, Have: have}
		}
	}

	amount := s.difficultyMultiplier() * act.Base
	if act.Boost != "" && s.state.Boosts.IsActive(act.Boost) {
		amount *= s.boostMultiplier(act.Boost)
	}

	deltas := make([]StatDelta, 0, len(act.Scaled)+len(act.Flat))
	for _, sd := range act.Scaled {
		deltas = append(deltas, StatDelta{Field: sd.Field, Amount: sd.Coef * amount})
	}
	deltas = append(deltas, act.Flat...)

	s.state.Stats.Apply(deltas)
	s.ev.statsChanged(s.Snapshot())

	rolled := s.advance(act.Minutes)

	s.state.Aura += act.Aura

	primary := deltas[0]
	s.ev.notify(fmt.Sprintf("%s %s +%.1f", act.Message, primary.Field.Label(), primary.Amount))
	comments := FriendComments(act.ID)
	for _, c := range comments {
		s.ev.notify(c)
	}
	s.ev.notify(fmt.Sprintf("+%d Aura Points!", act.Aura))

	res := &ActivityResult{
		Activity:    act,
		Amount:      amount,
		Deltas:      deltas,
		AuraAwarded: act.Aura,
		AuraTotal:   s.state.Aura,
		DayRolled:   rolled,
		Clock:       s.state.Clock,
		Comments:    comments,
		GameOver:    s.Over(),
	}
	if res.GameOver {
		res.Ending = s.Ending()
	}
	return res, nil
}

// PurchaseResult reports what one successful purchase did.
type PurchaseResult struct {
	Reward    RewardKind
	Cost      int
	AuraLeft  int
	BoostDays int
	DayRolled bool
	Clock     Clock
	GameOver  bool
	Ending    Ending
}

// Purchase spends aura on a reward. On any failure nothing is mutated.
func (s *Session) Purchase(r RewardKind) (*PurchaseResult, error) {
	if s.Over() {
		return nil, ErrGameOver
	}
	if !r.IsValid() {
		return nil, fmt.Errorf("unknown reward: %s", r)
	}

	// Already-active boosts are rejected before any charge.
	if kind := r.Boost(); kind != "" && s.state.Boosts.IsActive(kind) {
		return nil, BoostActiveError{Kind: kind, DaysLeft: s.state.Boosts.DaysLeft(kind)}
	}

	cost := s.rewardCost(r)
	if s.state.Aura < cost {
		return nil, InsufficientAuraError{Reward: r, Cost: cost, Have: s.state.Aura}
	}
	s.state.Aura -= cost

	res := &PurchaseResult{Reward: r, Cost: cost, AuraLeft: s.state.Aura}

	switch r {
	case RewardSkipDay:
		s.state.SkippedDays++
		s.state.Clock.Roll(s.bal.DayStartHour)
		s.afterRoll()
		res.DayRolled = true
		s.ev.notify("Skipped to the next day!")
	case RewardEnergyBoost:
		days := s.bal.EnergyBoostDays
		_ = s.state.Boosts.Activate(BoostEnergy, days)
		res.BoostDays = days
		s.ev.notify(fmt.Sprintf("Energy Boost activated! Fitness activities will be more effective for %d days.", days))
	case RewardStudyBonus:
		days := s.bal.StudyBonusDays
		_ = s.state.Boosts.Activate(BoostStudy, days)
		res.BoostDays = days
		s.ev.notify(fmt.Sprintf("Study Bonus activated! Academic activities will give %.0fx points for %d days.", s.bal.StudyBonusMultiplier, days))
	case RewardSocialBoost:
		days := s.bal.SocialBoostDays
		_ = s.state.Boosts.Activate(BoostSocial, days)
		res.BoostDays = days
		s.ev.notify(fmt.Sprintf("Social Boost activated! Social activities will be more effective for %d days.", days))
	case RewardMentalRefresh:
		s.state.Stats.Apply([]StatDelta{{FieldMentalHealth, s.bal.MentalRefreshGain}})
		s.ev.statsChanged(s.Snapshot())
		s.ev.notify(fmt.Sprintf("Mental Refresh activated! +%.0f to Mental Health.", s.bal.MentalRefreshGain))
	}

	res.Clock = s.state.Clock
	res.GameOver = s.Over()
	if res.GameOver {
		res.Ending = s.Ending()
	}
	return res, nil
}

// RewardCost returns the aura cost of a reward.
func (s *Session) RewardCost(r RewardKind) int { return s.rewardCost(r) }

// BoostDuration returns the initial duration for a boost purchase.
func (s *Session) BoostDuration(kind BoostKind) int {
	switch kind {
	case BoostEnergy:
		return s.bal.EnergyBoostDays
	case BoostStudy:
		return s.bal.StudyBonusDays
	default:
		return s.bal.SocialBoostDays
	}
}

// advance moves the clock and settles any day roll before returning.
func (s *Session) advance(mins int) bool {
	rolled := s.state.Clock.Advance(mins, s.bal.DayStartHour, s.bal.DayEndHour)
	if rolled {
		s.afterRoll()
	}
	return rolled
}

// afterRoll runs the day-tick pipeline: boost timers first, then the
// day-changed signal, then the termination check.
func (s *Session) afterRoll() {
	for _, kind := range s.state.Boosts.Tick() {
		s.ev.boostExpired(kind)
		s.ev.notify(kind.Label() + " has worn off!")
	}
	s.ev.dayChanged(s.state.Clock.Day)
	if s.Over() && !s.endNotified {
		s.endNotified = true
		s.ev.gameOver(s.Ending(), s.Snapshot())
	}
}

func (s *Session) difficultyMultiplier() float64 {
	switch s.diff {
	case DifficultyEasy:
		return s.bal.EasyMultiplier
	case DifficultyHard:
		return s.bal.HardMultiplier
	default:
		return s.bal.MediumMultiplier
	}
}

func (s *Session) boostMultiplier(kind BoostKind) float64 {
	switch kind {
	case BoostEnergy:
		return s.bal.EnergyBoostMultiplier
	case BoostStudy:
		return s.bal.StudyBonusMultiplier
	default:
		return s.bal.SocialBoostMultiplier
	}
}

func (s *Session) rewardCost(r RewardKind) int {
	switch r {
	case RewardSkipDay:
		return s.bal.SkipDayCost
	case RewardEnergyBoost:
		return s.bal.EnergyBoostCost
	case RewardStudyBonus:
		return s.bal.StudyBonusCost
	case RewardSocialBoost:
		return s.bal.SocialBoostCost
	default:
		return s.bal.MentalRefreshCost
	}
}

// Label returns the display name for a boost kind.
func (k BoostKind) Label() string {
	switch k {
	case BoostEnergy:
		return "Energy Boost"
	case BoostStudy:
		return "Study Bonus"
	case BoostSocial:
		return "Social Boost"
	default:
		return string(k)
	}
}
