package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"studentlife/internal/sim"
)

// legacyAura is the balance applied to saves written before the aura
// system existed.
const legacyAura = 100

// saveRecord is the wire shape of a persisted playthrough. Field names
// match the save format of earlier releases so old records keep loading.
// Optional fields are pointers; absence triggers defaulting on decode.
type saveRecord struct {
	Stats  *sim.Stats `json:"stats"`
	Day    *int       `json:"day"`
	Hour   *int       `json:"hour"`
	Minute *int       `json:"minute"`

	SkippedDays  int    `json:"skippedDays"`
	PlayerName   string `json:"playerName"`
	PlayerGender string `json:"playerGender"`
	PlayerMajor  string `json:"playerMajor"`

	AuraPoints *int `json:"auraPoints,omitempty"`

	EnergyBoostActive *bool `json:"energyBoostActive,omitempty"`
	StudyBonusActive  *bool `json:"studyBonusActive,omitempty"`
	SocialBoostActive *bool `json:"socialBoostActive,omitempty"`

	EnergyBoostTimeLeft *int `json:"energyBoostTimeLeft,omitempty"`
	StudyBonusTimeLeft  *int `json:"studyBonusTimeLeft,omitempty"`
	SocialBoostTimeLeft *int `json:"socialBoostTimeLeft,omitempty"`
}

// EncodeSave serializes a playthrough. Every field is present on write.
func EncodeSave(st *sim.State) (string, error) {
	stats := st.Stats
	day, hour, minute := st.Clock.Day, st.Clock.Hour, st.Clock.Minute
	aura := st.Aura
	rec := saveRecord{
		Stats:  &stats,
		Day:    &day,
		Hour:   &hour,
		Minute: &minute,

		SkippedDays:  st.SkippedDays,
		PlayerName:   st.Profile.Name,
		PlayerGender: string(st.Profile.Gender),
		PlayerMajor:  st.Profile.Major,

		AuraPoints: &aura,

		EnergyBoostActive: &st.Boosts.Energy.Active,
		StudyBonusActive:  &st.Boosts.Study.Active,
		SocialBoostActive: &st.Boosts.Social.Active,

		EnergyBoostTimeLeft: &st.Boosts.Energy.DaysLeft,
		StudyBonusTimeLeft:  &st.Boosts.Study.DaysLeft,
		SocialBoostTimeLeft: &st.Boosts.Social.DaysLeft,
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode save: %w", err)
	}
	return string(raw), nil
}

// DecodeSave deserializes a playthrough. Aura and boost fields missing
// from old saves default to 100 points and inactive timers. A malformed
// record returns an error without producing a partial state.
func DecodeSave(raw string) (*sim.State, error) {
	var rec saveRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}
	if rec.Stats == nil || rec.Day == nil || rec.Hour == nil || rec.Minute == nil {
		return nil, fmt.Errorf("decode save: record is missing identity fields")
	}
	if *rec.Day < 1 {
		return nil, fmt.Errorf("decode save: invalid day %d", *rec.Day)
	}

	st := &sim.State{
		Stats:       *rec.Stats,
		Clock:       sim.Clock{Day: *rec.Day, Hour: *rec.Hour, Minute: *rec.Minute},
		SkippedDays: rec.SkippedDays,
		Profile:     sim.NewProfile(rec.PlayerName, sim.ParseGender(rec.PlayerGender), rec.PlayerMajor),
		Aura:        legacyAura,
	}
	if rec.AuraPoints != nil {
		st.Aura = *rec.AuraPoints
	}
	if st.Aura < 0 {
		st.Aura = 0
	}

	st.Boosts.Energy = decodeTimer(rec.EnergyBoostActive, rec.EnergyBoostTimeLeft)
	st.Boosts.Study = decodeTimer(rec.StudyBonusActive, rec.StudyBonusTimeLeft)
	st.Boosts.Social = decodeTimer(rec.SocialBoostActive, rec.SocialBoostTimeLeft)

	// Re-establish the invariants: clamped stats, active iff time left.
	st.Stats.Apply(nil)
	return st, nil
}

func decodeTimer(active *bool, daysLeft *int) sim.BoostTimer {
	t := sim.BoostTimer{}
	if active != nil {
		t.Active = *active
	}
	if daysLeft != nil {
		t.DaysLeft = *daysLeft
	}
	if t.DaysLeft <= 0 {
		t.Active = false
		t.DaysLeft = 0
	}
	if !t.Active {
		t.DaysLeft = 0
	}
	return t
}

// LoadGame reads and decodes the save. The boolean reports whether a
// save exists at all.
func LoadGame(ctx context.Context, s *Store) (*sim.State, bool, error) {
	raw, ok, err := s.Get(ctx, SaveKey)
	if err != nil || !ok {
		return nil, false, err
	}
	st, err := DecodeSave(raw)
	if err != nil {
		return nil, true, err
	}
	return st, true, nil
}

// SaveGame encodes and writes the save as one atomic store write.
func SaveGame(ctx context.Context, s *Store, st *sim.State) error {
	raw, err := EncodeSave(st)
	if err != nil {
		return err
	}
	return s.Set(ctx, SaveKey, raw)
}
