package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds gameplay balance configuration. Defaults reproduce the
// shipped game; a YAML file can override individual values for tuning.
type Balance struct {
	// Run length and time of day
	FinalDay     int `yaml:"final_day" json:"final_day"`
	DayStartHour int `yaml:"day_start_hour" json:"day_start_hour"`
	DayEndHour   int `yaml:"day_end_hour" json:"day_end_hour"`

	// Aura economy
	StartingAura int `yaml:"starting_aura" json:"starting_aura"`

	// Difficulty multipliers
	EasyMultiplier   float64 `yaml:"easy_multiplier" json:"easy_multiplier"`
	MediumMultiplier float64 `yaml:"medium_multiplier" json:"medium_multiplier"`
	HardMultiplier   float64 `yaml:"hard_multiplier" json:"hard_multiplier"`

	// Boost effect strength
	EnergyBoostMultiplier float64 `yaml:"energy_boost_multiplier" json:"energy_boost_multiplier"`
	StudyBonusMultiplier  float64 `yaml:"study_bonus_multiplier" json:"study_bonus_multiplier"`
	SocialBoostMultiplier float64 `yaml:"social_boost_multiplier" json:"social_boost_multiplier"`

	// Boost durations (days)
	EnergyBoostDays int `yaml:"energy_boost_days" json:"energy_boost_days"`
	StudyBonusDays  int `yaml:"study_bonus_days" json:"study_bonus_days"`
	SocialBoostDays int `yaml:"social_boost_days" json:"social_boost_days"`

	// Reward costs (aura)
	SkipDayCost       int `yaml:"skip_day_cost" json:"skip_day_cost"`
	EnergyBoostCost   int `yaml:"energy_boost_cost" json:"energy_boost_cost"`
	StudyBonusCost    int `yaml:"study_bonus_cost" json:"study_bonus_cost"`
	SocialBoostCost   int `yaml:"social_boost_cost" json:"social_boost_cost"`
	MentalRefreshCost int `yaml:"mental_refresh_cost" json:"mental_refresh_cost"`

	// Mental refresh instant effect
	MentalRefreshGain float64 `yaml:"mental_refresh_gain" json:"mental_refresh_gain"`
}

// DefaultBalance returns the shipped balance configuration.
func DefaultBalance() Balance {
	return Balance{
		FinalDay:     7,
		DayStartHour: 8,
		DayEndHour:   22,

		StartingAura: 100,

		EasyMultiplier:   1.2,
		MediumMultiplier: 1.0,
		HardMultiplier:   0.8,

		EnergyBoostMultiplier: 1.5,
		StudyBonusMultiplier:  2.0,
		SocialBoostMultiplier: 1.5,

		EnergyBoostDays: 3,
		StudyBonusDays:  2,
		SocialBoostDays: 4,

		SkipDayCost:       20,
		EnergyBoostCost:   15,
		StudyBonusCost:    25,
		SocialBoostCost:   18,
		MentalRefreshCost: 30,

		MentalRefreshGain: 5,
	}
}

// LoadBalance returns the default balance overlaid with the YAML file at
// path, if any. An empty path or a missing file yields the defaults.
func LoadBalance(path string) (Balance, error) {
	bal := DefaultBalance()
	if path == "" {
		return bal, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return bal, nil
		}
		return bal, fmt.Errorf("read balance file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &bal); err != nil {
		return DefaultBalance(), fmt.Errorf("parse balance file: %w", err)
	}
	return bal, nil
}
