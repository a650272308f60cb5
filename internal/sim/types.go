package sim

// Field identifies one of the five player attributes.
type Field string

const (
	FieldFitness      Field = "fitness"
	FieldAcademics    Field = "academics"
	FieldSocial       Field = "social"
	FieldMentalHealth Field = "mentalHealth"
	FieldFinances     Field = "finances"
)

// Fields lists every attribute in display (and tie-break) order.
var Fields = []Field{FieldFitness, FieldAcademics, FieldSocial, FieldMentalHealth, FieldFinances}

// Label returns the display name for a field.
func (f Field) Label() string {
	switch f {
	case FieldFitness:
		return "Fitness"
	case FieldAcademics:
		return "Academics"
	case FieldSocial:
		return "Social"
	case FieldMentalHealth:
		return "Mental Health"
	case FieldFinances:
		return "Finances"
	default:
		return string(f)
	}
}

func (f Field) IsValid() bool {
	switch f {
	case FieldFitness, FieldAcademics, FieldSocial, FieldMentalHealth, FieldFinances:
		return true
	default:
		return false
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when user input is missing/invalid.
const DefaultDifficulty Difficulty = DifficultyMedium

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// BoostKind identifies a purchasable timed multiplier.
type BoostKind string

const (
	BoostEnergy BoostKind = "energy"
	BoostStudy  BoostKind = "study"
	BoostSocial BoostKind = "social"
)

// BoostKinds lists every boost in a stable order.
var BoostKinds = []BoostKind{BoostEnergy, BoostStudy, BoostSocial}

func (k BoostKind) IsValid() bool {
	switch k {
	case BoostEnergy, BoostStudy, BoostSocial:
		return true
	default:
		return false
	}
}

// RewardKind is a closed enumeration of aura purchases.
type RewardKind string

const (
	RewardSkipDay       RewardKind = "skip-day"
	RewardEnergyBoost   RewardKind = "energy-boost"
	RewardStudyBonus    RewardKind = "study-bonus"
	RewardSocialBoost   RewardKind = "social-boost"
	RewardMentalRefresh RewardKind = "mental-refresh"
)

// RewardKinds lists every reward in shop order.
var RewardKinds = []RewardKind{RewardSkipDay, RewardEnergyBoost, RewardStudyBonus, RewardSocialBoost, RewardMentalRefresh}

func (r RewardKind) IsValid() bool {
	switch r {
	case RewardSkipDay, RewardEnergyBoost, RewardStudyBonus, RewardSocialBoost, RewardMentalRefresh:
		return true
	default:
		return false
	}
}

// Boost returns the boost kind a reward activates, or "" for instant rewards.
func (r RewardKind) Boost() BoostKind {
	switch r {
	case RewardEnergyBoost:
		return BoostEnergy
	case RewardStudyBonus:
		return BoostStudy
	case RewardSocialBoost:
		return BoostSocial
	default:
		return ""
	}
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

const DefaultGender Gender = GenderOther

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Profile is the immutable character sheet chosen at game start.
type Profile struct {
	Name   string
	Gender Gender
	Major  string
}

const (
	DefaultPlayerName = "Player"
	DefaultMajor      = "engineering"
)

// NewProfile fills defaults for missing fields.
func NewProfile(name string, gender Gender, major string) Profile {
	if name == "" {
		name = DefaultPlayerName
	}
	if !gender.IsValid() {
		gender = DefaultGender
	}
	if major == "" {
		major = DefaultMajor
	}
	return Profile{Name: name, Gender: gender, Major: major}
}
