package sim

import (
	"fmt"
	"strings"
)

// ParseActivity parses user input to an ActivityID. Common aliases are
// accepted.
func ParseActivity(input string) (ActivityID, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "gym", "workout":
		return ActivityGym, nil
	case "study":
		return ActivityStudy, nil
	case "socialize", "social", "hangout":
		return ActivitySocialize, nil
	case "sports", "sports-event":
		return ActivitySports, nil
	case "exam", "test":
		return ActivityExam, nil
	case "party":
		return ActivityParty, nil
	case "meditate", "meditation":
		return ActivityMeditate, nil
	case "sleep", "extra-sleep", "nap":
		return ActivitySleep, nil
	case "therapy":
		return ActivityTherapy, nil
	case "work", "shift", "work-shift":
		return ActivityWork, nil
	case "freelance":
		return ActivityFreelance, nil
	default:
		return "", fmt.Errorf("unknown activity: %q", input)
	}
}

// ParseReward parses user input to a RewardKind.
func ParseReward(input string) (RewardKind, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "skip-day", "skip", "skipday":
		return RewardSkipDay, nil
	case "energy-boost", "energy":
		return RewardEnergyBoost, nil
	case "study-bonus", "study":
		return RewardStudyBonus, nil
	case "social-boost", "social":
		return RewardSocialBoost, nil
	case "mental-refresh", "refresh", "mental":
		return RewardMentalRefresh, nil
	default:
		return "", fmt.Errorf("unknown reward: %q", input)
	}
}

// ParseDifficulty parses user input to a Difficulty.
// Empty or unrecognized input falls back to DefaultDifficulty.
func ParseDifficulty(input string) Difficulty {
	d := Difficulty(strings.TrimSpace(strings.ToLower(input)))
	if d.IsValid() {
		return d
	}
	return DefaultDifficulty
}

// ParseGender parses user input to a Gender, defaulting to GenderOther.
func ParseGender(input string) Gender {
	g := Gender(strings.TrimSpace(strings.ToLower(input)))
	if g.IsValid() {
		return g
	}
	return DefaultGender
}
