package sim

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned by mutating operations once the run has ended.
var ErrGameOver = errors.New("the term is over")

// NotEligibleError indicates an event's attribute precondition is unmet.
// Nothing was mutated; this is shown to the player, not persisted.
type NotEligibleError struct {
	Activity ActivityID
	Field    Field
	Need     float64
	Have     float64
}

func (e NotEligibleError) Error() string {
	return fmt.Sprintf("%s requires %s %.1f (currently %.1f)", e.Activity, e.Field, e.Need, e.Have)
}

// InsufficientAuraError indicates a purchase costs more than the player has.
type InsufficientAuraError struct {
	Reward RewardKind
	Cost   int
	Have   int
}

func (e InsufficientAuraError) Error() string {
	return fmt.Sprintf("%s costs %d aura (currently %d)", e.Reward, e.Cost, e.Have)
}

// BoostActiveError indicates a boost purchase was rejected because that
// boost is already running.
type BoostActiveError struct {
	Kind     BoostKind
	DaysLeft int
}

func (e BoostActiveError) Error() string {
	return fmt.Sprintf("%s boost is already active (%d day(s) left)", e.Kind, e.DaysLeft)
}
