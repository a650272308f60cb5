package sim

import "fmt"

// Clock is the in-game day/hour/minute. Days start at DayStartHour and
// roll over once the hour reaches DayEndHour after an advance.
type Clock struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewClock returns the clock at the start of a playthrough: day 1, 08:00.
func NewClock(startHour int) Clock {
	return Clock{Day: 1, Hour: startHour, Minute: 0}
}

// Advance adds minutes, carrying overflow into hours. It reports whether
// the day rolled over; at most one rollover happens per call regardless
// of how large mins is.
func (c *Clock) Advance(mins int, startHour, endHour int) (rolled bool) {
	if mins < 0 {
		mins = 0
	}
	c.Minute += mins
	for c.Minute >= 60 {
		c.Minute -= 60
		c.Hour++
	}
	if c.Hour >= endHour {
		c.Roll(startHour)
		return true
	}
	return false
}

// Roll increments the day and resets the time of day. Callers are
// responsible for day-tick side effects (boost timers, termination).
func (c *Clock) Roll(startHour int) {
	c.Day++
	c.Hour = startHour
	c.Minute = 0
}

func (c Clock) String() string {
	return fmt.Sprintf("Day %d %02d:%02d", c.Day, c.Hour, c.Minute)
}
