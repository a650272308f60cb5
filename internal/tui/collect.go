package tui

import (
	"fmt"

	"studentlife/internal/sim"
)

// Collector buffers core events so the play screen can render them after
// each handler. Handlers run synchronously one at a time, so no locking
// is needed.
type Collector struct {
	lines []string
}

func NewCollector() *Collector {
	return &Collector{}
}

// Events returns the sink the session should emit into.
func (c *Collector) Events() sim.Events {
	return sim.Events{
		Notify: func(msg string) {
			c.lines = append(c.lines, msg)
		},
		DayChanged: func(day int) {
			c.lines = append(c.lines, fmt.Sprintf("📅 DAY %d", day))
		},
	}
}

// Drain returns buffered lines and clears the buffer.
func (c *Collector) Drain() []string {
	lines := c.lines
	c.lines = nil
	return lines
}
