package root

import (
	"fmt"
	"io"

	"studentlife/internal/sim"
	"studentlife/internal/ui"
)

// noteLog collects core notifications during one handler so commands can
// print them after the result. The notifications toggle only mutes
// plain notices; day changes and the ending always show.
type noteLog struct {
	muted bool
	lines []string
}

func (n *noteLog) events() sim.Events {
	return sim.Events{
		Notify: func(msg string) {
			if n.muted {
				return
			}
			n.lines = append(n.lines, ui.Muted.Render(msg))
		},
		DayChanged: func(day int) {
			n.lines = append(n.lines, ui.Gold.Render(fmt.Sprintf("📅 DAY %d", day)))
		},
	}
}

func (n *noteLog) print(w io.Writer) {
	for _, line := range n.lines {
		fmt.Fprintln(w, line)
	}
}

func writeStats(w io.Writer, snap sim.Snapshot) {
	for _, f := range sim.Fields {
		v := snap.Stats.Get(f)
		fmt.Fprintf(w, "- %s %-13s %s %5.1f\n", ui.FieldIcon(f), f.Label(), ui.StatBar(v, 20), v)
	}
}

func writeEnding(w io.Writer, ending sim.Ending, snap sim.Snapshot) {
	info := ending.Info()
	fmt.Fprintln(w, ui.Heading(ui.IconTrophy, "Term complete"))
	fmt.Fprintf(w, "%s has finished the week at AISAT.\n\n", snap.Profile.Name)
	fmt.Fprintf(w, "%s %s\n", info.Icon, ui.Gold.Render(string(ending)))
	fmt.Fprintln(w, ui.Muted.Render(info.Blurb))
	fmt.Fprintln(w, "")
	writeStats(w, snap)
}
