package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"studentlife/internal/sim"
	"studentlife/internal/ui"
)

func newActivitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List the activity catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDay, "Activities"))

			kinds := []struct {
				kind  sim.ActivityKind
				title string
			}{
				{sim.KindTask, "Tasks"},
				{sim.KindEvent, "Events"},
				{sim.KindWellness, "Wellness"},
				{sim.KindJob, "Jobs"},
			}

			for _, k := range kinds {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(k.title))
				for _, act := range sim.Catalog {
					if act.Kind != k.kind {
						continue
					}
					line := fmt.Sprintf("- %-12s %4d min  +%d aura", act.ID, act.Minutes, act.Aura)
					if act.Requires != nil {
						line += ui.Warn.Render(fmt.Sprintf("  needs %s ≥ %.0f", act.Requires.Field.Label(), act.Requires.Min))
					}
					if act.Boost != "" {
						line += ui.Muted.Render("  (" + act.Boost.Label() + " applies)")
					}
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}

	return cmd
}
