package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studentlife/internal/sim"
	"studentlife/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current playthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			env, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			session, err := env.loadSession(ctx, sim.Events{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			snap := session.Snapshot()

			if snap.Over {
				writeEnding(out, session.Ending(), snap)
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Muted.Render(`Run "sl reset" to play another week.`))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, snap.Profile.Name+" — "+snap.Profile.Major))
			fmt.Fprintln(out, ui.LabelValue("Clock", snap.Clock.String()))
			fmt.Fprintln(out, ui.LabelValue("Difficulty", session.Difficulty()))
			fmt.Fprintln(out, ui.LabelValue("Aura", fmt.Sprintf("%s %d", ui.IconSparkle, snap.Aura)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Attributes"))
			writeStats(out, snap)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBolt + " Boosts"))
			for _, kind := range sim.BoostKinds {
				if snap.Boosts.IsActive(kind) {
					fmt.Fprintf(out, "- %s %s\n", ui.Good.Render(kind.Label()),
						ui.Muted.Render(fmt.Sprintf("(%d day(s) left)", snap.Boosts.DaysLeft(kind))))
				} else {
					fmt.Fprintf(out, "- %s %s\n", ui.Muted.Render(kind.Label()), ui.Muted.Render("(inactive)"))
				}
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconShop+" Shop"))
			for _, r := range sim.RewardKinds {
				cost := session.RewardCost(r)
				tag := ui.Good.Render("affordable")
				if snap.Aura < cost {
					tag = ui.Bad.Render("too pricey")
				}
				fmt.Fprintf(out, "- %-15s %3d aura  %s\n", r, cost, tag)
			}
			return nil
		},
	}

	return cmd
}
