package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studentlife/internal/sim"
	"studentlife/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <reward>",
		Short: "Spend aura on a reward",
		Long:  "Rewards: skip-day, energy-boost, study-bonus, social-boost, mental-refresh.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("a reward is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			env, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reward, err := sim.ParseReward(args[0])
			if err != nil {
				return err
			}

			notes := &noteLog{muted: !env.settings.Notifications}
			session, err := env.loadSession(ctx, notes.events())
			if err != nil {
				return err
			}

			res, err := session.Purchase(reward)
			if err != nil {
				// Rejected purchases mutate nothing.
				return err
			}
			if err := env.saveSession(ctx, session); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s for %d aura (%d left)\n",
				ui.Good.Render("Purchased"), reward, res.Cost, res.AuraLeft)
			if res.BoostDays > 0 {
				fmt.Fprintln(out, ui.LabelValue("Duration", fmt.Sprintf("%d day(s)", res.BoostDays)))
			}
			if res.DayRolled {
				fmt.Fprintln(out, ui.LabelValue("Clock", res.Clock.String()))
			}
			notes.print(out)

			if res.GameOver {
				fmt.Fprintln(out, "")
				writeEnding(out, res.Ending, session.Snapshot())
			}
			return nil
		},
	}

	return cmd
}
