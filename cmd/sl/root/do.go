package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studentlife/internal/sim"
	"studentlife/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <activity>",
		Short: "Spend time on an activity",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New(`an activity is required (see "sl activities")`)
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

			id, err := sim.ParseActivity(args[0])
			if err != nil {
				return err
			}

			notes := &noteLog{muted: !env.settings.Notifications}
			session, err := env.loadSession(ctx, notes.events())
			if err != nil {
				return err
			}

			res, err := session.Do(id)
			if err != nil {
				// Ineligible events leave the save untouched.
				return err
			}
			if err := env.saveSession(ctx, session); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("", res.Activity.Name))
			for _, d := range res.Deltas {
				fmt.Fprintf(out, "- %s %-13s %s\n", ui.FieldIcon(d.Field), d.Field.Label(), ui.DeltaText(d.Amount))
			}
			fmt.Fprintf(out, "- %s aura %s (total %d)\n", ui.IconSparkle, ui.Good.Render(fmt.Sprintf("+%d", res.AuraAwarded)), res.AuraTotal)
			fmt.Fprintln(out, ui.LabelValue("Clock", res.Clock.String()))
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
