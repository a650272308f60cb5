package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studentlife/internal/sim"
	"studentlife/internal/storage"
	"studentlife/internal/ui"
)

func newSetCmd() *cobra.Command {
	var difficulty string
	var notifications string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings (difficulty, notifications)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			env, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			set := env.settings
			if difficulty != "" {
				d := sim.Difficulty(difficulty)
				if !d.IsValid() {
					return fmt.Errorf("invalid difficulty: %q (easy|medium|hard)", difficulty)
				}
				set.Difficulty = string(d)
			}
			switch notifications {
			case "":
			case "on":
				set.Notifications = true
			case "off":
				set.Notifications = false
			default:
				return fmt.Errorf("invalid notifications value: %q (on|off)", notifications)
			}

			if err := storage.SaveSettings(ctx, env.store, set); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.LabelValue("Difficulty", set.Difficulty))
			fmt.Fprintln(out, ui.LabelValue("Notifications", onOff(set.Notifications)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Difficulty (easy|medium|hard)")
	cmd.Flags().StringVarP(&notifications, "notifications", "n", "", "Notifications (on|off)")

	return cmd
}

func onOff(b bool) string {
	if b {
		return ui.Good.Render("on")
	}
	return ui.Muted.Render("off")
}
