package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studentlife/internal/sim"
	"studentlife/internal/storage"
	"studentlife/internal/ui"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restart the playthrough (keeps the character)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			env, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			prev, exists, err := storage.LoadGame(ctx, env.store)
			if err != nil {
				return err
			}
			if !exists {
				return ErrNoGame
			}

			state := sim.NewState(env.bal, prev.Profile)
			if err := storage.SaveGame(ctx, env.store, state); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s A fresh week begins for %s.\n", ui.Good.Render("Reset."), state.Profile.Name)
			fmt.Fprintln(out, ui.LabelValue("Clock", state.Clock.String()))
			fmt.Fprintln(out, ui.LabelValue("Aura", state.Aura))
			return nil
		},
	}

	return cmd
}
