package root

import (
	"context"

	"github.com/spf13/cobra"

	"studentlife/internal/tui"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the interactive TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			env, cleanup, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			collector := tui.NewCollector()
			session, err := env.loadSession(ctx, collector.Events())
			if err != nil {
				return err
			}

			save := func() error {
				return env.saveSession(ctx, session)
			}
			return tui.Run(ctx, session, collector, save, cmd.OutOrStdout())
		},
	}

	return cmd
}
