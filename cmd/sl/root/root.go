package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studentlife/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sl",
	Short:         "Studentlife — a one-week student life sim for the terminal",
	Long:          "Studentlife is a terminal life-simulation game: balance fitness, academics,\nsocial life, mental health and finances over seven in-game days.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newNewCmd(),
		newStatusCmd(),
		newActivitiesCmd(),
		newDoCmd(),
		newBuyCmd(),
		newSetCmd(),
		newResetCmd(),
		newPlayCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
