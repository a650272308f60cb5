package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studentlife/internal/sim"
	"studentlife/internal/storage"
	"studentlife/internal/ui"
)

func newNewCmd() *cobra.Command {
	var gender string
	var major string
	var force bool

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Start a new playthrough",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one name is accepted")
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

			if _, exists, _ := storage.LoadGame(ctx, env.store); exists && !force {
				return errors.New("a playthrough already exists; pass --force to overwrite it")
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			profile := sim.NewProfile(name, sim.ParseGender(gender), major)
			state := sim.NewState(env.bal, profile)

			saveRaw, err := storage.EncodeSave(state)
			if err != nil {
				return err
			}
			settingsRaw, err := storage.EncodeSettings(env.settings)
			if err != nil {
				return err
			}
			// One transaction so a fresh DB gets both records together.
			if err := env.store.SetAll(ctx, map[string]string{
				storage.SaveKey:     saveRaw,
				storage.SettingsKey: settingsRaw,
			}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Welcome to AISAT, "+profile.Name))
			fmt.Fprintln(out, ui.Muted.Render("You are a student embarking on a journey of growth and discovery."))
			fmt.Fprintln(out, ui.Muted.Render("Balance academics with fitness, social life, mental well-being and money."))
			fmt.Fprintln(out, ui.Muted.Render("Earn Aura Points from activities and spend them on boosts in the shop."))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Major", profile.Major))
			fmt.Fprintln(out, ui.LabelValue("Difficulty", env.settings.Difficulty))
			fmt.Fprintln(out, ui.LabelValue("Clock", state.Clock.String()))
			fmt.Fprintln(out, ui.LabelValue("Aura", state.Aura))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render(`Your journey begins now. Try "sl activities", then "sl do gym".`))
			return nil
		},
	}

	cmd.Flags().StringVarP(&gender, "gender", "g", "other", "Gender (male|female|other)")
	cmd.Flags().StringVarP(&major, "major", "m", "", "Major (free-form; defaults to engineering)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing playthrough")

	return cmd
}
