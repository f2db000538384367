package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shinobi/internal/game"
	"shinobi/internal/ui"
)

func newJutsuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jutsu",
		Short: "List jutsu techniques and their unlock status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			stats := a.engine.Stats()
			now := time.Now()

			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Jutsu Techniques"))
			for _, j := range a.engine.Jutsu() {
				switch {
				case !j.Unlocked:
					fmt.Fprintf(out, "%s #%s %s %s\n", ui.IconLock, j.ID, ui.Muted.Render(j.Name),
						ui.Muted.Render(fmt.Sprintf("(requires %s %d, have %d)",
							j.RequiredStat, j.RequiredValue, stats.Get(j.RequiredStat))))
				case game.JutsuOnCooldown(j, now):
					rem := game.JutsuCooldownRemaining(j, now)
					fmt.Fprintf(out, "⏳ #%s %s %s\n", j.ID, ui.Key.Render(j.Name),
						ui.Warn.Render(fmt.Sprintf("(cooldown %s)", rem.Round(time.Minute))))
				default:
					fmt.Fprintf(out, "%s #%s %s %s\n", ui.IconBolt, j.ID, ui.Key.Render(j.Name),
						ui.Muted.Render(j.Effect))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newJutsuActivateCmd())
	return cmd
}

func newJutsuActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <jutsu_id>",
		Short: "Activate an unlocked jutsu (starts its cooldown)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("jutsu_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			j, err := a.engine.ActivateJutsu(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Gold.Render(ui.IconBolt+" Activated"), ui.Key.Render(j.Name), ui.Muted.Render(j.Effect))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
				ui.Muted.Render(fmt.Sprintf("Cooldown: %d hours", j.CooldownHours)))

			return a.saveProgress(ctx)
		},
	}
}
