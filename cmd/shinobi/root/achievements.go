package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shinobi/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show earned badges and progress toward the rest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			// Catch up on anything earned since the last evaluation.
			a.tracker.Evaluate(a.engine.Stats(), a.engine.Missions(), a.engine.Jutsu())
			if err := a.saveProgress(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			stats := a.engine.Stats()
			missions := a.engine.Missions()
			jutsu := a.engine.Jutsu()

			for _, ach := range a.tracker.Achievements() {
				if ach.Unlocked {
					when := ""
					if ach.UnlockedAt != nil {
						when = ui.Muted.Render(ach.UnlockedAt.Local().Format("2006-01-02"))
					}
					fmt.Fprintf(out, "%s %s %s %s\n", ach.Icon, ui.Good.Render(ach.Title),
						ui.Muted.Render(ach.Description), when)
					continue
				}
				p := a.tracker.Progress(ach.ID, stats, missions, jutsu)
				fmt.Fprintf(out, "%s %s %s %s %d%%\n", ach.Icon, ui.Key.Render(ach.Title),
					ui.Muted.Render(ach.Description), ui.ProgressBar(p, 100, 16), p)
			}
			return nil
		},
	}

	return cmd
}
