package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shinobi/internal/game"
	"shinobi/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show ninja stats, rank, and daily progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			ob, err := a.store.LoadOnboarding(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title := "Ninja Status"
			if ob.IsCompleted && ob.Name != "" {
				village := ob.Village
				if v := game.VillageByID(ob.Village); v != nil {
					village = v.Symbol + " " + v.Name
				}
				title = fmt.Sprintf("%s of %s", ob.Name, village)
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, title))

			stats := a.engine.Stats()
			rank := game.CurrentRank(stats.Experience)
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.RankText(rank)))
			if next := game.NextRank(stats.Experience); next != nil {
				toGo := next.MinExperience - stats.Experience
				bar := ui.ProgressBar(game.RankProgress(stats.Experience), 100, 24)
				fmt.Fprintln(out, ui.LabelValue("Experience",
					fmt.Sprintf("%d %s %s", stats.Experience, bar,
						ui.Muted.Render(fmt.Sprintf("(%d to %s)", toGo, next.Name)))))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Experience",
					fmt.Sprintf("%d %s", stats.Experience, ui.Gold.Render("(top rank)"))))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Attributes"))
			for _, s := range game.Stats {
				name := strings.ToUpper(string(s)[:1]) + string(s)[1:]
				fmt.Fprintf(out, "- %s %s: %d\n", ui.StatIcon(s), ui.Key.Render(name), stats.Get(s))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📅 Today"))
			fmt.Fprintln(out, ui.LabelValue("Missions completed today", a.engine.CompletedToday()))
			fmt.Fprintln(out, ui.LabelValue("Total streaks", fmt.Sprintf("%d %s", a.engine.TotalActiveStreaks(), ui.IconFire)))
			fmt.Fprintln(out, ui.LabelValue("Achievements",
				fmt.Sprintf("%d/%d %s", a.tracker.UnlockedCount(), len(a.tracker.Achievements()), ui.IconTrophy)))

			return nil
		},
	}

	return cmd
}
