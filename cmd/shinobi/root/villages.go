package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shinobi/internal/game"
	"shinobi/internal/ui"
)

func newVillagesCmd() *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "villages",
		Short: "Show the village leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			metric := game.LeaderboardMetric(by)
			if !metric.IsValid() {
				return fmt.Errorf("invalid metric %q (experience|missions|members)", by)
			}

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
			fmt.Fprintln(out, ui.Heading("🏯", "Village Leaderboard"))
			for i, v := range game.VillageLeaderboard(metric) {
				var value int
				switch metric {
				case game.MetricMissions:
					value = v.CompletedMissions
				case game.MetricMembers:
					value = v.TotalMembers
				default:
					value = v.TotalExperience
				}
				line := fmt.Sprintf("%d. %s %s %s", i+1, v.Symbol, ui.Key.Render(v.Name),
					ui.Muted.Render(fmt.Sprintf("%d %s", value, metric)))
				if v.ID == ob.Village {
					line += " " + ui.Gold.Render("← your village")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", string(game.MetricExperience), "Ranking metric (experience|missions|members)")
	return cmd
}
