package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shinobi/internal/game"
	"shinobi/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <mission_id>",
		Short: "Toggle a mission (complete it, or undo a completion)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("mission_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			a, cleanup, err := openApp(ctx, func(ach game.Achievement) {
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Gold.Render(ui.IconTrophy+" Achievement unlocked:"),
					ach.Icon, ui.Key.Render(ach.Title), ui.Muted.Render(ach.Description))
			})
			if err != nil {
				return err
			}
			defer cleanup()

			res := a.engine.ToggleMission(args[0])
			if !res.Found {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" No such mission: "+args[0]))
				return nil
			}

			m := res.Mission
			if res.Completed {
				var rewards []string
				for _, r := range m.StatRewards {
					rewards = append(rewards, fmt.Sprintf("%s+%d", ui.StatIcon(r.Stat), r.Amount))
				}
				rewards = append(rewards, fmt.Sprintf("+%d XP", m.ExperienceReward))
				fmt.Fprintf(out, "%s #%s %s %s %s\n",
					ui.Good.Render(ui.IconDone+" Completed"), m.ID, m.Title,
					ui.Muted.Render(strings.Join(rewards, " ")),
					ui.Warn.Render(fmt.Sprintf("%s%d", ui.IconFire, m.Streak)))
			} else {
				fmt.Fprintf(out, "%s #%s %s %s\n",
					ui.Warn.Render("↩ Undone"), m.ID, m.Title,
					ui.Muted.Render(fmt.Sprintf("(-%d XP, streak kept)", m.ExperienceReward)))
			}

			if res.RankUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeRankUp, ui.RankText(res.Rank))
			}
			if res.RankDown {
				fmt.Fprintf(out, "%s now %s\n", ui.Warn.Render(ui.IconWarn+" Rank lost:"), ui.RankText(res.Rank))
			}
			for _, j := range res.UnlockedJutsu {
				fmt.Fprintf(out, "%s %s %s\n", ui.Gold.Render(ui.IconBolt+" Jutsu unlocked:"),
					ui.Key.Render(j.Name), ui.Muted.Render(j.Effect))
			}
			for _, j := range res.RelockedJutsu {
				fmt.Fprintf(out, "%s %s\n", ui.Warn.Render(ui.IconLock+" Jutsu locked again:"), j.Name)
			}

			// Achievements react to the new state; unlock lines print via the
			// tracker callback.
			a.tracker.Evaluate(a.engine.Stats(), a.engine.Missions(), a.engine.Jutsu())

			return a.saveProgress(ctx)
		},
	}

	return cmd
}
