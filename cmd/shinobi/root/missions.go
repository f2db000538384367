package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shinobi/internal/game"
	"shinobi/internal/ui"
)

func newMissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List missions with rewards and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Mission Board"))
			for _, m := range a.engine.Missions() {
				fmt.Fprintln(out, renderMission(m))
			}
			return nil
		},
	}

	return cmd
}

func renderMission(m game.Mission) string {
	check := ui.IconTodo
	if m.Completed {
		check = ui.IconDone
	}

	var rewards []string
	for _, r := range m.StatRewards {
		rewards = append(rewards, fmt.Sprintf("%s+%d", ui.StatIcon(r.Stat), r.Amount))
	}
	rewards = append(rewards, fmt.Sprintf("+%d XP", m.ExperienceReward))

	line := fmt.Sprintf("%s #%s %s %s %s %s",
		check,
		m.ID,
		ui.CategoryIcon(m.Category),
		m.Title,
		ui.DifficultyText(m.Difficulty),
		ui.Muted.Render(strings.Join(rewards, " ")),
	)
	if m.Streak > 0 {
		line += " " + ui.Warn.Render(fmt.Sprintf("%s%d", ui.IconFire, m.Streak))
	}
	return line
}
