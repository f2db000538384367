package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shinobi/internal/game"
	"shinobi/internal/ui"
)

func newRanksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranks",
		Short: "Show the rank ladder",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			cur := game.CurrentRank(a.engine.Stats().Experience)

			fmt.Fprintln(out, ui.Heading(ui.IconShuriken, "Rank Ladder"))
			for _, r := range game.NinjaRanks {
				marker := "  "
				if r.Name == cur.Name {
					marker = "→ "
				}
				fmt.Fprintf(out, "%s%s %s\n", marker, ui.RankText(r),
					ui.Muted.Render(fmt.Sprintf("(%d XP)", r.MinExperience)))
			}
			return nil
		},
	}

	return cmd
}
