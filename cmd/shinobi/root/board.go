package root

import (
	"context"

	"github.com/spf13/cobra"

	"shinobi/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, a.engine, a.tracker, a.store, cmd.OutOrStdout())
		},
	}

	return cmd
}
