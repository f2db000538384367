package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shinobi/internal/ui"
)

func newTutorialCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "tutorial [start <id> | next | skip | complete <id> | reset]",
		Short: "Show or advance the walkthrough state",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			switch args[0] {
			case "start", "complete":
				if len(args) != 2 {
					return fmt.Errorf("%s requires a tutorial id", args[0])
				}
			case "next", "skip", "reset":
				if len(args) != 1 {
					return fmt.Errorf("%s takes no arguments", args[0])
				}
			default:
				return errors.New("unknown action: " + args[0])
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

			ts, err := a.store.LoadTutorial(ctx)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				switch args[0] {
				case "start":
					ts.Start(args[1])
				case "next":
					ts.NextStep(steps)
				case "skip":
					ts.Skip()
				case "complete":
					ts.Complete(args[1])
				case "reset":
					ts.Reset()
				}
				if err := a.store.SaveTutorial(ctx, ts); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("🎓", "Walkthroughs"))
			if ts.IsActive {
				fmt.Fprintln(out, ui.LabelValue("Active step", ts.CurrentStepIndex+1))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("No walkthrough running."))
			}
			if len(ts.CompletedTutorials) > 0 {
				fmt.Fprintln(out, ui.LabelValue("Completed", strings.Join(ts.CompletedTutorials, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 5, "Total steps in the active walkthrough (for next)")
	return cmd
}
