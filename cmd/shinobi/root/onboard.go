package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shinobi/internal/game"
	"shinobi/internal/ui"
)

func newOnboardCmd() *cobra.Command {
	var (
		name     string
		avatar   string
		age      int
		village  string
		complete bool
		reset    bool
	)

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Enroll at the academy (set name, avatar, age, village)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			if reset {
				if err := a.store.SaveOnboarding(ctx, game.DefaultOnboarding()); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Warn.Render("↩ Enrollment reset"))
				return nil
			}

			ob, err := a.store.LoadOnboarding(ctx)
			if err != nil {
				return err
			}

			changed := false
			if name != "" {
				if err := ob.SetName(name); err != nil {
					return err
				}
				changed = true
			}
			if avatar != "" {
				ob.Avatar = avatar
				changed = true
			}
			if cmd.Flags().Changed("age") {
				ob.Age = age
				changed = true
			}
			if village != "" {
				if err := ob.SetVillage(village); err != nil {
					return err
				}
				changed = true
			}
			if complete {
				if err := ob.Complete(); err != nil {
					return err
				}
				changed = true
			}
			if changed {
				if err := a.store.SaveOnboarding(ctx, ob); err != nil {
					return err
				}
			}

			fmt.Fprintln(out, ui.Heading(ui.IconLeaf, "Academy Enrollment"))
			displayName := ob.Name
			if displayName == "" {
				displayName = ui.Muted.Render("(not set)")
			}
			fmt.Fprintln(out, ui.LabelValue("Name", displayName))
			if ob.Avatar != "" {
				fmt.Fprintln(out, ui.LabelValue("Avatar", ob.Avatar))
			}
			fmt.Fprintln(out, ui.LabelValue("Age", ob.Age))
			if v := game.VillageByID(ob.Village); v != nil {
				fmt.Fprintln(out, ui.LabelValue("Village", v.Symbol+" "+v.Name))
			}
			if ob.IsCompleted {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Enrollment complete"))
				fmt.Fprintln(out, ui.LabelValue("Ninja ID", ui.Muted.Render(ob.NinjaID)))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Run with --complete once your name is set."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Ninja name (2-15 characters)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar emoji or handle")
	cmd.Flags().IntVar(&age, "age", 18, "Age")
	cmd.Flags().StringVar(&village, "village", "", "Village (leaf|sand|mist|cloud|stone)")
	cmd.Flags().BoolVar(&complete, "complete", false, "Mark enrollment complete")
	cmd.Flags().BoolVar(&reset, "reset", false, "Wipe the enrollment record")
	return cmd
}
