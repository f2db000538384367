package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shinobi/internal/ui"
)

const Version = "0.1.0"

var (
	flagConfig  string
	flagDB      string
	flagVerbose bool

	logger   *zap.Logger
	logLevel zap.AtomicLevel
)

var rootCmd = &cobra.Command{
	Use:           "shinobi",
	Short:         "Shinobi Academy: a ninja-themed habit tracker",
	Long:          "Shinobi is a local-first CLI/TUI habit tracker: complete real-life missions to earn stats, ranks, jutsu, and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if flagVerbose {
			logLevel = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = logLevel
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.shinobi.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file (default ~/.shinobi.db)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(
		newStatusCmd(),
		newMissionsCmd(),
		newDoCmd(),
		newJutsuCmd(),
		newAchievementsCmd(),
		newRanksCmd(),
		newVillagesCmd(),
		newOnboardCmd(),
		newTutorialCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
