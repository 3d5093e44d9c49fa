package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ramanasai/journal/internal/config"
	"github.com/ramanasai/journal/internal/logging"
	"github.com/ramanasai/journal/internal/version"
)

var (
	cfgFile string
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:           "journal",
	Short:         "Daily journal with mood analytics, streaks and PDF export",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFrom(cfgFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}

		logger := logging.New(&logging.Config{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			File: logging.FileConfig{
				Enabled:    cfg.Log.File.Enabled,
				Path:       cfg.Log.File.Path,
				MaxSizeMB:  cfg.Log.File.MaxSize,
				MaxBackups: cfg.Log.File.MaxBackups,
				MaxAgeDays: cfg.Log.File.MaxAge,
				Compress:   cfg.Log.File.Compress,
			},
		})
		logging.SetDefault(logger)

		ctx := logging.WithCommand(logging.WithContext(cmd.Context(), logger), cmd.Name())
		cmd.SetContext(ctx)
		logging.FromContext(ctx).Debug("config loaded",
			slog.String("theme", cfg.Theme),
			slog.Int("window_days", cfg.Analytics.WindowDays),
			slog.Bool("encryption", cfg.Encryption.Enabled))
		return nil
	},
}

// Execute runs the CLI until ctx is canceled. Build metadata must be set
// before the call.
func Execute(ctx context.Context) error {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Info() + "\n")
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/journal/config.yaml)")

	// Other files define these vars
	rootCmd.AddCommand(writeCmd, showCmd, deleteCmd, listCmd, statsCmd, exportCmd, tagsCmd, remindCmd, tuiCmd, versionCmd)
}
