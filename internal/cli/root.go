package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/bouncer/internal/config"
)

var version = "dev"

// SetVersion sets the version shown by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the bouncer CLI with ctx as the root context.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		seed       int64
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "bouncer",
		Short:        "Bouncer animates circles bouncing around a box",
		Long:         `Bouncer spawns colored circles at random sizes and speeds and bounces them off the edges of a window or terminal. The animation can be paused and resumed at any time.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flag("seed").Changed {
				cfg.Seed = seed
			}

			level := log.InfoLevel
			if cfg.Log.Level != "" {
				level, err = log.ParseLevel(cfg.Log.Level)
				if err != nil {
					return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
				}
			}
			if verbose {
				level = log.DebugLevel
			}

			logger := newLogger(cmd.ErrOrStderr(), level)
			logger.Debug("config loaded", "path", configPath, "seed", cfg.Seed)

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "bouncer.toml", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newWindowCmd())
	root.AddCommand(newTermCmd())
	root.AddCommand(newSpeedsCmd())

	return root
}
