package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"chosenoffset.com/bouncer/internal/render/terminal"
)

func newTermCmd() *cobra.Command {
	flags := &startFlags{}
	var logFile string

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Animate the circles in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			ts, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}

			// The screen owns the terminal until the run ends.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			logger.SetOutput(logOut)
			defer logger.SetOutput(cmd.ErrOrStderr())

			cellW, cellH := cfg.Terminal.CellWidth, cfg.Terminal.CellHeight
			engine := terminal.NewEngine(ts, cellW, cellH, logger)

			// The real size is only known after Init; the first Layout fixes it.
			s := screen{
				width:     80 * cellW,
				height:    24 * cellH,
				tps:       cfg.Terminal.TPS,
				maxRadius: cfg.Terminal.MaxRadius,
			}
			return run(ctx, cmd.OutOrStdout(), engine, engine.Renderer(), engine.Input(), cfg, s, flags, logger)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the terminal is in use")
	return cmd
}
