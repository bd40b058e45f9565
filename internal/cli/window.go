package cli

import (
	"github.com/spf13/cobra"

	ebitenrender "chosenoffset.com/bouncer/internal/render/ebiten"
)

func newWindowCmd() *cobra.Command {
	flags := &startFlags{}
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Animate the circles in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			engine := ebitenrender.NewEngine()
			engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			engine.SetWindowTitle(cfg.Window.Title)
			engine.SetWindowResizable(cfg.Window.Resizable)

			s := screen{
				width:     cfg.Window.Width,
				height:    cfg.Window.Height,
				tps:       cfg.Window.TPS,
				maxRadius: cfg.Animation.MaxRadius,
			}
			logger.Debug("opening window", "width", s.width, "height", s.height)
			return run(ctx, cmd.OutOrStdout(), engine, ebitenrender.NewRenderer(), ebitenrender.NewInputManager(), cfg, s, flags, logger)
		},
	}
	flags.register(cmd)
	return cmd
}
