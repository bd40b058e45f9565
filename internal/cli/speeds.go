package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/bouncer/internal/animation"
)

func newSpeedsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "speeds",
		Short: "List the speed presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			def, err := cfg.Speed()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render("Speed presets"))
			for _, p := range animation.Presets {
				interval := styleNumber.Render(p.Speed.Interval().String())
				line := fmt.Sprintf("%s per step", interval)
				if p.Speed == def {
					line += styleDim.Render(" (default)")
				}
				printKeyValue(out, p.Name, line)
			}
			printHint(out, "any positive number of milliseconds also works, e.g. --speed 40ms")
			return nil
		},
	}
}
