package cmd

import (
	"io"
	"time"

	"github.com/plus3/blockfall/internal/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTermCmd(v *viper.Viper) *cobra.Command {
	var tick time.Duration
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := engineConfig(v)
			if err != nil {
				return err
			}
			s, err := readSettings(v)
			if err != nil {
				return err
			}
			// The terminal is taken over, so logs only go to --log-file.
			logger, closeLog, err := engineLogger(v, io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()
			cfg.Logger = logger

			return term.Run(term.Options{Config: cfg, Ghost: s.Ghost(), Tick: tick})
		},
	}
	cmd.Flags().DurationVar(&tick, "tick", term.DefaultTick, "time between engine updates")
	return cmd
}
