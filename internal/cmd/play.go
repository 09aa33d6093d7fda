package cmd

import (
	"os"

	"github.com/plus3/blockfall/internal/play"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPlayCmd(v *viper.Viper) *cobra.Command {
	var inspector bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in a window",
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
			logger, closeLog, err := engineLogger(v, os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()
			cfg.Logger = logger

			return play.Run(play.Options{
				Config:    cfg,
				Ghost:     s.Ghost(),
				Inspector: inspector || s.Inspector(),
			})
		},
	}
	cmd.Flags().BoolVar(&inspector, "inspector", false, "open with the inspector visible (F1 toggles)")
	return cmd
}
