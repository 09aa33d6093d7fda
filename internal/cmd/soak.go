package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/plus3/blockfall/internal/soak"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSoakCmd(v *viper.Viper) *cobra.Command {
	var (
		opts    soak.Options
		output  string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "soak",
		Short: "Play many seeded games headlessly and report on them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := engineConfig(v)
			if err != nil {
				return err
			}
			if cfg.Seed != nil {
				opts.Seed = *cfg.Seed
			} else {
				opts.Seed = uint64(time.Now().UnixNano())
			}
			if v.GetString("log-file") != "" {
				logger, closeLog, err := engineLogger(v, io.Discard)
				if err != nil {
					return err
				}
				defer closeLog()
				cfg.Logger = logger
			}
			opts.Config = cfg
			if verbose {
				opts.Logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "soaking %s games of %s from seed %s\n",
				emph(opts.Games), emph(opts.Duration), emph(opts.Seed))
			report, runErr := soak.Run(ctx, opts)
			if report == nil {
				return runErr
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create report: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := report.Generate(out); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			report.Summary(cmd.ErrOrStderr())
			return runErr
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Games, "games", 8, "number of games")
	f.DurationVar(&opts.Duration, "duration", 2*time.Minute, "simulated play time per game")
	f.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "games run at once")
	f.StringVarP(&output, "output", "o", "", "write the Markdown report to this file instead of stdout")
	f.BoolVarP(&verbose, "verbose", "v", false, "log each finished game")
	return cmd
}
