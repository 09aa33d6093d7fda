// Package cmd holds the blockfall command tree.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/plus3/blockfall/internal/settings"
	"github.com/plus3/blockfall/tetris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var (
	emph = color.New(color.FgBlue, color.Bold).SprintFunc()
	warn = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// NewRootCommand builds the command tree with its own flag bindings.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("BLOCKFALL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "blockfall",
		Version:       version,
		Short:         "A falling-block puzzle engine",
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "engine configuration file (YAML)")
	flags.Int("rows", 0, "well height")
	flags.Int("columns", 0, "well width")
	flags.Uint64("seed", 0, "randomizer seed (default: clock)")
	flags.String("randomizer", "", "piece randomizer: uniform or bag")
	flags.String("log-file", "", "append engine logs to this file")
	flags.String("settings-dir", "", "directory of the settings file")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newPlayCmd(v),
		newTermCmd(v),
		newSoakCmd(v),
		newConfigCmd(v),
	)
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, warn("Error:"), err)
		os.Exit(1)
	}
}

// engineConfig layers the config file, then flags and BLOCKFALL_* variables,
// over the defaults.
func engineConfig(v *viper.Viper) (tetris.Config, error) {
	cfg := tetris.DefaultConfig()
	if path := v.GetString("config"); path != "" {
		var err error
		cfg, err = tetris.LoadConfig(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return cfg, err
		}
	}

	if v.IsSet("rows") {
		cfg.Rows = v.GetInt("rows")
	}
	if v.IsSet("columns") {
		cfg.Columns = v.GetInt("columns")
	}
	if v.IsSet("seed") {
		seed := v.GetUint64("seed")
		cfg.Seed = &seed
	}
	if v.IsSet("randomizer") {
		cfg.Randomizer = v.GetString("randomizer")
	}
	return cfg, cfg.Validate()
}

// engineLogger returns a logger writing to --log-file, or to fallback when
// no file is given. The returned close func is never nil.
func engineLogger(v *viper.Viper, fallback io.Writer) (*log.Logger, func() error, error) {
	path := v.GetString("log-file")
	if path == "" {
		return log.New(fallback, "blockfall: ", log.LstdFlags), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), f.Close, nil
}

func readSettings(v *viper.Viper) (*settings.Settings, error) {
	s, err := settings.Read(v.GetString("settings-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return s, nil
}
