package cmd

import (
	"fmt"

	"github.com/plus3/blockfall/internal/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage settings and inspect the engine configuration",
	}
	cmd.AddCommand(
		newConfigSetCmd(v),
		newConfigGetCmd(v),
		newConfigDumpCmd(v),
	)
	return cmd
}

func completeSettingKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return []string{"on", "off"}, cobra.ShellCompDirectiveNoFileComp
	}
	return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
}

func newConfigSetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <on|off>",
		Short:             "Set a setting",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeSettingKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := readSettings(v)
			if err != nil {
				return err
			}
			if err := s.Set(args[0], args[1]); err != nil {
				return err
			}
			value, _ := s.Get(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), args[0], "is now", emph(value))
			return nil
		},
	}
}

func newConfigGetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:               "get [key]",
		Short:             "Print one setting, or all of them",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSettingKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := readSettings(v)
			if err != nil {
				return err
			}
			keys := settings.Keys()
			if len(args) == 1 {
				keys = args
			}
			for _, k := range keys {
				value, err := s.Get(k)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k, value)
			}
			return nil
		},
	}
}

func newConfigDumpCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the effective engine configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := engineConfig(v)
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
