package cmd

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved organizer configuration",
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "print the config file the organizer resolved",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := configs.GetViper()
			if v == nil {
				return fmt.Errorf("config not initialized")
			}

			if used := v.ConfigFileUsed(); used != "" {
				fmt.Fprintln(cmd.OutOrStdout(), used)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no config file loaded, running on defaults and ORGANIZER_* env")
			}

			return nil
		},
	}

	configShowCmd = &cobra.Command{
		Use:     "show",
		Short:   "dump the effective configuration as JSON",
		Aliases: []string{"debug"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if configs.GetViper() == nil {
				return fmt.Errorf("config not initialized")
			}

			if debug {
				configs.GetViper().Debug()
			}

			b, err := sonic.ConfigDefault.MarshalIndent(configs.GetConfig(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(b))

			return nil
		},
	}
)

func registerConfigsCommands() {
	configCmd.AddCommand(configPathCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
