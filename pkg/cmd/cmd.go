// Package cmd contains the command line interface of the organizer.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Himan2899/SmartFileOrganizer/pkg/app"
	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
)

var (
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "organizer",
		Short: "Smart file organizer service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// serve initializes the full app itself
			if cmd.Name() == "serve" {
				return nil
			}

			return configs.InitConfig(configPath)
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(configPath).Run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./", "config file or directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose config output")

	rootCmd.AddCommand(serveCmd)

	registerConfigsCommands()
	registerStorageCommands()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
