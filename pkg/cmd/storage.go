package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/db"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/kv"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/mq"
)

var (
	storageCmd = &cobra.Command{
		Use:   "storage",
		Short: "Inspect the storage backends of the organizer",
	}

	storageBackendsCmd = &cobra.Command{
		Use:     "backends",
		Short:   "list the registered snapshot DB, rules KV and event MQ backends",
		Aliases: []string{"ls", "list"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Snapshot databases:")
			for _, t := range db.GetRegisteredDBTypes() {
				fmt.Fprintln(out, "   - "+string(t))
			}

			fmt.Fprintln(out, "Rules KV stores:")
			for _, t := range kv.GetRegisteredKVTypes() {
				fmt.Fprintln(out, "   - "+string(t))
			}

			fmt.Fprintln(out, "Event queues:")
			for _, t := range mq.GetRegisteredMQTypes() {
				fmt.Fprintln(out, "   - "+string(t))
			}
		},
	}
)

func registerStorageCommands() {
	rootCmd.AddCommand(storageCmd)
	storageCmd.AddCommand(storageBackendsCmd)
}
