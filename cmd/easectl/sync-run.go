package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/easeboard/easeboard/pkg/config"
	"github.com/easeboard/easeboard/pkg/db"
	gormstore "github.com/easeboard/easeboard/pkg/server/store/gorm"
	syncpkg "github.com/easeboard/easeboard/pkg/sync"
	"github.com/easeboard/easeboard/pkg/vault"
)

// syncRunCmd represents the sync run command
var syncRunCmd = &cobra.Command{
	Use:   "run USER_ID CONNECTION_ID",
	Short: "Run a one-off sync for a connection",
	Long: `Run a one-off sync for a connection.

Fetches courses, assignments and grades from Canvas and refreshes the
local cache, exactly as a manual sync triggered from the dashboard.

Example:
  easectl sync run 6f1b... 9c2d...`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		userID, err := uuid.Parse(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Invalid user id:", err)
			os.Exit(1)
		}
		connectionID, err := uuid.Parse(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Invalid connection id:", err)
			os.Exit(1)
		}

		dataKeyB64, err := config.DataKey()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cipher, err := vault.NewCipherFromBase64(dataKeyB64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad EASEBOARD_DATA_KEY:", err)
			os.Exit(1)
		}

		database, err := db.Connect(db.Config{Cipher: cipher})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		syncer := syncpkg.NewSyncer(
			gormstore.NewConnectionsStore(database),
			gormstore.NewCacheStore(database),
			gormstore.NewSyncLogsStore(database),
			nil,
		)

		result, err := syncer.Run(context.Background(), userID, connectionID, "manual")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Sync failed:", err)
			os.Exit(1)
		}

		fmt.Printf("Synced %d items (%d partial failures)\n", result.ItemsSynced, result.PartialFailures)
	},
}

func init() {
	syncCmd.AddCommand(syncRunCmd)
}
