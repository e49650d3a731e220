package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/easeboard/easeboard/pkg/config"
	"github.com/easeboard/easeboard/pkg/db"
	"github.com/easeboard/easeboard/pkg/server"
	"github.com/easeboard/easeboard/pkg/server/endpoints"
	"github.com/easeboard/easeboard/pkg/server/middleware"
	gormstore "github.com/easeboard/easeboard/pkg/server/store/gorm"
	syncpkg "github.com/easeboard/easeboard/pkg/sync"
	"github.com/easeboard/easeboard/pkg/vault"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8080
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the EaseBoard application server",
	Long: `Run the EaseBoard application server

Requires the environment variables EASEBOARD_DATA_KEY, SUPABASE_JWT_SECRET
and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		dataKeyB64, err := config.DataKey()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		jwtSecret, err := config.JWTSecret()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if _, err := config.DatabaseURL(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
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

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load configuration:", err)
			os.Exit(1)
		}

		watchConfig, _ := cmd.Flags().GetBool("watch-config")
		if watchConfig {
			stop := make(chan struct{})
			defer close(stop)
			// Watch blocks until stop closes, it gets its own goroutine
			go func() {
				if err := config.Watch(stop, func(updated *config.Settings) {
					log.Println("Configuration reloaded")
				}); err != nil {
					log.Printf("Config watch unavailable: %v", err)
				}
			}()
		}

		connectionsStore := gormstore.NewConnectionsStore(database)
		cacheStore := gormstore.NewCacheStore(database)
		syncLogsStore := gormstore.NewSyncLogsStore(database)

		syncer := syncpkg.NewSyncer(connectionsStore, cacheStore, syncLogsStore, nil)

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")

		s := server.NewServer(database, cfg, middleware.NewSessionAuthenticator([]byte(jwtSecret)), host, port)
		s.ConnectionsStore = connectionsStore
		s.CacheStore = cacheStore
		s.SyncLogsStore = syncLogsStore
		s.StatsStore = gormstore.NewStatsStore(database)
		s.ProfilesStore = gormstore.NewProfilesStore(database)
		s.ScheduleStore = gormstore.NewScheduleStore(database)
		s.HealthStore = gormstore.NewHealthStore(database)
		s.Syncer = syncer

		endpoints.RegisterAll(s)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		scheduler := syncpkg.NewScheduler(syncer, syncpkg.SchedulerOptions{
			Tick:     cfg.SchedulerTick(),
			Interval: cfg.SyncInterval(),
		})
		go scheduler.Start(ctx)

		errCh := make(chan error, 1)
		go func() {
			log.Printf("Running server at http://%s:%s...\n", host, port)
			errCh <- s.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			log.Fatal(err)
		case sig := <-sigCh:
			log.Printf("Received %s, shutting down...", sig)
			cancel()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()
			if err := s.Shutdown(shutdownCtx); err != nil {
				log.Printf("Shutdown error: %v", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("watch-config", false, "reload configuration when the config file changes")
}
