// Package cli implements the taskdeck command tree. Commands operate on
// the same stores and services as the HTTP server, against the data
// directory named by the config.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordanhale/taskdeck/internal/config"
	"github.com/jordanhale/taskdeck/internal/store"
	"github.com/jordanhale/taskdeck/internal/tasks"
	"github.com/jordanhale/taskdeck/internal/version"
	"github.com/jordanhale/taskdeck/internal/weather"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "taskdeck",
	Short:        "Task manager with categories, filtering, and weather",
	Long:         `Taskdeck manages tasks stored in flat JSON files: create, update, filter, and sort them, inspect statistics, and query the demo weather service.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default taskdeck.yaml)")
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(initCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return err
	}
	return nil
}

// env bundles everything a command needs against the data directory.
type env struct {
	cfg      *config.Config
	db       *store.DB
	tasks    *tasks.Service
	weather  *weather.Service
	users    *store.UserStore
	settings *store.SettingsStore
	backups  *store.BackupManager
}

func openEnv() (*env, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	db, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	// CLI output goes through the styled printers, not the logger.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &env{
		cfg:      cfg,
		db:       db,
		tasks:    tasks.NewService(store.NewTaskStore(db), logger),
		weather:  weather.NewService(store.NewWeatherStore(db), cfg.WeatherTTL()),
		users:    store.NewUserStore(db),
		settings: store.NewSettingsStore(db),
		backups:  store.NewBackupManager(db),
	}, nil
}
