package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Data file maintenance commands",
}

var dbBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the data files into a timestamped backup",
	RunE:  runDBBackup,
}

var dbBackupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List available backups, newest first",
	RunE:  runDBBackups,
}

var dbRestoreCmd = &cobra.Command{
	Use:   "restore <backup-path>",
	Short: "Restore data files from a backup folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBRestore,
}

var cleanupKeep int

var dbCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove old backups beyond the configured keep count",
	RunE:  runDBCleanup,
}

func init() {
	dbCleanupCmd.Flags().IntVar(&cleanupKeep, "keep", 0, "backups to keep (default from config)")

	dbCmd.AddCommand(dbBackupCmd)
	dbCmd.AddCommand(dbBackupsCmd)
	dbCmd.AddCommand(dbRestoreCmd)
	dbCmd.AddCommand(dbCleanupCmd)
}

func runDBBackup(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	path, err := e.backups.Create()
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render("Backup created: " + path))
	return nil
}

func runDBBackups(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	backups, err := e.backups.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Println(filepath.Base(b))
	}
	fmt.Println(subtleStyle.Render(fmt.Sprintf("%d backup(s)", len(backups))))
	return nil
}

func runDBRestore(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	if err := e.backups.Restore(args[0]); err != nil {
		return err
	}
	fmt.Println(successStyle.Render("Restored from " + args[0]))
	return nil
}

func runDBCleanup(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	keep := cleanupKeep
	if !cmd.Flags().Changed("keep") {
		keep = e.cfg.BackupKeep
	}
	removed, err := e.backups.Cleanup(keep)
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("Removed %d backup(s), kept %d most recent", removed, keep)))
	return nil
}
