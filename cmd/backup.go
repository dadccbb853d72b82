/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var backupOutput string

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the data file to a backup location",
	RunE:  runBackup,
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup-file]",
	Short: "Replace the current data with a backup",
	Long: `Replace the current data file with a backup. This overwrites the
current tasks, categories, habits, and logs.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	backupCmd.Flags().StringVarP(&backupOutput, "output", "o", "", "backup file path (default: timestamped file next to the data file)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	dest := backupOutput
	if dest == "" {
		dataFile := GetDataFilePath()
		stamp := time.Now().Format("20060102-150405")
		dest = filepath.Join(filepath.Dir(dataFile), fmt.Sprintf("backup-%s-%s", stamp, filepath.Base(dataFile)))
	}

	if err := taskStore.Backup(dest); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	cmd.Printf("Backed up to %s\n", dest)
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	if err := taskStore.Restore(args[0]); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	cmd.Printf("Restored from %s\n", args[0])
	return nil
}
