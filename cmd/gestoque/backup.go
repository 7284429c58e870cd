// Backup commands: create, restore, export, status, configure, and the
// emergency backup list.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leandrodevsilva/Gestoque/internal/backup"
	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create, restore, and schedule backups",
}

var (
	backupOutDir    string
	backupYes       bool
	backupEnabled   bool
	backupInterval  int
	backupRetention int
	backupExport    string
)

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a full backup file",
	Long: `Create writes a versioned snapshot of all collections to a JSON
file. The default output directory is backups/ under the data directory.`,
	RunE: runBackupCreate,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore a backup file, replacing all live data",
	Long: `Restore validates the backup file and replaces every live collection
with its contents. This is destructive; pass --yes to confirm.`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupRestore,
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one category of data without the snapshot wrapper",
	RunE:  runBackupExport,
}

var backupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show scheduler configuration and current backup size",
	RunE:  runBackupStatus,
}

var backupConfigureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure the automatic backup scheduler",
	RunE:  runBackupConfigure,
}

var backupRunAutoCmd = &cobra.Command{
	Use:   "run-auto",
	Short: "Run an automatic backup now",
	RunE:  runBackupRunAuto,
}

var backupEmergencyCmd = &cobra.Command{
	Use:   "emergency",
	Short: "Manage the rotating emergency backup list",
}

var backupEmergencyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List emergency backups, newest first",
	RunE:  runEmergencyList,
}

var backupEmergencyRestoreCmd = &cobra.Command{
	Use:   "restore <backup-id>",
	Short: "Restore an emergency backup, replacing all live data",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmergencyRestore,
}

var backupEmergencyRemoveCmd = &cobra.Command{
	Use:   "remove <backup-id>",
	Short: "Remove an emergency backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmergencyRemove,
}

func init() {
	backupCreateCmd.Flags().StringVar(&backupOutDir, "out", "", "output directory (default: <data-dir>/backups)")

	backupRestoreCmd.Flags().BoolVar(&backupYes, "yes", false, "confirm the destructive restore")
	backupEmergencyRestoreCmd.Flags().BoolVar(&backupYes, "yes", false, "confirm the destructive restore")

	backupExportCmd.Flags().StringVar(&backupExport, "kind", "", "category: produtos | vendas | despesas | historico (required)")
	backupExportCmd.Flags().StringVar(&backupOutDir, "out", "", "output directory (default: <data-dir>/backups)")
	_ = backupExportCmd.MarkFlagRequired("kind")

	backupConfigureCmd.Flags().BoolVar(&backupEnabled, "enabled", false, "enable automatic backups")
	backupConfigureCmd.Flags().IntVar(&backupInterval, "interval-days", 0, "days between automatic backups")
	backupConfigureCmd.Flags().IntVar(&backupRetention, "retain", 0, "emergency backups to retain")

	backupEmergencyCmd.AddCommand(backupEmergencyListCmd)
	backupEmergencyCmd.AddCommand(backupEmergencyRestoreCmd)
	backupEmergencyCmd.AddCommand(backupEmergencyRemoveCmd)

	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupStatusCmd)
	backupCmd.AddCommand(backupConfigureCmd)
	backupCmd.AddCommand(backupRunAutoCmd)
	backupCmd.AddCommand(backupEmergencyCmd)
}

// resolveOutDir returns the --out directory or the sink's default.
func resolveOutDir() (string, error) {
	if backupOutDir != "" {
		if err := os.MkdirAll(backupOutDir, 0o755); err != nil {
			return "", err
		}
		return backupOutDir, nil
	}
	return backup.NewDirSink(dataDir).ResolveDir()
}

func runBackupCreate(cmd *cobra.Command, args []string) error {
	doc, err := backup.BuildSnapshot(appStore, "")
	if err != nil {
		return err
	}
	content, err := backup.Serialize(doc)
	if err != nil {
		return err
	}

	dir, err := resolveOutDir()
	if err != nil {
		return err
	}
	name := backup.ManualFilename(doc.CreatedAt)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	fmt.Printf("Backup written to %s (%s)\n", path, backup.HumanSize(len(content)))
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading backup file: %w", err)
	}
	doc, err := backup.ParseAndValidate(content)
	if err != nil {
		return err
	}

	if !backupYes {
		fmt.Printf("Restoring replaces all live data with:\n")
		fmt.Printf("  %d products, %d sales, %d expense types, %d expenses, %d stock movements\n",
			len(doc.Data.Products), len(doc.Data.Sales), len(doc.Data.ExpenseTypes),
			len(doc.Data.Expenses), len(doc.Data.StockMovements))
		fmt.Printf("  backup created %s\n", formatDateTime(doc.CreatedAt))
		fmt.Println("Re-run with --yes to confirm.")
		return nil
	}

	if err := backup.Restore(appStore, doc.Data); err != nil {
		return err
	}
	fmt.Println("Backup restored.")
	return nil
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	name, content, err := backup.ExportSubset(appStore, backupExport)
	if err != nil {
		return err
	}
	dir, err := resolveOutDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Printf("Exported %s to %s (%s)\n", backupExport, path, backup.HumanSize(len(content)))
	return nil
}

func runBackupStatus(cmd *cobra.Command, args []string) error {
	cfg, err := appScheduler.Config()
	if err != nil {
		return err
	}
	due, err := appScheduler.IsDue()
	if err != nil {
		return err
	}
	doc, err := backup.BuildSnapshot(appStore, "")
	if err != nil {
		return err
	}
	content, err := backup.Serialize(doc)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(struct {
			Config types.SchedulerConfig `json:"config"`
			Due    bool                  `json:"due"`
			Size   string                `json:"size"`
			Stats  types.BackupStats     `json:"estatisticas"`
		}{cfg, due, backup.HumanSize(len(content)), doc.Stats})
	}

	fmt.Printf("Automatic backups: %v\n", cfg.AutoBackupEnabled)
	fmt.Printf("Interval: every %d day(s)\n", cfg.IntervalDays)
	if cfg.LastBackupAt != nil {
		fmt.Printf("Last backup: %s\n", formatDateTime(*cfg.LastBackupAt))
	} else {
		fmt.Println("Last backup: never")
	}
	fmt.Printf("Emergency backups retained: %d\n", cfg.MaxRetained)
	fmt.Printf("Due now: %v\n", due)
	fmt.Printf("Current backup size: %s\n", backup.HumanSize(len(content)))
	return nil
}

func runBackupConfigure(cmd *cobra.Command, args []string) error {
	var patch backup.ConfigPatch
	if cmd.Flags().Changed("enabled") {
		patch.AutoBackupEnabled = &backupEnabled
	}
	if cmd.Flags().Changed("interval-days") {
		patch.IntervalDays = &backupInterval
	}
	if cmd.Flags().Changed("retain") {
		patch.MaxRetained = &backupRetention
	}

	cfg, err := appScheduler.Configure(patch)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(cfg)
	}
	fmt.Printf("Automatic backups: %v, every %d day(s), retaining %d\n",
		cfg.AutoBackupEnabled, cfg.IntervalDays, cfg.MaxRetained)
	return nil
}

func runBackupRunAuto(cmd *cobra.Command, args []string) error {
	if err := appScheduler.RunAutoBackup(); err != nil {
		return err
	}
	fmt.Println("Automatic backup completed.")
	return nil
}

func runEmergencyList(cmd *cobra.Command, args []string) error {
	backups, err := appScheduler.ListEmergencyBackups()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(backups)
	}
	if len(backups) == 0 {
		fmt.Println("No emergency backups.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  %s\n", b.ID, formatDateTime(b.Date), b.Name)
	}
	return nil
}

func runEmergencyRestore(cmd *cobra.Command, args []string) error {
	data, err := appScheduler.RestoreEmergencyBackup(args[0])
	if err != nil {
		return err
	}
	if !backupYes {
		fmt.Printf("Restoring replaces all live data with %d products, %d sales, %d expense types, %d expenses, %d stock movements.\n",
			len(data.Products), len(data.Sales), len(data.ExpenseTypes), len(data.Expenses), len(data.StockMovements))
		fmt.Println("Re-run with --yes to confirm.")
		return nil
	}
	if err := backup.Restore(appStore, data); err != nil {
		return err
	}
	fmt.Println("Emergency backup restored.")
	return nil
}

func runEmergencyRemove(cmd *cobra.Command, args []string) error {
	if err := appScheduler.RemoveEmergencyBackup(args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed emergency backup %s\n", args[0])
	return nil
}
