// Root command for the gestoque CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leandrodevsilva/Gestoque/internal/backup"
	"github.com/leandrodevsilva/Gestoque/internal/ledger"
	"github.com/leandrodevsilva/Gestoque/internal/paths"
	"github.com/leandrodevsilva/Gestoque/internal/store"
	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Shared state initialized by PersistentPreRunE.
var (
	appStore     types.Store
	appLedger    *ledger.Ledger
	appScheduler *backup.Scheduler
	appLogger    *zap.Logger
	dataDir      string
)

var rootCmd = &cobra.Command{
	Use:     "gestoque",
	Short:   "Gestoque is a small-business inventory, sales, and expense tracker",
	Version: version,
	Long: `Gestoque keeps product stock counts, sales records, expenses, and a
stock-movement history mutually consistent, with versioned JSON backups
and an automatic backup scheduler.`,
	PersistentPreRunE:  openApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(saleCmd)
	rootCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(summaryCmd)
}

// openApp resolves directories, loads config, and opens the store, the
// ledger, and the backup scheduler. The scheduler is polled here so a due
// automatic backup fires on any invocation.
func openApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	dataDir, err = paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return err
	}

	appStore, err = store.Open(types.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
	})
	if err != nil {
		return err
	}

	appLogger, err = zap.NewProduction()
	if err != nil {
		return err
	}

	appLedger = ledger.New(appStore)
	appScheduler = backup.NewScheduler(appStore, backup.NewDirSink(dataDir), appLogger)
	appScheduler.Poll()
	return nil
}

// closeApp releases the store and flushes the logger.
func closeApp(cmd *cobra.Command, args []string) error {
	if appLogger != nil {
		_ = appLogger.Sync()
	}
	if appStore != nil {
		return appStore.Close()
	}
	return nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration and data directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Initialized data directory: %s\n", dataDir)
		return nil
	},
}
