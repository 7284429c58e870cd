package types

import "time"

// BackupVersion is the snapshot document version written by the
// serializer. Readers accept older documents that predate the stock
// movement collection.
const BackupVersion = "1.0.0"

// Backup document types.
const (
	BackupAutomatic = "automatico"
)

// BackupData holds the five collections of a snapshot verbatim.
// StockMovements is optional on read; older backups predate it.
type BackupData struct {
	Products       []Product       `json:"produtos"`
	Sales          []Sale          `json:"vendas"`
	ExpenseTypes   []ExpenseType   `json:"tiposDespesa"`
	Expenses       []Expense       `json:"despesas"`
	StockMovements []StockMovement `json:"historicoEstoque"`
}

// BackupStats summarizes collection sizes, computed at serialization time.
type BackupStats struct {
	TotalProducts       int `json:"totalProdutos"`
	TotalSales          int `json:"totalVendas"`
	TotalExpenseTypes   int `json:"totalTiposDespesa"`
	TotalExpenses       int `json:"totalDespesas"`
	TotalStockMovements int `json:"totalHistoricoEstoque"`
}

// BackupDocument is a full versioned snapshot of the ledger.
type BackupDocument struct {
	Version   string      `json:"versao"`
	CreatedAt time.Time   `json:"dataBackup"`
	Type      string      `json:"tipo,omitempty"`
	Data      BackupData  `json:"dados"`
	Stats     BackupStats `json:"estatisticas"`
}

// EmergencyBackup is one entry of the bounded rotating list the scheduler
// keeps alongside the external sink copy.
type EmergencyBackup struct {
	ID       string         `json:"id"`
	Name     string         `json:"nome"`
	Date     time.Time      `json:"data"`
	Document BackupDocument `json:"dados"`
}

// SchedulerConfig drives the automatic backup scheduler. Created with
// defaults on first use and mutated only through Scheduler.Configure.
type SchedulerConfig struct {
	AutoBackupEnabled bool       `json:"autoBackupEnabled"`
	IntervalDays      int        `json:"backupInterval"`
	LastBackupAt      *time.Time `json:"lastBackupDate"`
	MaxRetained       int        `json:"maxBackupsToKeep"`
}

// DefaultSchedulerConfig returns the first-use scheduler configuration:
// disabled, 7-day interval, never backed up, retain 5.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		AutoBackupEnabled: false,
		IntervalDays:      7,
		LastBackupAt:      nil,
		MaxRetained:       5,
	}
}
