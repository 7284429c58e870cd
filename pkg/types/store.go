package types

// Collection keys. Each collection is stored under its own key and
// updated independently; there are no cross-key transactions.
const (
	KeyProducts         = "produtos"
	KeySales            = "vendas"
	KeyExpenseTypes     = "tiposDespesa"
	KeyExpenses         = "despesas"
	KeyStockMovements   = "historicoEstoque"
	KeySchedulerConfig  = "backupConfig"
	KeyEmergencyBackups = "backupsEmergencia"
)

// Store is the persisted named-collection accessor. Writes are observable
// by subsequent reads within the same process.
type Store interface {
	// Get unmarshals the value stored under key into out. A missing key
	// or unparseable content leaves out untouched (the caller-supplied
	// default survives) and returns nil; only infrastructure failures
	// return an error.
	Get(key string, out any) error

	// Set marshals value and persists it under key immediately.
	Set(key string, value any) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Supported store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
}

// Config holds backend selection and parameters for opening a Store.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
