// Package backup implements the versioned snapshot serializer and the
// automatic backup scheduler.
//
// A snapshot document carries the five ledger collections verbatim plus a
// version tag and computed statistics. Restoring a document is a wholesale
// replacement of the live collections; callers must treat it as a
// destructive, confirmed action.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

// nowFunc and newID are overridable in tests.
var nowFunc = func() time.Time { return time.Now().UTC() }

var newID = func() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

const dateLayout = "2006-01-02"

// ReadData reads the five collections from the store. Missing or corrupt
// slots come back as empty collections.
func ReadData(store types.Store) (types.BackupData, error) {
	var data types.BackupData
	reads := []struct {
		key string
		out any
	}{
		{types.KeyProducts, &data.Products},
		{types.KeySales, &data.Sales},
		{types.KeyExpenseTypes, &data.ExpenseTypes},
		{types.KeyExpenses, &data.Expenses},
		{types.KeyStockMovements, &data.StockMovements},
	}
	for _, r := range reads {
		if err := store.Get(r.key, r.out); err != nil {
			return types.BackupData{}, err
		}
	}

	// Collections are always list-shaped on the wire, never null.
	if data.Products == nil {
		data.Products = []types.Product{}
	}
	if data.Sales == nil {
		data.Sales = []types.Sale{}
	}
	if data.ExpenseTypes == nil {
		data.ExpenseTypes = []types.ExpenseType{}
	}
	if data.Expenses == nil {
		data.Expenses = []types.Expense{}
	}
	if data.StockMovements == nil {
		data.StockMovements = []types.StockMovement{}
	}
	return data, nil
}

// BuildSnapshot assembles a full snapshot document from the live
// collections. backupType tags automatic backups; pass "" for manual.
func BuildSnapshot(store types.Store, backupType string) (types.BackupDocument, error) {
	data, err := ReadData(store)
	if err != nil {
		return types.BackupDocument{}, err
	}
	return types.BackupDocument{
		Version:   types.BackupVersion,
		CreatedAt: nowFunc(),
		Type:      backupType,
		Data:      data,
		Stats: types.BackupStats{
			TotalProducts:       len(data.Products),
			TotalSales:          len(data.Sales),
			TotalExpenseTypes:   len(data.ExpenseTypes),
			TotalExpenses:       len(data.Expenses),
			TotalStockMovements: len(data.StockMovements),
		},
	}, nil
}

// Serialize encodes a document as two-space-indented JSON.
func Serialize(doc types.BackupDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// ParseAndValidate decodes a snapshot document and enforces its
// structure: the versao and dados fields must be present and the four
// required collections must be list-shaped. historicoEstoque is optional
// and defaults to empty, for backups that predate the movement trail.
// All failures wrap ErrCorruptBackup.
func ParseAndValidate(content []byte) (types.BackupDocument, error) {
	var envelope struct {
		Version   string                     `json:"versao"`
		CreatedAt time.Time                  `json:"dataBackup"`
		Type      string                     `json:"tipo"`
		Data      map[string]json.RawMessage `json:"dados"`
		Stats     types.BackupStats          `json:"estatisticas"`
	}
	if err := json.Unmarshal(content, &envelope); err != nil {
		return types.BackupDocument{}, fmt.Errorf("%w: %v", types.ErrCorruptBackup, err)
	}
	if envelope.Version == "" {
		return types.BackupDocument{}, fmt.Errorf("%w: missing versao", types.ErrCorruptBackup)
	}
	if envelope.Data == nil {
		return types.BackupDocument{}, fmt.Errorf("%w: missing dados", types.ErrCorruptBackup)
	}

	doc := types.BackupDocument{
		Version:   envelope.Version,
		CreatedAt: envelope.CreatedAt,
		Type:      envelope.Type,
		Stats:     envelope.Stats,
	}

	required := []struct {
		key string
		out any
	}{
		{types.KeyProducts, &doc.Data.Products},
		{types.KeySales, &doc.Data.Sales},
		{types.KeyExpenseTypes, &doc.Data.ExpenseTypes},
		{types.KeyExpenses, &doc.Data.Expenses},
	}
	for _, r := range required {
		raw, ok := envelope.Data[r.key]
		if !ok {
			return types.BackupDocument{}, fmt.Errorf("%w: missing collection %s", types.ErrCorruptBackup, r.key)
		}
		if !isList(raw) {
			return types.BackupDocument{}, fmt.Errorf("%w: collection %s is not a list", types.ErrCorruptBackup, r.key)
		}
		if err := json.Unmarshal(raw, r.out); err != nil {
			return types.BackupDocument{}, fmt.Errorf("%w: collection %s: %v", types.ErrCorruptBackup, r.key, err)
		}
	}

	// Absent or null movements read as empty; only a present non-list
	// value is malformed.
	if raw, ok := envelope.Data[types.KeyStockMovements]; ok && !isNull(raw) {
		if !isList(raw) {
			return types.BackupDocument{}, fmt.Errorf("%w: collection %s is not a list", types.ErrCorruptBackup, types.KeyStockMovements)
		}
		if err := json.Unmarshal(raw, &doc.Data.StockMovements); err != nil {
			return types.BackupDocument{}, fmt.Errorf("%w: collection %s: %v", types.ErrCorruptBackup, types.KeyStockMovements, err)
		}
	}
	if doc.Data.StockMovements == nil {
		doc.Data.StockMovements = []types.StockMovement{}
	}

	return doc, nil
}

// isList reports whether raw JSON content is an array.
func isList(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// isNull reports whether raw JSON content is the null literal.
func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// Restore replaces the five live collections with the document's data.
// Destructive: callers must confirm with the user before invoking.
func Restore(store types.Store, data types.BackupData) error {
	writes := []struct {
		key   string
		value any
	}{
		{types.KeyProducts, data.Products},
		{types.KeySales, data.Sales},
		{types.KeyExpenseTypes, data.ExpenseTypes},
		{types.KeyExpenses, data.Expenses},
		{types.KeyStockMovements, data.StockMovements},
	}
	for _, w := range writes {
		if err := store.Set(w.key, w.value); err != nil {
			return err
		}
	}
	return nil
}

// ManualFilename names a manual full backup: ISO date plus a millisecond
// uniqueness suffix.
func ManualFilename(t time.Time) string {
	return fmt.Sprintf("backup-produtos-%s-%d.json", t.Format(dateLayout), t.UnixMilli())
}

// AutoFilename names an automatic backup. Daily granularity: a second run
// on the same day overwrites the first.
func AutoFilename(t time.Time) string {
	return fmt.Sprintf("backup-auto-produtos-%s.json", t.Format(dateLayout))
}

// HumanSize renders a byte count for display: bytes below 1024, KB with
// one decimal below 1 MiB, MB with one decimal above.
func HumanSize(bytes int) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
