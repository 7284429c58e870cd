package backup

import (
	"encoding/json"
	"fmt"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

// Subset export kinds.
const (
	ExportProducts  = "produtos"
	ExportSales     = "vendas"
	ExportExpenses  = "despesas"
	ExportMovements = "historico"
)

// ErrUnknownExportKind rejects an unrecognized subset kind.
var ErrUnknownExportKind = fmt.Errorf("%w: unknown export kind", types.ErrValidation)

// ExportSubset serializes one category of data without the version and
// statistics wrapper. Products, sales, and movements export as raw
// arrays; expenses export together with their types as a two-field
// object. Returns the suggested filename and the encoded content.
func ExportSubset(store types.Store, kind string) (string, []byte, error) {
	data, err := ReadData(store)
	if err != nil {
		return "", nil, err
	}

	date := nowFunc().Format(dateLayout)
	var (
		payload any
		name    string
	)
	switch kind {
	case ExportProducts:
		payload = data.Products
		name = fmt.Sprintf("produtos-%s.json", date)
	case ExportSales:
		payload = data.Sales
		name = fmt.Sprintf("vendas-%s.json", date)
	case ExportExpenses:
		payload = struct {
			ExpenseTypes []types.ExpenseType `json:"tiposDespesa"`
			Expenses     []types.Expense     `json:"despesas"`
		}{data.ExpenseTypes, data.Expenses}
		name = fmt.Sprintf("despesas-%s.json", date)
	case ExportMovements:
		payload = data.StockMovements
		name = fmt.Sprintf("historico-estoque-%s.json", date)
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownExportKind, kind)
	}

	content, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", nil, err
	}
	return name, content, nil
}
