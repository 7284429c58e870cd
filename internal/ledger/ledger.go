// Package ledger implements the invariant-preserving mutation operations
// over products, sales, expense types, expenses, and stock movements.
//
// Every operation follows the same shape: read the full collections from
// the store, validate all inputs, compute wholly new collection values,
// and write them back. Validation always completes before any write, so
// a rejected operation never leaves a partial mutation behind.
package ledger

import (
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

// Ledger exposes the mutation operations. It holds no state of its own;
// all reads and writes go through the store.
type Ledger struct {
	store types.Store
}

// New returns a Ledger backed by the given store.
func New(store types.Store) *Ledger {
	return &Ledger{store: store}
}

// Products returns the product collection.
func (l *Ledger) Products() ([]types.Product, error) {
	var ps []types.Product
	if err := l.store.Get(types.KeyProducts, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// Sales returns the sale collection.
func (l *Ledger) Sales() ([]types.Sale, error) {
	var ss []types.Sale
	if err := l.store.Get(types.KeySales, &ss); err != nil {
		return nil, err
	}
	return ss, nil
}

// ExpenseTypes returns the expense type collection.
func (l *Ledger) ExpenseTypes() ([]types.ExpenseType, error) {
	var ts []types.ExpenseType
	if err := l.store.Get(types.KeyExpenseTypes, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// Expenses returns the expense collection.
func (l *Ledger) Expenses() ([]types.Expense, error) {
	var es []types.Expense
	if err := l.store.Get(types.KeyExpenses, &es); err != nil {
		return nil, err
	}
	return es, nil
}

// StockMovements returns the stock movement collection.
func (l *Ledger) StockMovements() ([]types.StockMovement, error) {
	var ms []types.StockMovement
	if err := l.store.Get(types.KeyStockMovements, &ms); err != nil {
		return nil, err
	}
	return ms, nil
}
