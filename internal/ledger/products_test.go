package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodevsilva/Gestoque/internal/store"
	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	s, err := store.Open(types.Config{Backend: types.BackendFile, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s)
}

func TestRegisterProduct(t *testing.T) {
	l := newTestLedger(t)

	p, err := l.RegisterProduct("  Caneca  ", 10.0, 5)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Caneca", p.Name, "name is trimmed")
	assert.Equal(t, 10.0, p.Price)
	assert.Equal(t, 5, p.StockQuantity)
	assert.Equal(t, 0, p.SoldQuantity)
	assert.False(t, p.RegisteredAt.IsZero())

	movements, err := l.StockMovements()
	require.NoError(t, err)
	require.Len(t, movements, 1, "initial stock records exactly one movement")
	m := movements[0]
	assert.Equal(t, p.ID, m.ProductID)
	assert.Equal(t, "Caneca", m.ProductName)
	assert.Equal(t, types.MovementInitial, m.Kind)
	assert.Equal(t, 5, m.Quantity)
	assert.Equal(t, 0, m.StockBefore)
	assert.Equal(t, 5, m.StockAfter)
	assert.NotEmpty(t, m.Note)
}

func TestRegisterProduct_ZeroStockHasNoMovement(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.RegisterProduct("Caneca", 10, 0)
	require.NoError(t, err)

	movements, err := l.StockMovements()
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestRegisterProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		product string
		price   float64
		stock   int
		wantErr error
	}{
		{"blank name", "   ", 10, 0, types.ErrBlankName},
		{"zero price", "Caneca", 0, 0, types.ErrInvalidPrice},
		{"negative price", "Caneca", -5, 0, types.ErrInvalidPrice},
		{"negative stock", "Caneca", 10, -1, types.ErrInvalidStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)
			_, err := l.RegisterProduct(tt.product, tt.price, tt.stock)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, types.ErrValidation)

			products, err := l.Products()
			require.NoError(t, err)
			assert.Empty(t, products, "rejected registration writes nothing")
		})
	}
}

func TestRegisterProduct_DuplicateName(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.RegisterProduct("Caneca", 10, 1)
	require.NoError(t, err)

	// Differs only in case and surrounding whitespace.
	_, err = l.RegisterProduct("  CANECA ", 12, 3)
	assert.ErrorIs(t, err, types.ErrDuplicateName)

	products, err := l.Products()
	require.NoError(t, err)
	require.Len(t, products, 1, "rejection leaves the collection unchanged")
	assert.Equal(t, "Caneca", products[0].Name)
}

func TestAddStock(t *testing.T) {
	l := newTestLedger(t)
	p, err := l.RegisterProduct("Caneca", 10, 3)
	require.NoError(t, err)

	updated, err := l.AddStock(p.ID, 10, "reposição")
	require.NoError(t, err)
	assert.Equal(t, 13, updated.StockQuantity)

	movements, err := l.StockMovements()
	require.NoError(t, err)
	require.Len(t, movements, 2)
	m := movements[1]
	assert.Equal(t, types.MovementAddition, m.Kind)
	assert.Equal(t, 10, m.Quantity)
	assert.Equal(t, 3, m.StockBefore)
	assert.Equal(t, 13, m.StockAfter)
	assert.Equal(t, "reposição", m.Note)
}

func TestAddStock_Errors(t *testing.T) {
	l := newTestLedger(t)
	p, err := l.RegisterProduct("Caneca", 10, 3)
	require.NoError(t, err)

	_, err = l.AddStock(p.ID, 0, "")
	assert.ErrorIs(t, err, types.ErrInvalidQuantity)

	_, err = l.AddStock("missing", 1, "")
	assert.ErrorIs(t, err, types.ErrProductNotFound)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestEditProduct(t *testing.T) {
	l := newTestLedger(t)
	p, err := l.RegisterProduct("Caneca", 10, 5)
	require.NoError(t, err)
	_, err = l.RecordSale([]types.SaleItem{{ProductID: p.ID, Quantity: 2}})
	require.NoError(t, err)

	updated, err := l.EditProduct(p.ID, "Caneca Grande", 12.5, 20)
	require.NoError(t, err)
	assert.Equal(t, "Caneca Grande", updated.Name)
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, 20, updated.StockQuantity)
	assert.Equal(t, 2, updated.SoldQuantity, "edit never touches the sold counter")

	// The direct stock overwrite bypasses the movement trail.
	movements, err := l.StockMovements()
	require.NoError(t, err)
	assert.Len(t, movements, 1, "edit records no movement")
}

func TestEditProduct_NameCollision(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.RegisterProduct("Caneca", 10, 0)
	require.NoError(t, err)
	p2, err := l.RegisterProduct("Camiseta", 30, 0)
	require.NoError(t, err)

	_, err = l.EditProduct(p2.ID, "caneca", 30, 0)
	assert.ErrorIs(t, err, types.ErrDuplicateName)

	// Keeping its own name is not a collision.
	_, err = l.EditProduct(p2.ID, "CAMISETA", 32, 1)
	assert.NoError(t, err)
}

func TestRemoveProduct_KeepsHistoryAndSales(t *testing.T) {
	l := newTestLedger(t)
	p, err := l.RegisterProduct("Caneca", 10, 5)
	require.NoError(t, err)
	sales, err := l.RecordSale([]types.SaleItem{{ProductID: p.ID, Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, l.RemoveProduct(p.ID))

	products, err := l.Products()
	require.NoError(t, err)
	assert.Empty(t, products)

	// Orphaned records keep their denormalized snapshots.
	gotSales, err := l.Sales()
	require.NoError(t, err)
	require.Len(t, gotSales, 1)
	assert.Equal(t, sales[0], gotSales[0])
	assert.Equal(t, "Caneca", gotSales[0].ProductName)
	assert.Equal(t, 10.0, gotSales[0].UnitPrice)
	assert.Equal(t, 20.0, gotSales[0].TotalValue)

	movements, err := l.StockMovements()
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "Caneca", movements[0].ProductName)

	assert.ErrorIs(t, l.RemoveProduct(p.ID), types.ErrProductNotFound)
}
