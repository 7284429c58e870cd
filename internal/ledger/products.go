package ledger

import (
	"fmt"
	"strings"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

// initialStockNote is the note recorded on the movement created when a
// product is registered with stock.
const initialStockNote = "Cadastro inicial do produto"

// RegisterProduct creates a product with a trimmed unique name, a price
// greater than zero, and a non-negative initial stock. SoldQuantity
// starts at zero. When initialStock is positive, one stock movement of
// kind cadastro_inicial (0 -> initialStock) is appended.
func (l *Ledger) RegisterProduct(name string, price float64, initialStock int) (types.Product, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return types.Product{}, types.ErrBlankName
	}
	if price <= 0 {
		return types.Product{}, types.ErrInvalidPrice
	}
	if initialStock < 0 {
		return types.Product{}, types.ErrInvalidStock
	}

	products, err := l.Products()
	if err != nil {
		return types.Product{}, err
	}
	for _, p := range products {
		if types.NormalizeName(p.Name) == types.NormalizeName(trimmed) {
			return types.Product{}, fmt.Errorf("%w: %q", types.ErrDuplicateName, trimmed)
		}
	}

	product := types.Product{
		ID:            newID(),
		Name:          trimmed,
		Price:         price,
		StockQuantity: initialStock,
		SoldQuantity:  0,
		RegisteredAt:  nowFunc(),
	}

	if err := l.store.Set(types.KeyProducts, append(products, product)); err != nil {
		return types.Product{}, err
	}

	if initialStock > 0 {
		if err := l.appendMovement(product, types.MovementInitial, initialStock, 0, initialStockNote); err != nil {
			return types.Product{}, err
		}
	}
	return product, nil
}

// AddStock increments a product's stock and appends a movement of kind
// adicao recording the stock before and after. The note is optional.
func (l *Ledger) AddStock(productID string, quantity int, note string) (types.Product, error) {
	if quantity <= 0 {
		return types.Product{}, types.ErrInvalidQuantity
	}

	products, err := l.Products()
	if err != nil {
		return types.Product{}, err
	}
	idx := productIndex(products, productID)
	if idx < 0 {
		return types.Product{}, fmt.Errorf("%w: %s", types.ErrProductNotFound, productID)
	}

	before := products[idx].StockQuantity
	products[idx].StockQuantity = before + quantity

	if err := l.store.Set(types.KeyProducts, products); err != nil {
		return types.Product{}, err
	}
	if err := l.appendMovement(products[idx], types.MovementAddition, quantity, before, note); err != nil {
		return types.Product{}, err
	}
	return products[idx], nil
}

// EditProduct overwrites a product's name, price, and stock quantity.
// The stock overwrite is direct and does not append a movement, so the
// movement trail no longer fully explains the current count after an
// edit that changes stock. SoldQuantity is untouched.
func (l *Ledger) EditProduct(productID, newName string, newPrice float64, newStock int) (types.Product, error) {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return types.Product{}, types.ErrBlankName
	}
	if newPrice <= 0 {
		return types.Product{}, types.ErrInvalidPrice
	}
	if newStock < 0 {
		return types.Product{}, types.ErrInvalidStock
	}

	products, err := l.Products()
	if err != nil {
		return types.Product{}, err
	}
	idx := productIndex(products, productID)
	if idx < 0 {
		return types.Product{}, fmt.Errorf("%w: %s", types.ErrProductNotFound, productID)
	}
	for _, p := range products {
		if p.ID != productID && types.NormalizeName(p.Name) == types.NormalizeName(trimmed) {
			return types.Product{}, fmt.Errorf("%w: %q", types.ErrDuplicateName, trimmed)
		}
	}

	products[idx].Name = trimmed
	products[idx].Price = newPrice
	products[idx].StockQuantity = newStock

	if err := l.store.Set(types.KeyProducts, products); err != nil {
		return types.Product{}, err
	}
	return products[idx], nil
}

// RemoveProduct deletes a product unconditionally. Sales and stock
// movements referencing it are retained with their denormalized name,
// now orphaned.
func (l *Ledger) RemoveProduct(productID string) error {
	products, err := l.Products()
	if err != nil {
		return err
	}
	idx := productIndex(products, productID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", types.ErrProductNotFound, productID)
	}
	return l.store.Set(types.KeyProducts, append(products[:idx], products[idx+1:]...))
}

// appendMovement appends one stock movement for the given product.
// Movements are append-only; nothing in the engine edits or deletes them.
func (l *Ledger) appendMovement(p types.Product, kind string, quantity, before int, note string) error {
	movements, err := l.StockMovements()
	if err != nil {
		return err
	}
	m := types.StockMovement{
		ID:          newID(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Kind:        kind,
		Quantity:    quantity,
		StockBefore: before,
		StockAfter:  before + quantity,
		Date:        nowFunc(),
		Note:        note,
	}
	return l.store.Set(types.KeyStockMovements, append(movements, m))
}

func productIndex(products []types.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
