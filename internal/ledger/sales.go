package ledger

import (
	"fmt"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

// RecordSale records a batch of line items atomically. Every line is
// validated against the stock counts as they stood at the start of the
// batch before any sale is created; on any failure nothing is written.
//
// The stock check is per line against the pre-batch snapshot: two lines
// for the same product are each checked independently, so their sum can
// exceed stock.
func (l *Ledger) RecordSale(items []types.SaleItem) ([]types.Sale, error) {
	if len(items) == 0 {
		return nil, types.ErrEmptySale
	}

	products, err := l.Products()
	if err != nil {
		return nil, err
	}
	sales, err := l.Sales()
	if err != nil {
		return nil, err
	}

	// Validate every line against the pre-batch snapshot.
	for _, item := range items {
		idx := productIndex(products, item.ProductID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", types.ErrProductNotFound, item.ProductID)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %q", types.ErrInvalidQuantity, products[idx].Name)
		}
		if item.Quantity > products[idx].StockQuantity {
			return nil, fmt.Errorf("%w: product %q has %d in stock, requested %d",
				types.ErrInsufficientStock, products[idx].Name, products[idx].StockQuantity, item.Quantity)
		}
	}

	now := nowFunc()
	created := make([]types.Sale, 0, len(items))
	for _, item := range items {
		idx := productIndex(products, item.ProductID)
		p := products[idx]
		sale := types.Sale{
			ID:          newID(),
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			UnitPrice:   p.Price,
			TotalValue:  p.Price * float64(item.Quantity),
			Date:        now,
		}
		created = append(created, sale)
		products[idx].StockQuantity -= item.Quantity
		products[idx].SoldQuantity += item.Quantity
	}

	if err := l.store.Set(types.KeySales, append(sales, created...)); err != nil {
		return nil, err
	}
	if err := l.store.Set(types.KeyProducts, products); err != nil {
		return nil, err
	}
	return created, nil
}

// EditSale reassigns a sale to a product and quantity. The original
// sale's effect is reversed on its original product first; the new
// quantity is then checked against the post-reversal stock of the new
// product and applied. The sale keeps its id and date but takes the new
// product's name and current price as fresh snapshots.
func (l *Ledger) EditSale(saleID, newProductID string, newQuantity int) (types.Sale, error) {
	if newQuantity <= 0 {
		return types.Sale{}, types.ErrInvalidQuantity
	}

	sales, err := l.Sales()
	if err != nil {
		return types.Sale{}, err
	}
	saleIdx := saleIndex(sales, saleID)
	if saleIdx < 0 {
		return types.Sale{}, fmt.Errorf("%w: %s", types.ErrSaleNotFound, saleID)
	}
	original := sales[saleIdx]

	products, err := l.Products()
	if err != nil {
		return types.Sale{}, err
	}
	origIdx := productIndex(products, original.ProductID)
	if origIdx < 0 {
		return types.Sale{}, fmt.Errorf("%w: original product %s", types.ErrProductNotFound, original.ProductID)
	}
	newIdx := productIndex(products, newProductID)
	if newIdx < 0 {
		return types.Sale{}, fmt.Errorf("%w: %s", types.ErrProductNotFound, newProductID)
	}

	// Reverse the original sale's effect.
	products[origIdx].StockQuantity += original.Quantity
	products[origIdx].SoldQuantity -= original.Quantity

	// Check against the post-reversal stock of the new product.
	if newQuantity > products[newIdx].StockQuantity {
		return types.Sale{}, fmt.Errorf("%w: product %q has %d in stock after reversal, requested %d",
			types.ErrInsufficientStock, products[newIdx].Name, products[newIdx].StockQuantity, newQuantity)
	}

	products[newIdx].StockQuantity -= newQuantity
	products[newIdx].SoldQuantity += newQuantity

	updated := original
	updated.ProductID = newProductID
	updated.ProductName = products[newIdx].Name
	updated.Quantity = newQuantity
	updated.UnitPrice = products[newIdx].Price
	updated.TotalValue = products[newIdx].Price * float64(newQuantity)
	sales[saleIdx] = updated

	if err := l.store.Set(types.KeySales, sales); err != nil {
		return types.Sale{}, err
	}
	if err := l.store.Set(types.KeyProducts, products); err != nil {
		return types.Sale{}, err
	}
	return updated, nil
}

// DeleteSale reverses the sale's stock and sold effect on its product
// (a no-op on product data when the product was removed) and deletes the
// sale record.
func (l *Ledger) DeleteSale(saleID string) error {
	sales, err := l.Sales()
	if err != nil {
		return err
	}
	saleIdx := saleIndex(sales, saleID)
	if saleIdx < 0 {
		return fmt.Errorf("%w: %s", types.ErrSaleNotFound, saleID)
	}
	sale := sales[saleIdx]

	products, err := l.Products()
	if err != nil {
		return err
	}
	if idx := productIndex(products, sale.ProductID); idx >= 0 {
		products[idx].StockQuantity += sale.Quantity
		products[idx].SoldQuantity -= sale.Quantity
		if err := l.store.Set(types.KeyProducts, products); err != nil {
			return err
		}
	}
	return l.store.Set(types.KeySales, append(sales[:saleIdx], sales[saleIdx+1:]...))
}

func saleIndex(sales []types.Sale, id string) int {
	for i, s := range sales {
		if s.ID == id {
			return i
		}
	}
	return -1
}
