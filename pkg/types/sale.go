package types

import "time"

// Sale is one sold line item. ProductName and UnitPrice are snapshots
// taken from the product at sale time; removing or renaming the product
// later does not rewrite them. TotalValue = Quantity * UnitPrice.
type Sale struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"produtoId"`
	ProductName string    `json:"nomeProduto"`
	Quantity    int       `json:"quantidade"`
	UnitPrice   float64   `json:"precoUnitario"`
	TotalValue  float64   `json:"valorTotal"`
	Date        time.Time `json:"data"`
}

// SaleItem is one requested line of a sale batch.
type SaleItem struct {
	ProductID string
	Quantity  int
}
