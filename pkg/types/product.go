package types

import (
	"strings"
	"time"
)

// Product is a sellable item with a live stock counter and a cumulative
// sold counter. StockQuantity and SoldQuantity never go negative;
// SoldQuantity changes only through sale record/edit/delete operations.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"nome"`
	Price         float64   `json:"preco"`
	StockQuantity int       `json:"quantidadeEstoque"`
	SoldQuantity  int       `json:"quantidadeVendida"`
	RegisteredAt  time.Time `json:"dataCadastro"`
}

// NormalizeName trims and lowercases a name for case-insensitive
// uniqueness comparison. Product and expense-type names that differ only
// in case or surrounding whitespace are considered equal.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
