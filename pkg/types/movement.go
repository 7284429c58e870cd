package types

import "time"

// Stock movement kinds.
const (
	MovementInitial  = "cadastro_inicial"
	MovementAddition = "adicao"
)

// StockMovement is one append-only audit record of stock entering a
// product. The engine never edits or deletes movements; the collection is
// a derived trail explaining how stock counts came to be.
// StockAfter = StockBefore + Quantity.
type StockMovement struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"produtoId"`
	ProductName string    `json:"nomeProduto"`
	Kind        string    `json:"tipo"`
	Quantity    int       `json:"quantidade"`
	StockBefore int       `json:"estoqueAnterior"`
	StockAfter  int       `json:"estoqueNovo"`
	Date        time.Time `json:"data"`
	Note        string    `json:"observacao,omitempty"`
}
