package types

import "time"

// ExpenseType is a user-defined expense category. Names are unique
// case-insensitively.
type ExpenseType struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	RegisteredAt time.Time `json:"dataCadastro"`
}

// Expense references an ExpenseType by id and carries a denormalized
// TypeName snapshot. Deleting the type orphans the id but the name on the
// expense is preserved; renaming the type propagates to TypeName.
type Expense struct {
	ID          string    `json:"id"`
	TypeID      string    `json:"tipoId"`
	TypeName    string    `json:"nomeTipo"`
	Description string    `json:"descricao"`
	Amount      float64   `json:"valor"`
	Date        time.Time `json:"data"`
}
