package ledger

import (
	"fmt"
	"strings"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

// RegisterExpenseType creates an expense type with a trimmed name that is
// unique case-insensitively.
func (l *Ledger) RegisterExpenseType(name string) (types.ExpenseType, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return types.ExpenseType{}, types.ErrBlankName
	}

	expTypes, err := l.ExpenseTypes()
	if err != nil {
		return types.ExpenseType{}, err
	}
	for _, t := range expTypes {
		if types.NormalizeName(t.Name) == types.NormalizeName(trimmed) {
			return types.ExpenseType{}, fmt.Errorf("%w: %q", types.ErrDuplicateName, trimmed)
		}
	}

	expType := types.ExpenseType{
		ID:           newID(),
		Name:         trimmed,
		RegisteredAt: nowFunc(),
	}
	if err := l.store.Set(types.KeyExpenseTypes, append(expTypes, expType)); err != nil {
		return types.ExpenseType{}, err
	}
	return expType, nil
}

// RenameExpenseType changes a type's name and propagates the new name to
// the denormalized TypeName of every expense referencing the type.
func (l *Ledger) RenameExpenseType(typeID, newName string) (types.ExpenseType, error) {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return types.ExpenseType{}, types.ErrBlankName
	}

	expTypes, err := l.ExpenseTypes()
	if err != nil {
		return types.ExpenseType{}, err
	}
	idx := expenseTypeIndex(expTypes, typeID)
	if idx < 0 {
		return types.ExpenseType{}, fmt.Errorf("%w: %s", types.ErrExpenseTypeNotFound, typeID)
	}
	for _, t := range expTypes {
		if t.ID != typeID && types.NormalizeName(t.Name) == types.NormalizeName(trimmed) {
			return types.ExpenseType{}, fmt.Errorf("%w: %q", types.ErrDuplicateName, trimmed)
		}
	}

	expenses, err := l.Expenses()
	if err != nil {
		return types.ExpenseType{}, err
	}

	expTypes[idx].Name = trimmed
	for i := range expenses {
		if expenses[i].TypeID == typeID {
			expenses[i].TypeName = trimmed
		}
	}

	if err := l.store.Set(types.KeyExpenseTypes, expTypes); err != nil {
		return types.ExpenseType{}, err
	}
	if err := l.store.Set(types.KeyExpenses, expenses); err != nil {
		return types.ExpenseType{}, err
	}
	return expTypes[idx], nil
}

// RemoveExpenseType deletes a type without cascading: expenses keep their
// denormalized type name and a now-orphaned type id.
func (l *Ledger) RemoveExpenseType(typeID string) error {
	expTypes, err := l.ExpenseTypes()
	if err != nil {
		return err
	}
	idx := expenseTypeIndex(expTypes, typeID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", types.ErrExpenseTypeNotFound, typeID)
	}
	return l.store.Set(types.KeyExpenseTypes, append(expTypes[:idx], expTypes[idx+1:]...))
}

// RecordExpense creates an expense with a positive amount, a resolved
// type, a snapshot of the type name, and an optional description.
func (l *Ledger) RecordExpense(typeID string, amount float64, description string) (types.Expense, error) {
	if amount <= 0 {
		return types.Expense{}, types.ErrInvalidAmount
	}

	expTypes, err := l.ExpenseTypes()
	if err != nil {
		return types.Expense{}, err
	}
	idx := expenseTypeIndex(expTypes, typeID)
	if idx < 0 {
		return types.Expense{}, fmt.Errorf("%w: %s", types.ErrExpenseTypeNotFound, typeID)
	}

	expenses, err := l.Expenses()
	if err != nil {
		return types.Expense{}, err
	}

	expense := types.Expense{
		ID:          newID(),
		TypeID:      typeID,
		TypeName:    expTypes[idx].Name,
		Description: description,
		Amount:      amount,
		Date:        nowFunc(),
	}
	if err := l.store.Set(types.KeyExpenses, append(expenses, expense)); err != nil {
		return types.Expense{}, err
	}
	return expense, nil
}

// DeleteExpense removes an expense. No other entity is touched.
func (l *Ledger) DeleteExpense(expenseID string) error {
	expenses, err := l.Expenses()
	if err != nil {
		return err
	}
	for i, e := range expenses {
		if e.ID == expenseID {
			return l.store.Set(types.KeyExpenses, append(expenses[:i], expenses[i+1:]...))
		}
	}
	return fmt.Errorf("%w: %s", types.ErrExpenseNotFound, expenseID)
}

func expenseTypeIndex(expTypes []types.ExpenseType, id string) int {
	for i, t := range expTypes {
		if t.ID == id {
			return i
		}
	}
	return -1
}
