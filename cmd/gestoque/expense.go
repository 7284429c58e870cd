// Expense commands: type management plus expense record/list/delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expense types and expenses",
}

var (
	expenseTypeName    string
	expenseTypeID      string
	expenseAmount      float64
	expenseDescription string
)

var expenseTypeAddCmd = &cobra.Command{
	Use:   "type-add",
	Short: "Register a new expense type",
	RunE:  runExpenseTypeAdd,
}

var expenseTypeRenameCmd = &cobra.Command{
	Use:   "type-rename <type-id>",
	Short: "Rename an expense type",
	Long: `Rename changes the type's name and updates the recorded type name on
every expense that references it.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpenseTypeRename,
}

var expenseTypeRemoveCmd = &cobra.Command{
	Use:   "type-remove <type-id>",
	Short: "Remove an expense type",
	Long: `Remove deletes the type. Existing expenses keep their recorded
type name.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpenseTypeRemove,
}

var expenseTypeListCmd = &cobra.Command{
	Use:   "type-list",
	Short: "List expense types",
	RunE:  runExpenseTypeList,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	RunE:  runExpenseList,
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <expense-id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseDelete,
}

func init() {
	expenseTypeAddCmd.Flags().StringVar(&expenseTypeName, "name", "", "type name (required)")
	_ = expenseTypeAddCmd.MarkFlagRequired("name")

	expenseTypeRenameCmd.Flags().StringVar(&expenseTypeName, "name", "", "new name (required)")
	_ = expenseTypeRenameCmd.MarkFlagRequired("name")

	expenseAddCmd.Flags().StringVar(&expenseTypeID, "type", "", "expense type id (required)")
	expenseAddCmd.Flags().Float64Var(&expenseAmount, "amount", 0, "amount (required)")
	expenseAddCmd.Flags().StringVar(&expenseDescription, "description", "", "optional description")
	_ = expenseAddCmd.MarkFlagRequired("type")
	_ = expenseAddCmd.MarkFlagRequired("amount")

	expenseCmd.AddCommand(expenseTypeAddCmd)
	expenseCmd.AddCommand(expenseTypeRenameCmd)
	expenseCmd.AddCommand(expenseTypeRemoveCmd)
	expenseCmd.AddCommand(expenseTypeListCmd)
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)
}

func runExpenseTypeAdd(cmd *cobra.Command, args []string) error {
	expType, err := appLedger.RegisterExpenseType(expenseTypeName)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(expType)
	}
	fmt.Printf("Registered expense type %s (%s)\n", expType.ID, expType.Name)
	return nil
}

func runExpenseTypeRename(cmd *cobra.Command, args []string) error {
	expType, err := appLedger.RenameExpenseType(args[0], expenseTypeName)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(expType)
	}
	fmt.Printf("Renamed expense type %s to %s\n", expType.ID, expType.Name)
	return nil
}

func runExpenseTypeRemove(cmd *cobra.Command, args []string) error {
	if err := appLedger.RemoveExpenseType(args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed expense type %s\n", args[0])
	return nil
}

func runExpenseTypeList(cmd *cobra.Command, args []string) error {
	expTypes, err := appLedger.ExpenseTypes()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(expTypes)
	}
	if len(expTypes) == 0 {
		fmt.Println("No expense types registered.")
		return nil
	}
	for _, t := range expTypes {
		fmt.Printf("%s  %-30s since %s\n", t.ID, t.Name, formatDate(t.RegisteredAt))
	}
	return nil
}

func runExpenseAdd(cmd *cobra.Command, args []string) error {
	expense, err := appLedger.RecordExpense(expenseTypeID, expenseAmount, expenseDescription)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(expense)
	}
	fmt.Printf("Recorded expense %s (%s, %s)\n", expense.ID, expense.TypeName, formatCurrency(expense.Amount))
	return nil
}

func runExpenseList(cmd *cobra.Command, args []string) error {
	expenses, err := appLedger.Expenses()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(expenses)
	}
	if len(expenses) == 0 {
		fmt.Println("No expenses recorded.")
		return nil
	}
	for _, e := range expenses {
		fmt.Printf("%s  %s  %-20s %12s  %s\n",
			e.ID, formatDateTime(e.Date), e.TypeName, formatCurrency(e.Amount), e.Description)
	}
	return nil
}

func runExpenseDelete(cmd *cobra.Command, args []string) error {
	if err := appLedger.DeleteExpense(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted expense %s\n", args[0])
	return nil
}
