// Product commands: register, list, edit, remove, add-stock, history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products and stock",
}

var (
	productName  string
	productPrice float64
	productStock int
	stockNote    string
)

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new product",
	Long: `Add registers a product with a unique name, a unit price, and an
initial stock quantity. A positive initial stock is recorded as the
product's first stock movement.

Example:
  gestoque product add --name "Caneca" --price 10.00 --stock 5`,
	RunE: runProductAdd,
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE:  runProductList,
}

var productEditCmd = &cobra.Command{
	Use:   "edit <product-id>",
	Short: "Edit a product's name, price, and stock",
	Long: `Edit overwrites a product's name, price, and stock quantity.
The stock overwrite does not create a stock movement.`,
	Args: cobra.ExactArgs(1),
	RunE: runProductEdit,
}

var productRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product",
	Long: `Remove deletes a product. Sales and stock movements that reference
it keep their recorded product name.`,
	Args: cobra.ExactArgs(1),
	RunE: runProductRemove,
}

var productAddStockCmd = &cobra.Command{
	Use:   "add-stock <product-id>",
	Short: "Add stock to a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductAddStock,
}

var productHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the stock movement history",
	RunE:  runProductHistory,
}

func init() {
	productAddCmd.Flags().StringVar(&productName, "name", "", "product name (required)")
	productAddCmd.Flags().Float64Var(&productPrice, "price", 0, "unit price (required)")
	productAddCmd.Flags().IntVar(&productStock, "stock", 0, "initial stock quantity")
	_ = productAddCmd.MarkFlagRequired("name")
	_ = productAddCmd.MarkFlagRequired("price")

	productEditCmd.Flags().StringVar(&productName, "name", "", "new name (required)")
	productEditCmd.Flags().Float64Var(&productPrice, "price", 0, "new unit price (required)")
	productEditCmd.Flags().IntVar(&productStock, "stock", 0, "new stock quantity (required)")
	_ = productEditCmd.MarkFlagRequired("name")
	_ = productEditCmd.MarkFlagRequired("price")
	_ = productEditCmd.MarkFlagRequired("stock")

	productAddStockCmd.Flags().IntVar(&productStock, "quantity", 0, "quantity to add (required)")
	productAddStockCmd.Flags().StringVar(&stockNote, "note", "", "optional note")
	_ = productAddStockCmd.MarkFlagRequired("quantity")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productEditCmd)
	productCmd.AddCommand(productRemoveCmd)
	productCmd.AddCommand(productAddStockCmd)
	productCmd.AddCommand(productHistoryCmd)
}

func runProductAdd(cmd *cobra.Command, args []string) error {
	product, err := appLedger.RegisterProduct(productName, productPrice, productStock)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(product)
	}
	fmt.Printf("Registered product %s (%s, %s, stock %d)\n",
		product.ID, product.Name, formatCurrency(product.Price), product.StockQuantity)
	return nil
}

func runProductList(cmd *cobra.Command, args []string) error {
	products, err := appLedger.Products()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(products)
	}
	if len(products) == 0 {
		fmt.Println("No products registered.")
		return nil
	}
	for _, p := range products {
		fmt.Printf("%s  %-30s %12s  stock %4d  sold %4d  since %s\n",
			p.ID, p.Name, formatCurrency(p.Price), p.StockQuantity, p.SoldQuantity, formatDate(p.RegisteredAt))
	}
	return nil
}

func runProductEdit(cmd *cobra.Command, args []string) error {
	product, err := appLedger.EditProduct(args[0], productName, productPrice, productStock)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(product)
	}
	fmt.Printf("Updated product %s\n", product.ID)
	return nil
}

func runProductRemove(cmd *cobra.Command, args []string) error {
	if err := appLedger.RemoveProduct(args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed product %s\n", args[0])
	return nil
}

func runProductAddStock(cmd *cobra.Command, args []string) error {
	product, err := appLedger.AddStock(args[0], productStock, stockNote)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(product)
	}
	fmt.Printf("Stock of %s is now %d\n", product.Name, product.StockQuantity)
	return nil
}

func runProductHistory(cmd *cobra.Command, args []string) error {
	movements, err := appLedger.StockMovements()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(movements)
	}
	if len(movements) == 0 {
		fmt.Println("No stock movements recorded.")
		return nil
	}
	for _, m := range movements {
		kind := "addition"
		if m.Kind == types.MovementInitial {
			kind = "initial"
		}
		fmt.Printf("%s  %-30s %-8s +%-4d %4d -> %-4d  %s\n",
			formatDateTime(m.Date), m.ProductName, kind, m.Quantity, m.StockBefore, m.StockAfter, m.Note)
	}
	return nil
}
