// Sale commands: record, list, edit, delete.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Record and manage sales",
}

var (
	saleItems     []string
	saleProductID string
	saleQuantity  int
)

var saleRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a sale of one or more line items",
	Long: `Record registers a batch of line items as individual sales. Every
line is validated against current stock before anything is written;
a failing line rejects the whole batch.

Example:
  gestoque sale record --item <product-id>=2 --item <product-id>=1`,
	RunE: runSaleRecord,
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sales",
	RunE:  runSaleList,
}

var saleEditCmd = &cobra.Command{
	Use:   "edit <sale-id>",
	Short: "Reassign a sale's product and quantity",
	Long: `Edit reverses the sale's effect on its original product, then applies
the new quantity to the chosen product using its current price.`,
	Args: cobra.ExactArgs(1),
	RunE: runSaleEdit,
}

var saleDeleteCmd = &cobra.Command{
	Use:   "delete <sale-id>",
	Short: "Delete a sale and restore its product's stock",
	Args:  cobra.ExactArgs(1),
	RunE:  runSaleDelete,
}

func init() {
	saleRecordCmd.Flags().StringArrayVar(&saleItems, "item", nil, "line item as <product-id>=<quantity> (repeatable, required)")
	_ = saleRecordCmd.MarkFlagRequired("item")

	saleEditCmd.Flags().StringVar(&saleProductID, "product", "", "product id (required)")
	saleEditCmd.Flags().IntVar(&saleQuantity, "quantity", 0, "quantity (required)")
	_ = saleEditCmd.MarkFlagRequired("product")
	_ = saleEditCmd.MarkFlagRequired("quantity")

	saleCmd.AddCommand(saleRecordCmd)
	saleCmd.AddCommand(saleListCmd)
	saleCmd.AddCommand(saleEditCmd)
	saleCmd.AddCommand(saleDeleteCmd)
}

// parseSaleItems parses repeated --item flags of the form id=quantity.
func parseSaleItems(raw []string) ([]types.SaleItem, error) {
	items := make([]types.SaleItem, 0, len(raw))
	for _, r := range raw {
		id, qtyStr, ok := strings.Cut(r, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("%w: item %q must be <product-id>=<quantity>", types.ErrValidation, r)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return nil, fmt.Errorf("%w: item %q has a non-numeric quantity", types.ErrValidation, r)
		}
		items = append(items, types.SaleItem{ProductID: id, Quantity: qty})
	}
	return items, nil
}

func runSaleRecord(cmd *cobra.Command, args []string) error {
	items, err := parseSaleItems(saleItems)
	if err != nil {
		return err
	}
	sales, err := appLedger.RecordSale(items)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(sales)
	}
	var total float64
	for _, s := range sales {
		fmt.Printf("Sold %d x %s for %s\n", s.Quantity, s.ProductName, formatCurrency(s.TotalValue))
		total += s.TotalValue
	}
	fmt.Printf("Total: %s\n", formatCurrency(total))
	return nil
}

func runSaleList(cmd *cobra.Command, args []string) error {
	sales, err := appLedger.Sales()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(sales)
	}
	if len(sales) == 0 {
		fmt.Println("No sales recorded.")
		return nil
	}
	for _, s := range sales {
		fmt.Printf("%s  %s  %-30s x%-4d %12s  %12s\n",
			s.ID, formatDateTime(s.Date), s.ProductName, s.Quantity,
			formatCurrency(s.UnitPrice), formatCurrency(s.TotalValue))
	}
	return nil
}

func runSaleEdit(cmd *cobra.Command, args []string) error {
	sale, err := appLedger.EditSale(args[0], saleProductID, saleQuantity)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(sale)
	}
	fmt.Printf("Updated sale %s: %d x %s for %s\n",
		sale.ID, sale.Quantity, sale.ProductName, formatCurrency(sale.TotalValue))
	return nil
}

func runSaleDelete(cmd *cobra.Command, args []string) error {
	if err := appLedger.DeleteSale(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted sale %s\n", args[0])
	return nil
}
