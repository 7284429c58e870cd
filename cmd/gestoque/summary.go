// Summary command: monthly revenue, expenses, and profit.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var summaryMonth string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show revenue, expenses, and profit for a month",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryMonth, "month", "", "month as YYYY-MM (default: current month)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	month := summaryMonth
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	summary, err := appLedger.MonthlySummary(month)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(summary)
	}
	fmt.Printf("Month:    %s\n", summary.Month)
	fmt.Printf("Revenue:  %s\n", formatCurrency(summary.Revenue))
	fmt.Printf("Expenses: %s\n", formatCurrency(summary.Expenses))
	fmt.Printf("Profit:   %s\n", formatCurrency(summary.Profit))
	return nil
}
