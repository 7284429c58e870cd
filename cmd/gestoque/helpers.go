package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
)

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// formatCurrency renders a value in Brazilian reais.
func formatCurrency(value float64) string {
	return money.NewFromFloat(value, money.BRL).Display()
}

// formatDateTime renders a timestamp for table output.
func formatDateTime(t time.Time) string {
	return t.Local().Format("02/01/2006 15:04")
}

// formatDate renders a date for table output.
func formatDate(t time.Time) string {
	return t.Local().Format("02/01/2006")
}
