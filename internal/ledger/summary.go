package ledger

import "github.com/leandrodevsilva/Gestoque/pkg/types"

const monthLayout = "2006-01"

// MonthlySummary sums sale totals and expense amounts for the given
// YYYY-MM month and returns revenue, expenses, and profit.
func (l *Ledger) MonthlySummary(month string) (types.Summary, error) {
	sales, err := l.Sales()
	if err != nil {
		return types.Summary{}, err
	}
	expenses, err := l.Expenses()
	if err != nil {
		return types.Summary{}, err
	}

	summary := types.Summary{Month: month}
	for _, s := range sales {
		if s.Date.Format(monthLayout) == month {
			summary.Revenue += s.TotalValue
		}
	}
	for _, e := range expenses {
		if e.Date.Format(monthLayout) == month {
			summary.Expenses += e.Amount
		}
	}
	summary.Profit = summary.Revenue - summary.Expenses
	return summary, nil
}
