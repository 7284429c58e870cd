package types

// Summary is the financial summary of one YYYY-MM month:
// revenue from sales, total expenses, and the resulting profit.
type Summary struct {
	Revenue  float64 `json:"receitas"`
	Expenses float64 `json:"despesas"`
	Profit   float64 `json:"lucro"`
	Month    string  `json:"mes"`
}
