package pricing

import "example.com/creator-rates/backend/internal/models"

// MonthlyTotal суммирует месячные расходы по всем категориям.
func MonthlyTotal(expenses []models.Expense) float64 {
	var total float64
	for _, expense := range expenses {
		total += expense.MonthlyCost
	}
	return total
}

// AnnualExpenses возвращает годовые расходы (месячные × 12).
func AnnualExpenses(expenses []models.Expense) float64 {
	return MonthlyTotal(expenses) * 12
}
