package pricing

import "example.com/creator-rates/backend/internal/models"

type IncomeBreakdown struct {
	AnnualExpenses     float64
	TaxAmount          float64
	BufferAmount       float64
	ReinvestmentAmount float64
	TargetIncome       float64
	BillableHours      float64
}

// ComputeIncome выводит целевой годовой доход и биллинговые часы из расходов и настроек.
func ComputeIncome(annualExpenses float64, settings models.IncomeSettings) IncomeBreakdown {
	breakdown := IncomeBreakdown{AnnualExpenses: annualExpenses}

	breakdown.TaxAmount = annualExpenses * settings.TaxRate / 100
	breakdown.BufferAmount = annualExpenses * settings.EmergencyBuffer / 100
	breakdown.ReinvestmentAmount = annualExpenses * settings.Reinvestment / 100
	breakdown.TargetIncome = annualExpenses + breakdown.TaxAmount + breakdown.BufferAmount + breakdown.ReinvestmentAmount
	breakdown.BillableHours = settings.WeeksPerYear * settings.DaysPerWeek * settings.HoursPerDay

	return breakdown
}

// BaseHourlyRate возвращает безубыточную ставку; при нулевых часах ставка равна нулю.
func (b IncomeBreakdown) BaseHourlyRate() float64 {
	if b.BillableHours <= 0 {
		return 0
	}
	return b.TargetIncome / b.BillableHours
}

// RecommendedHourlyRate возвращает базовую ставку с надбавкой 25%.
func (b IncomeBreakdown) RecommendedHourlyRate() float64 {
	return b.BaseHourlyRate() * 1.25
}
