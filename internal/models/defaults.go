package models

import "github.com/google/uuid"

const DataVersion = "1.0"

var defaultExpenseCategories = []string{
	"Housing",
	"Food",
	"Transport",
	"Health",
	"Internet",
	"Software",
	"AI Tooling",
	"Equipment",
	"Subscriptions",
	"Professional",
	"Leisure",
	"Misc",
}

// DefaultExpenses возвращает стартовый набор категорий расходов с нулевыми суммами.
func DefaultExpenses() []Expense {
	expenses := make([]Expense, 0, len(defaultExpenseCategories))
	for _, category := range defaultExpenseCategories {
		expenses = append(expenses, Expense{ID: uuid.New(), Category: category, MonthlyCost: 0})
	}
	return expenses
}

// DefaultIncomeSettings возвращает настройки дохода по умолчанию.
func DefaultIncomeSettings() IncomeSettings {
	return IncomeSettings{
		TaxRate:         30,
		EmergencyBuffer: 20,
		Reinvestment:    10,
		WeeksPerYear:    48,
		DaysPerWeek:     3,
		HoursPerDay:     4,
	}
}

// DefaultCreatorProfile возвращает профиль креатора по умолчанию.
func DefaultCreatorProfile() CreatorProfile {
	return CreatorProfile{
		Type:            CreatorTypeDigital,
		ExperienceLevel: ExperienceMid,
		ProjectTerms:    TermsStandard,
	}
}

// DefaultPricingSession собирает новую сессию расчета со значениями по умолчанию.
func DefaultPricingSession(title string) PricingSession {
	return PricingSession{
		Title:          title,
		Expenses:       DefaultExpenses(),
		IncomeSettings: DefaultIncomeSettings(),
		Creator:        DefaultCreatorProfile(),
		RateTier:       TierRecommended,
		Markup:         0,
		CustomServices: []CustomService{},
	}
}

// DefaultContractData возвращает данные договора по умолчанию.
func DefaultContractData() ContractData {
	return ContractData{
		ContractType: ContractTypeDigital,
		Sections: ContractSections{
			ScopeOfWork: true,
		},
		Currency:          "USD",
		RevisionsLimit:    "2 rounds",
		RevisionsTimeline: "5 business days",
		ConfidentialitySubclauses: ConfidentialitySubclauses{
			DefineConfidential: true,
			Exclusions:         true,
			PortfolioRights:    true,
			Duration:           true,
		},
		ConfidentialityDuration: "3 years",
		PortfolioUsageDelay:     "upon project completion",
		CustomClauses:           []CustomClause{},
		Version:                 DataVersion,
	}
}
