package handlers

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"example.com/creator-rates/backend/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func detailSession(creatorType models.CreatorType) models.PricingSession {
	session := models.DefaultPricingSession("Detail Test")
	session.ID = uuid.New()
	session.Expenses = []models.Expense{
		{ID: uuid.New(), Category: "Housing", MonthlyCost: 2000},
	}
	session.Creator.Type = creatorType
	return session
}

// TestBuildSessionDetailIncome проверяет расчетную выкладку дохода в ответе.
func TestBuildSessionDetailIncome(t *testing.T) {
	detail := buildSessionDetailResponse(detailSession(models.CreatorTypeDigital))

	income := detail.Breakdown.Income
	if !almostEqual(income.MonthlyExpenses, 2000) {
		t.Fatalf("unexpected monthly expenses: %f", income.MonthlyExpenses)
	}
	if !almostEqual(income.AnnualExpenses, 24000) {
		t.Fatalf("unexpected annual expenses: %f", income.AnnualExpenses)
	}
	if !almostEqual(income.TargetIncome, 24000*1.6) {
		t.Fatalf("unexpected target income: %f", income.TargetIncome)
	}
	if !almostEqual(income.BillableHours, 48*3*4) {
		t.Fatalf("unexpected billable hours: %f", income.BillableHours)
	}
	if !almostEqual(income.RecommendedHourlyRate, income.BaseHourlyRate*1.25) {
		t.Fatalf("unexpected recommended rate: %f", income.RecommendedHourlyRate)
	}
}

// TestBuildSessionDetailBreakdownByType проверяет наличие нужных блоков по типу креатора.
func TestBuildSessionDetailBreakdownByType(t *testing.T) {
	digital := buildSessionDetailResponse(detailSession(models.CreatorTypeDigital))
	if digital.Breakdown.Physical != nil || digital.Breakdown.Content != nil {
		t.Fatal("digital breakdown must not include physical or content pricing")
	}
	if len(digital.Breakdown.Services) == 0 {
		t.Fatal("expected services for digital creator")
	}

	physical := buildSessionDetailResponse(detailSession(models.CreatorTypePhysical))
	if physical.Breakdown.Physical == nil {
		t.Fatal("expected physical pricing block")
	}
	if physical.Breakdown.Content != nil {
		t.Fatal("unexpected content pricing block")
	}

	content := buildSessionDetailResponse(detailSession(models.CreatorTypeContent))
	if content.Breakdown.Content == nil {
		t.Fatal("expected content pricing block")
	}
	if content.Breakdown.Physical != nil {
		t.Fatal("unexpected physical pricing block")
	}
}

// TestBuildSessionDetailRates проверяет аддитивную маржу в блоке ставок.
func TestBuildSessionDetailRates(t *testing.T) {
	session := detailSession(models.CreatorTypeDigital)
	session.Markup = 10

	rates := buildSessionDetailResponse(session).Breakdown.Rates
	if rates.Tier != models.TierRecommended {
		t.Fatalf("unexpected tier: %s", rates.Tier)
	}
	if !almostEqual(rates.TierMarkup, 25) {
		t.Fatalf("unexpected tier markup: %f", rates.TierMarkup)
	}
	if !almostEqual(rates.TotalMargin, 35) {
		t.Fatalf("unexpected total margin: %f", rates.TotalMargin)
	}
	if !almostEqual(rates.SelectedHourly, rates.RawBaseHourly*1.25) {
		t.Fatalf("unexpected selected hourly: %f", rates.SelectedHourly)
	}
}

// TestBuildSessionDetailCustomServices проверяет расчет кастомных услуг в ответе.
func TestBuildSessionDetailCustomServices(t *testing.T) {
	session := detailSession(models.CreatorTypeDigital)
	session.CustomServices = []models.CustomService{
		{ID: uuid.New(), Name: "Brand Audit", DeliveryHours: 3, PrepHours: 1},
	}

	detail := buildSessionDetailResponse(session)
	if len(detail.Breakdown.CustomServices) != 1 {
		t.Fatalf("expected 1 custom service, got %d", len(detail.Breakdown.CustomServices))
	}

	service := detail.Breakdown.CustomServices[0]
	if service.Name != "Brand Audit" {
		t.Fatalf("unexpected service name: %s", service.Name)
	}
	if !almostEqual(service.BasePrice, detail.Breakdown.Rates.TrueBaseHourly*4) {
		t.Fatalf("unexpected base price: %f", service.BasePrice)
	}
	if !almostEqual(service.HourlyRate, detail.Breakdown.Rates.RawBaseHourly*1.25) {
		t.Fatalf("unexpected hourly rate: %f", service.HourlyRate)
	}
}
