package pricing

import (
	"math"
	"testing"

	"example.com/creator-rates/backend/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func digitalSession(monthly float64) models.PricingSession {
	session := models.DefaultPricingSession("test")
	for i := range session.Expenses {
		session.Expenses[i].MonthlyCost = 0
	}
	session.Expenses[0].MonthlyCost = monthly
	return session
}

// TestMonthlyTotal проверяет суммирование расходов по категориям.
func TestMonthlyTotal(t *testing.T) {
	expenses := models.DefaultExpenses()
	expenses[0].MonthlyCost = 1200
	expenses[1].MonthlyCost = 400.50

	if got := MonthlyTotal(expenses); !almostEqual(got, 1600.50) {
		t.Fatalf("expected 1600.50, got %v", got)
	}
	if got := AnnualExpenses(expenses); !almostEqual(got, 1600.50*12) {
		t.Fatalf("expected annual %v, got %v", 1600.50*12, got)
	}
}

// TestComputeIncome проверяет состав целевого дохода и формулу биллинговых часов.
func TestComputeIncome(t *testing.T) {
	settings := models.DefaultIncomeSettings()
	breakdown := ComputeIncome(10000, settings)

	if !almostEqual(breakdown.TaxAmount, 3000) {
		t.Fatalf("expected tax 3000, got %v", breakdown.TaxAmount)
	}
	if !almostEqual(breakdown.BufferAmount, 2000) {
		t.Fatalf("expected buffer 2000, got %v", breakdown.BufferAmount)
	}
	if !almostEqual(breakdown.ReinvestmentAmount, 1000) {
		t.Fatalf("expected reinvestment 1000, got %v", breakdown.ReinvestmentAmount)
	}
	if !almostEqual(breakdown.TargetIncome, 16000) {
		t.Fatalf("expected target 16000, got %v", breakdown.TargetIncome)
	}
	if !almostEqual(breakdown.BillableHours, 48*3*4) {
		t.Fatalf("expected 576 billable hours, got %v", breakdown.BillableHours)
	}
}

// TestBaseRateZeroHours проверяет нулевую ставку при нулевых биллинговых часах.
func TestBaseRateZeroHours(t *testing.T) {
	settings := models.DefaultIncomeSettings()
	settings.HoursPerDay = 0

	breakdown := ComputeIncome(10000, settings)
	if breakdown.BaseHourlyRate() != 0 {
		t.Fatalf("expected zero rate, got %v", breakdown.BaseHourlyRate())
	}
	if breakdown.RecommendedHourlyRate() != 0 {
		t.Fatalf("expected zero recommended rate, got %v", breakdown.RecommendedHourlyRate())
	}
}

// TestRecommendedRateRatio проверяет инвариант recommended = base × 1.25.
func TestRecommendedRateRatio(t *testing.T) {
	breakdown := ComputeIncome(24000, models.DefaultIncomeSettings())
	base := breakdown.BaseHourlyRate()
	if base <= 0 {
		t.Fatal("expected positive base rate")
	}
	if !almostEqual(breakdown.RecommendedHourlyRate(), base*1.25) {
		t.Fatalf("expected %v, got %v", base*1.25, breakdown.RecommendedHourlyRate())
	}
}

// TestExperienceMultiplier проверяет множители уровня опыта.
func TestExperienceMultiplier(t *testing.T) {
	profile := models.CreatorProfile{Type: models.CreatorTypeDigital}

	profile.ExperienceLevel = models.ExperienceJunior
	if got := ExperienceMultiplier(profile); !almostEqual(got, 0.85) {
		t.Fatalf("junior: expected 0.85, got %v", got)
	}

	profile.ExperienceLevel = models.ExperienceMid
	if got := ExperienceMultiplier(profile); !almostEqual(got, 1.0) {
		t.Fatalf("mid: expected 1.0, got %v", got)
	}

	profile.ExperienceLevel = models.ExperienceSenior
	if got := ExperienceMultiplier(profile); !almostEqual(got, 1.20) {
		t.Fatalf("senior: expected 1.20, got %v", got)
	}

	profile.Type = models.CreatorTypeContent
	if got := ExperienceMultiplier(profile); !almostEqual(got, 1.0) {
		t.Fatalf("non-digital: expected 1.0, got %v", got)
	}
}

// TestEngagementMultiplierYouTube проверяет пороги вовлеченности YouTube.
func TestEngagementMultiplierYouTube(t *testing.T) {
	profile := models.CreatorProfile{
		Type:            models.CreatorTypeContent,
		PrimaryPlatform: models.PlatformYouTube,
	}

	cases := []struct {
		rate float64
		want float64
	}{
		{55, 1.2},
		{50, 1.2},
		{20, 1.15},
		{15, 1.08},
		{10, 1.08},
		{5, 1.0},
		{0, 1.0},
	}

	for _, tc := range cases {
		profile.EngagementRate = tc.rate
		if got := EngagementMultiplier(profile); !almostEqual(got, tc.want) {
			t.Fatalf("rate %v: expected %v, got %v", tc.rate, tc.want, got)
		}
	}
}

// TestEngagementMultiplierPlatforms проверяет пороги остальных площадок.
func TestEngagementMultiplierPlatforms(t *testing.T) {
	cases := []struct {
		platform models.Platform
		rate     float64
		want     float64
	}{
		{models.PlatformInstagram, 10, 1.18},
		{models.PlatformInstagram, 7, 1.15},
		{models.PlatformInstagram, 3, 1.08},
		{models.PlatformInstagram, 2, 1.0},
		{models.PlatformTikTok, 200, 1.25},
		{models.PlatformTikTok, 100, 1.15},
		{models.PlatformTikTok, 50, 1.08},
		{models.PlatformTwitter, 5, 1.15},
		{models.PlatformTwitter, 1, 1.08},
		{models.PlatformLinkedIn, 5, 1.15},
		{models.PlatformLinkedIn, 0.5, 1.0},
		{models.PlatformBlog, 3, 1.15},
		{models.PlatformBlog, 1, 1.08},
	}

	for _, tc := range cases {
		profile := models.CreatorProfile{
			Type:            models.CreatorTypeContent,
			PrimaryPlatform: tc.platform,
			EngagementRate:  tc.rate,
		}
		if got := EngagementMultiplier(profile); !almostEqual(got, tc.want) {
			t.Fatalf("%s rate %v: expected %v, got %v", tc.platform, tc.rate, tc.want, got)
		}
	}
}

// TestAudienceMultiplier проверяет ступени множителя аудитории.
func TestAudienceMultiplier(t *testing.T) {
	cases := []struct {
		subscribers int64
		want        float64
	}{
		{1500000, 1.5},
		{600000, 1.4},
		{150000, 1.3},
		{60000, 1.2},
		{20000, 1.1},
		{6000, 1.05},
		{1500, 1.02},
		{500, 1.0},
	}

	for _, tc := range cases {
		profile := models.CreatorProfile{
			Type:            models.CreatorTypeContent,
			PrimaryPlatform: models.PlatformYouTube,
			Subscribers:     tc.subscribers,
		}
		if got := AudienceMultiplier(profile); !almostEqual(got, tc.want) {
			t.Fatalf("subscribers %d: expected %v, got %v", tc.subscribers, tc.want, got)
		}
	}
}

// TestRecomputeEngagement проверяет формулы пересчета вовлеченности по площадкам.
func TestRecomputeEngagement(t *testing.T) {
	youtube := models.CreatorProfile{
		PrimaryPlatform: models.PlatformYouTube,
		AvgViews:        25000,
		Subscribers:     50000,
	}
	if got := RecomputeEngagement(youtube); !almostEqual(got, 50) {
		t.Fatalf("youtube: expected 50, got %v", got)
	}

	instagram := models.CreatorProfile{
		PrimaryPlatform:      models.PlatformInstagram,
		InstagramAvgLikes:    2500,
		InstagramAvgComments: 150,
		InstagramFollowers:   40000,
	}
	if got := RecomputeEngagement(instagram); !almostEqual(got, 6.63) {
		t.Fatalf("instagram: expected 6.63, got %v", got)
	}

	blog := models.CreatorProfile{
		PrimaryPlatform: models.PlatformBlog,
		BlogOpenRate:    40,
		BlogCTR:         5,
	}
	if got := RecomputeEngagement(blog); !almostEqual(got, 2) {
		t.Fatalf("blog: expected 2, got %v", got)
	}

	zeroDenominator := models.CreatorProfile{
		PrimaryPlatform: models.PlatformYouTube,
		AvgViews:        1000,
	}
	if got := RecomputeEngagement(zeroDenominator); got != 0 {
		t.Fatalf("zero denominator: expected 0, got %v", got)
	}
}

// TestDiscountMonotonicity проверяет порядок скидок за объем.
func TestDiscountMonotonicity(t *testing.T) {
	session := digitalSession(2000)
	card := NewRateCard(session)

	hours := 30.0
	none := card.Price(hours, "hourly")
	medium := card.Price(hours, "medium")
	large := card.Price(hours, "large")
	retainer := card.Price(hours, "retainer")

	if !(retainer.Recommended < large.Recommended &&
		large.Recommended < medium.Recommended &&
		medium.Recommended < none.Recommended) {
		t.Fatalf("expected retainer < large < medium < none, got %v %v %v %v",
			retainer.Recommended, large.Recommended, medium.Recommended, none.Recommended)
	}

	if !almostEqual(medium.Base, none.Base*0.95) {
		t.Fatalf("medium base: expected %v, got %v", none.Base*0.95, medium.Base)
	}
	if !almostEqual(large.Base, none.Base*0.90) {
		t.Fatalf("large base: expected %v, got %v", none.Base*0.90, large.Base)
	}
	if !almostEqual(retainer.Base, none.Base*0.85) {
		t.Fatalf("retainer base: expected %v, got %v", none.Base*0.85, retainer.Base)
	}
}

// TestTotalMarginAdditive проверяет сложение маржи тарифа и дополнительной наценки.
func TestTotalMarginAdditive(t *testing.T) {
	session := digitalSession(1000)
	session.RateTier = models.TierRecommended
	session.Markup = 10

	card := NewRateCard(session)
	if !almostEqual(card.TotalMargin(), 35) {
		t.Fatalf("expected margin 35, got %v", card.TotalMargin())
	}

	price := card.Price(10, "hourly")
	if !almostEqual(price.Recommended, price.Base*1.35) {
		t.Fatalf("expected recommended %v, got %v", price.Base*1.35, price.Recommended)
	}
}

// TestPhysicalPricing проверяет поштучный расчет с примером из описания шага.
func TestPhysicalPricing(t *testing.T) {
	// Ставка 40/час: годовой доход и часы подобраны под пример.
	session := models.DefaultPricingSession("physical")
	for i := range session.Expenses {
		session.Expenses[i].MonthlyCost = 0
	}
	// 12000 в год расходов при нулевых налогах/буфере дает 12000 цели.
	session.Expenses[0].MonthlyCost = 1000
	session.IncomeSettings = models.IncomeSettings{
		TaxRate: 0, EmergencyBuffer: 0, Reinvestment: 0,
		WeeksPerYear: 30, DaysPerWeek: 2, HoursPerDay: 5,
	}
	session.RateTier = models.TierBase
	session.Creator = models.CreatorProfile{
		Type:            models.CreatorTypePhysical,
		HoursPerUnit:    2.5,
		AvgMaterialCost: 25,
		ShippingCost:    12,
		SalesChannel:    models.ChannelWholesale,
	}

	card := NewRateCard(session)
	if !almostEqual(card.SelectedHourly(), 40) {
		t.Fatalf("expected hourly 40, got %v", card.SelectedHourly())
	}

	physical := card.Physical()
	if !almostEqual(physical.LaborCostPerUnit, 100) {
		t.Fatalf("expected labor 100, got %v", physical.LaborCostPerUnit)
	}
	if !almostEqual(physical.TotalCostPerUnit, 125) {
		t.Fatalf("expected total 125, got %v", physical.TotalCostPerUnit)
	}
	if !almostEqual(physical.WholesalePrice, 250) {
		t.Fatalf("expected wholesale 250, got %v", physical.WholesalePrice)
	}
	if !almostEqual(physical.WholesaleWithShipping, 262) {
		t.Fatalf("expected wholesale with shipping 262, got %v", physical.WholesaleWithShipping)
	}
	if !almostEqual(physical.RetailPrice, 375) {
		t.Fatalf("expected retail 375, got %v", physical.RetailPrice)
	}
}

// TestContentPricing проверяет расчет цены контент-единицы с правами использования.
func TestContentPricing(t *testing.T) {
	session := models.DefaultPricingSession("content")
	for i := range session.Expenses {
		session.Expenses[i].MonthlyCost = 0
	}
	session.Expenses[0].MonthlyCost = 1000
	session.IncomeSettings = models.IncomeSettings{
		TaxRate: 0, EmergencyBuffer: 0, Reinvestment: 0,
		WeeksPerYear: 30, DaysPerWeek: 2, HoursPerDay: 5,
	}
	session.RateTier = models.TierBase
	session.Creator = models.CreatorProfile{
		Type:            models.CreatorTypeContent,
		PrimaryPlatform: models.PlatformYouTube,
		Subscribers:     60000,
		EngagementRate:  25,
		HoursPerContent: 4,
		UsageRights:     models.RightsPaidAd,
	}

	card := NewRateCard(session)
	content := card.Content()

	if !almostEqual(content.StartingRate, 40) {
		t.Fatalf("expected starting rate 40, got %v", content.StartingRate)
	}
	if !almostEqual(content.AdjustedHourlyRate, 40*1.2*1.15) {
		t.Fatalf("expected adjusted %v, got %v", 40*1.2*1.15, content.AdjustedHourlyRate)
	}
	want := 40 * 1.2 * 1.15 * 4 * 2.5
	if !almostEqual(content.FinalPrice, want) {
		t.Fatalf("expected final %v, got %v", want, content.FinalPrice)
	}
}

// TestCustomServiceHourly проверяет ставку кастомных услуг по типам креаторов.
func TestCustomServiceHourly(t *testing.T) {
	session := digitalSession(1000)
	session.IncomeSettings = models.IncomeSettings{
		TaxRate: 0, EmergencyBuffer: 0, Reinvestment: 0,
		WeeksPerYear: 30, DaysPerWeek: 2, HoursPerDay: 5,
	}
	session.RateTier = models.TierBase
	session.Creator = models.CreatorProfile{
		Type:            models.CreatorTypeDigital,
		ExperienceLevel: models.ExperienceSenior,
		ProjectTerms:    models.TermsRush,
	}

	card := NewRateCard(session)
	// Условия проекта не влияют на консалтинговую ставку.
	if !almostEqual(card.CustomServiceHourly(), 40*1.2) {
		t.Fatalf("digital: expected %v, got %v", 40*1.2, card.CustomServiceHourly())
	}

	session.Creator = models.CreatorProfile{
		Type:            models.CreatorTypeContent,
		PrimaryPlatform: models.PlatformYouTube,
		Subscribers:     1000000,
		EngagementRate:  60,
	}
	session.RateTier = models.TierRecommended
	card = NewRateCard(session)
	// Аудитория и вовлеченность не применяются к консалтингу.
	if !almostEqual(card.CustomServiceHourly(), 40*1.25) {
		t.Fatalf("content: expected %v, got %v", 40*1.25, card.CustomServiceHourly())
	}
}

// TestVisibleServices проверяет доступность каталога услуг по типам креаторов.
func TestVisibleServices(t *testing.T) {
	if got := len(VisibleServices(models.CreatorTypeDigital)); got != 6 {
		t.Fatalf("digital: expected 6 services, got %d", got)
	}

	content := VisibleServices(models.CreatorTypeContent)
	if len(content) != 1 || content[0].ID != "hourly" {
		t.Fatalf("content: expected only hourly, got %v", content)
	}

	if got := VisibleServices(models.CreatorTypePhysical); got != nil {
		t.Fatalf("physical: expected no services, got %v", got)
	}
}

// TestMarkupForTier проверяет сброс наценки при смене тарифа.
func TestMarkupForTier(t *testing.T) {
	if got := MarkupForTier(models.TierRecommended); got != 0 {
		t.Fatalf("recommended: expected 0, got %v", got)
	}
	if got := MarkupForTier(models.TierBase); got != 25 {
		t.Fatalf("base: expected 25, got %v", got)
	}
}
