package pricing

import "example.com/creator-rates/backend/internal/models"

type Service struct {
	ID          string
	Name        string
	Hours       float64
	Description string
}

type ServicePrice struct {
	Base        float64
	Recommended float64
}

type PhysicalPricing struct {
	HourlyRate            float64
	LaborCostPerUnit      float64
	MaterialCost          float64
	TotalCostPerUnit      float64
	WholesalePrice        float64
	RetailPrice           float64
	WholesaleWithShipping float64
	RetailWithShipping    float64
	ShippingCost          float64
	SalesChannel          models.SalesChannel
}

type ContentPricing struct {
	StartingRate       float64
	AudienceMultiplier float64
	EngagementMult     float64
	AdjustedHourlyRate float64
	TimeCost           float64
	RightsMultiplier   float64
	FinalPrice         float64
}

// Services возвращает каталог стандартных услуг с фиксированными часами.
func Services() []Service {
	return []Service{
		{ID: "hourly", Name: "Hourly Rate", Hours: 1, Description: "Per hour of work"},
		{ID: "day", Name: "Day Rate", Hours: 8, Description: "Full day (8 hours)"},
		{ID: "small", Name: "Small Project", Hours: 15, Description: "15 hours"},
		{ID: "medium", Name: "Medium Project", Hours: 30, Description: "30 hours, 5% volume discount"},
		{ID: "large", Name: "Large Project", Hours: 60, Description: "60 hours, 10% volume discount"},
		{ID: "retainer", Name: "Monthly Retainer", Hours: 40, Description: "40 hours/month, 15% recurring discount"},
	}
}

// VisibleServices возвращает список услуг, доступных типу креатора.
// Контент-креаторы видят только почасовую ставку, физические товары
// оцениваются поштучно и каталог не используют.
func VisibleServices(creatorType models.CreatorType) []Service {
	switch creatorType {
	case models.CreatorTypeContent:
		services := Services()
		visible := make([]Service, 0, 1)
		for _, service := range services {
			if service.ID == "hourly" {
				visible = append(visible, service)
			}
		}
		return visible
	case models.CreatorTypePhysical:
		return nil
	default:
		return Services()
	}
}

func serviceDiscount(serviceID string) float64 {
	switch serviceID {
	case "medium":
		return 0.95
	case "large":
		return 0.90
	case "retainer":
		return 0.85
	default:
		return 1
	}
}

// MarkupForTier возвращает дополнительную наценку, выставляемую при смене тарифа.
// Выбор рекомендованной ставки обнуляет наценку, выбор базовой добавляет 25%.
func MarkupForTier(tier models.RateTier) float64 {
	if tier == models.TierBase {
		return 25
	}
	return 0
}

type RateCard struct {
	Profile models.CreatorProfile
	Tier    models.RateTier
	Markup  float64
	Income  IncomeBreakdown
}

// NewRateCard собирает карту ставок по сессии расчета.
func NewRateCard(session models.PricingSession) RateCard {
	income := ComputeIncome(AnnualExpenses(session.Expenses), session.IncomeSettings)
	return RateCard{
		Profile: session.Creator,
		Tier:    session.RateTier,
		Markup:  session.Markup,
		Income:  income,
	}
}

// RawBaseHourly возвращает безубыточную ставку без каких-либо множителей.
func (r RateCard) RawBaseHourly() float64 {
	return r.Income.BaseHourlyRate()
}

// SelectedHourly возвращает ставку выбранного тарифа.
func (r RateCard) SelectedHourly() float64 {
	if r.Tier == models.TierRecommended {
		return r.RawBaseHourly() * 1.25
	}
	return r.RawBaseHourly()
}

// TrueBaseHourly возвращает безубыточную ставку со всеми множителями типа креатора.
func (r RateCard) TrueBaseHourly() float64 {
	return r.RawBaseHourly() *
		ExperienceMultiplier(r.Profile) *
		TermsMultiplier(r.Profile) *
		AudienceMultiplier(r.Profile) *
		EngagementMultiplier(r.Profile)
}

// TierMarkup возвращает наценку тарифа: 25% для рекомендованной ставки.
func (r RateCard) TierMarkup() float64 {
	if r.Tier == models.TierRecommended {
		return 25
	}
	return 0
}

// TotalMargin возвращает суммарную маржу: наценка тарифа плюс дополнительная.
// Маржа складывается, а не перемножается.
func (r RateCard) TotalMargin() float64 {
	return r.TierMarkup() + r.Markup
}

// Price считает базовую и рекомендованную цену услуги с учетом скидки за объем.
func (r RateCard) Price(hours float64, serviceID string) ServicePrice {
	basePrice := r.TrueBaseHourly() * hours
	recommendedPrice := basePrice * (1 + r.TotalMargin()/100)

	discount := serviceDiscount(serviceID)
	return ServicePrice{
		Base:        basePrice * discount,
		Recommended: recommendedPrice * discount,
	}
}

// CustomServiceHourly возвращает почасовую ставку кастомных услуг (консалтинг, воркшопы).
// Для диджитал применяется только множитель опыта, для контента множители
// аудитории и вовлеченности не применяются вовсе.
func (r RateCard) CustomServiceHourly() float64 {
	rate := r.RawBaseHourly()
	if r.Profile.Type == models.CreatorTypeDigital {
		rate *= ExperienceMultiplier(r.Profile)
	}

	if r.Tier == models.TierRecommended {
		return rate * 1.25
	}
	return rate
}

// Physical считает поштучную цену для физических товаров.
// Часовая ставка берется по тарифу без множителей, стоимость доставки
// добавляется после канального множителя.
func (r RateCard) Physical() PhysicalPricing {
	hourly := r.SelectedHourly()
	labor := hourly * r.Profile.HoursPerUnit
	total := labor + r.Profile.AvgMaterialCost

	channel := r.Profile.SalesChannel
	if channel == "" {
		channel = models.ChannelRetail
	}

	pricing := PhysicalPricing{
		HourlyRate:       hourly,
		LaborCostPerUnit: labor,
		MaterialCost:     r.Profile.AvgMaterialCost,
		TotalCostPerUnit: total,
		WholesalePrice:   total * 2,
		RetailPrice:      total * 3,
		ShippingCost:     r.Profile.ShippingCost,
		SalesChannel:     channel,
	}
	pricing.WholesaleWithShipping = pricing.WholesalePrice + pricing.ShippingCost
	pricing.RetailWithShipping = pricing.RetailPrice + pricing.ShippingCost

	return pricing
}

// Content считает цену контент-единицы: скорректированная ставка × часы × права.
func (r RateCard) Content() ContentPricing {
	starting := r.SelectedHourly()
	audience := AudienceMultiplier(r.Profile)
	engagement := EngagementMultiplier(r.Profile)
	adjusted := starting * audience * engagement
	timeCost := adjusted * r.Profile.HoursPerContent
	rights := RightsMultiplier(r.Profile.UsageRights)

	return ContentPricing{
		StartingRate:       starting,
		AudienceMultiplier: audience,
		EngagementMult:     engagement,
		AdjustedHourlyRate: adjusted,
		TimeCost:           timeCost,
		RightsMultiplier:   rights,
		FinalPrice:         timeCost * rights,
	}
}
