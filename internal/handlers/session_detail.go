package handlers

import (
	"github.com/google/uuid"

	"example.com/creator-rates/backend/internal/models"
	"example.com/creator-rates/backend/internal/pricing"
)

type IncomeBreakdownResponse struct {
	MonthlyExpenses       float64 `json:"monthly_expenses"`
	AnnualExpenses        float64 `json:"annual_expenses"`
	TaxAmount             float64 `json:"tax_amount"`
	BufferAmount          float64 `json:"buffer_amount"`
	ReinvestmentAmount    float64 `json:"reinvestment_amount"`
	TargetIncome          float64 `json:"target_income"`
	BillableHours         float64 `json:"billable_hours"`
	BaseHourlyRate        float64 `json:"base_hourly_rate"`
	RecommendedHourlyRate float64 `json:"recommended_hourly_rate"`
}

type RatesResponse struct {
	RawBaseHourly    float64         `json:"raw_base_hourly"`
	SelectedHourly   float64         `json:"selected_hourly"`
	TrueBaseHourly   float64         `json:"true_base_hourly"`
	Tier             models.RateTier `json:"tier"`
	TierMarkup       float64         `json:"tier_markup"`
	AdditionalMarkup float64         `json:"additional_markup"`
	TotalMargin      float64         `json:"total_margin"`
}

type ServicePriceResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Hours            float64 `json:"hours"`
	Description      string  `json:"description,omitempty"`
	BasePrice        float64 `json:"base_price"`
	RecommendedPrice float64 `json:"recommended_price"`
}

type CustomServicePriceResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	DeliveryHours    float64   `json:"delivery_hours"`
	PrepHours        float64   `json:"prep_hours"`
	HourlyRate       float64   `json:"hourly_rate"`
	BasePrice        float64   `json:"base_price"`
	RecommendedPrice float64   `json:"recommended_price"`
}

type PhysicalPricingResponse struct {
	HourlyRate            float64             `json:"hourly_rate"`
	LaborCostPerUnit      float64             `json:"labor_cost_per_unit"`
	MaterialCost          float64             `json:"material_cost"`
	TotalCostPerUnit      float64             `json:"total_cost_per_unit"`
	WholesalePrice        float64             `json:"wholesale_price"`
	RetailPrice           float64             `json:"retail_price"`
	WholesaleWithShipping float64             `json:"wholesale_with_shipping"`
	RetailWithShipping    float64             `json:"retail_with_shipping"`
	ShippingCost          float64             `json:"shipping_cost"`
	SalesChannel          models.SalesChannel `json:"sales_channel"`
}

type ContentPricingResponse struct {
	StartingRate         float64 `json:"starting_rate"`
	AudienceMultiplier   float64 `json:"audience_multiplier"`
	EngagementMultiplier float64 `json:"engagement_multiplier"`
	AdjustedHourlyRate   float64 `json:"adjusted_hourly_rate"`
	TimeCost             float64 `json:"time_cost"`
	RightsMultiplier     float64 `json:"rights_multiplier"`
	FinalPrice           float64 `json:"final_price"`
}

type BreakdownResponse struct {
	Income         IncomeBreakdownResponse      `json:"income"`
	Rates          RatesResponse                `json:"rates"`
	Services       []ServicePriceResponse       `json:"services"`
	CustomServices []CustomServicePriceResponse `json:"custom_services"`
	Physical       *PhysicalPricingResponse     `json:"physical,omitempty"`
	Content        *ContentPricingResponse      `json:"content,omitempty"`
}

type SessionDetailResponse struct {
	Session   SessionResponse   `json:"session"`
	Breakdown BreakdownResponse `json:"breakdown"`
}

func buildSessionDetailResponse(session models.PricingSession) SessionDetailResponse {
	card := pricing.NewRateCard(session)

	income := IncomeBreakdownResponse{
		MonthlyExpenses:       pricing.MonthlyTotal(session.Expenses),
		AnnualExpenses:        card.Income.AnnualExpenses,
		TaxAmount:             card.Income.TaxAmount,
		BufferAmount:          card.Income.BufferAmount,
		ReinvestmentAmount:    card.Income.ReinvestmentAmount,
		TargetIncome:          card.Income.TargetIncome,
		BillableHours:         card.Income.BillableHours,
		BaseHourlyRate:        card.Income.BaseHourlyRate(),
		RecommendedHourlyRate: card.Income.RecommendedHourlyRate(),
	}

	rates := RatesResponse{
		RawBaseHourly:    card.RawBaseHourly(),
		SelectedHourly:   card.SelectedHourly(),
		TrueBaseHourly:   card.TrueBaseHourly(),
		Tier:             session.RateTier,
		TierMarkup:       card.TierMarkup(),
		AdditionalMarkup: session.Markup,
		TotalMargin:      card.TotalMargin(),
	}

	services := make([]ServicePriceResponse, 0)
	for _, service := range pricing.VisibleServices(session.Creator.Type) {
		price := card.Price(service.Hours, service.ID)
		services = append(services, ServicePriceResponse{
			ID:               service.ID,
			Name:             service.Name,
			Hours:            service.Hours,
			Description:      service.Description,
			BasePrice:        price.Base,
			RecommendedPrice: price.Recommended,
		})
	}

	customServices := make([]CustomServicePriceResponse, 0, len(session.CustomServices))
	for _, service := range session.CustomServices {
		hours := service.DeliveryHours + service.PrepHours
		price := card.Price(hours, service.ID.String())
		customServices = append(customServices, CustomServicePriceResponse{
			ID:               service.ID,
			Name:             service.Name,
			DeliveryHours:    service.DeliveryHours,
			PrepHours:        service.PrepHours,
			HourlyRate:       card.CustomServiceHourly(),
			BasePrice:        price.Base,
			RecommendedPrice: price.Recommended,
		})
	}

	breakdown := BreakdownResponse{
		Income:         income,
		Rates:          rates,
		Services:       services,
		CustomServices: customServices,
	}

	switch session.Creator.Type {
	case models.CreatorTypePhysical:
		physical := card.Physical()
		breakdown.Physical = &PhysicalPricingResponse{
			HourlyRate:            physical.HourlyRate,
			LaborCostPerUnit:      physical.LaborCostPerUnit,
			MaterialCost:          physical.MaterialCost,
			TotalCostPerUnit:      physical.TotalCostPerUnit,
			WholesalePrice:        physical.WholesalePrice,
			RetailPrice:           physical.RetailPrice,
			WholesaleWithShipping: physical.WholesaleWithShipping,
			RetailWithShipping:    physical.RetailWithShipping,
			ShippingCost:          physical.ShippingCost,
			SalesChannel:          physical.SalesChannel,
		}
	case models.CreatorTypeContent:
		content := card.Content()
		breakdown.Content = &ContentPricingResponse{
			StartingRate:         content.StartingRate,
			AudienceMultiplier:   content.AudienceMultiplier,
			EngagementMultiplier: content.EngagementMult,
			AdjustedHourlyRate:   content.AdjustedHourlyRate,
			TimeCost:             content.TimeCost,
			RightsMultiplier:     content.RightsMultiplier,
			FinalPrice:           content.FinalPrice,
		}
	}

	return SessionDetailResponse{
		Session:   toSessionResponse(session),
		Breakdown: breakdown,
	}
}
