package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/creator-rates/backend/internal/models"
	"example.com/creator-rates/backend/internal/notifications"
	"example.com/creator-rates/backend/internal/pricing"
	"example.com/creator-rates/backend/internal/repository"
)

const defaultSessionTitle = "Untitled Session"

type SessionHandler struct {
	Sessions *repository.SessionRepository
	Notifier *notifications.Hub
}

// NewSessionHandler создает обработчик расчетных сессий.
func NewSessionHandler(sessions *repository.SessionRepository, notifier *notifications.Hub) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Notifier: notifier}
}

type CreateSessionRequest struct {
	Title string `json:"title" validate:"omitempty,max=200"`
}

type ExpensesRequest struct {
	Expenses []models.Expense `json:"expenses" validate:"required,min=1"`
}

type IncomeRequest struct {
	IncomeSettings models.IncomeSettings `json:"income_settings" validate:"required"`
}

type CreatorRequest struct {
	Creator models.CreatorProfile `json:"creator" validate:"required"`
}

type TierRequest struct {
	Tier   models.RateTier `json:"tier" validate:"required,oneof=base recommended"`
	Markup *float64        `json:"markup" validate:"omitempty,gte=0,lte=500"`
}

type CustomServiceRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	DeliveryHours float64 `json:"delivery_hours" validate:"gte=0"`
	PrepHours     float64 `json:"prep_hours" validate:"gte=0"`
}

type SessionResponse struct {
	ID             uuid.UUID              `json:"id"`
	Title          string                 `json:"title"`
	Expenses       []models.Expense       `json:"expenses"`
	IncomeSettings models.IncomeSettings  `json:"income_settings"`
	Creator        models.CreatorProfile  `json:"creator"`
	RateTier       models.RateTier        `json:"rate_tier"`
	Markup         float64                `json:"markup"`
	CustomServices []models.CustomService `json:"custom_services"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func toSessionResponse(session models.PricingSession) SessionResponse {
	return SessionResponse{
		ID:             session.ID,
		Title:          session.Title,
		Expenses:       session.Expenses,
		IncomeSettings: session.IncomeSettings,
		Creator:        session.Creator,
		RateTier:       session.RateTier,
		Markup:         session.Markup,
		CustomServices: session.CustomServices,
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}
}

func (h *SessionHandler) publishUpdate(session models.PricingSession, reason string) {
	if h.Notifier == nil {
		return
	}

	h.Notifier.Publish(session.ID, notifications.Event{
		Type: notifications.EventSessionUpdated,
		Data: map[string]interface{}{
			"session_id": session.ID.String(),
			"reason":     reason,
		},
	})
}

// List возвращает список сессий.
func (h *SessionHandler) List(c echo.Context) error {
	sessions, err := h.Sessions.List(c.Request().Context())
	if err != nil {
		return serverError(c)
	}

	response := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, toSessionResponse(session))
	}

	return c.JSON(http.StatusOK, map[string][]SessionResponse{"sessions": response})
}

// Create создает сессию с дефолтными категориями и настройками.
func (h *SessionHandler) Create(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultSessionTitle
	}

	session, err := h.Sessions.Create(c.Request().Context(), models.DefaultPricingSession(title))
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, toSessionResponse(session))
}

// Get возвращает сессию вместе с расчетной выкладкой.
func (h *SessionHandler) Get(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	session, err := h.Sessions.GetByID(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "session not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, buildSessionDetailResponse(session))
}

// Delete удаляет сессию.
func (h *SessionHandler) Delete(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	if err := h.Sessions.Delete(c.Request().Context(), sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "session not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateExpenses заменяет расходы сессии.
func (h *SessionHandler) UpdateExpenses(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var req ExpensesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	for i := range req.Expenses {
		if strings.TrimSpace(req.Expenses[i].Category) == "" {
			return badRequest(c, "expense category is required")
		}
		if req.Expenses[i].MonthlyCost < 0 {
			return badRequest(c, "monthly cost cannot be negative")
		}
		if req.Expenses[i].ID == uuid.Nil {
			req.Expenses[i].ID = uuid.New()
		}
	}

	session, err := h.Sessions.UpdateExpenses(c.Request().Context(), sessionID, req.Expenses)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "session not found")
		}
		return serverError(c)
	}

	h.publishUpdate(session, "expenses")
	return c.JSON(http.StatusOK, buildSessionDetailResponse(session))
}

// UpdateIncome заменяет настройки дохода сессии.
func (h *SessionHandler) UpdateIncome(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var req IncomeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	settings := req.IncomeSettings
	if settings.TaxRate < 0 || settings.EmergencyBuffer < 0 || settings.Reinvestment < 0 {
		return badRequest(c, "percentages cannot be negative")
	}
	if settings.WeeksPerYear < 0 || settings.WeeksPerYear > 52 {
		return badRequest(c, "weeks per year must be between 0 and 52")
	}
	if settings.DaysPerWeek < 0 || settings.DaysPerWeek > 7 {
		return badRequest(c, "days per week must be between 0 and 7")
	}
	if settings.HoursPerDay < 0 || settings.HoursPerDay > 24 {
		return badRequest(c, "hours per day must be between 0 and 24")
	}

	session, err := h.Sessions.UpdateIncomeSettings(c.Request().Context(), sessionID, settings)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "session not found")
		}
		return serverError(c)
	}

	h.publishUpdate(session, "income")
	return c.JSON(http.StatusOK, buildSessionDetailResponse(session))
}

// UpdateCreator заменяет профиль креатора и пересчитывает вовлеченность.
func (h *SessionHandler) UpdateCreator(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var req CreatorRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	creator := req.Creator
	switch creator.Type {
	case models.CreatorTypeDigital, models.CreatorTypePhysical, models.CreatorTypeContent:
	default:
		return badRequest(c, "invalid creator type")
	}

	if creator.Type == models.CreatorTypeContent {
		creator.EngagementRate = pricing.RecomputeEngagement(creator)
	}

	session, err := h.Sessions.UpdateCreator(c.Request().Context(), sessionID, creator)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "session not found")
		}
		return serverError(c)
	}

	h.publishUpdate(session, "creator")
	return c.JSON(http.StatusOK, buildSessionDetailResponse(session))
}

// UpdateTier переключает тариф с побочным эффектом для наценки.
func (h *SessionHandler) UpdateTier(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var req TierRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	markup := pricing.MarkupForTier(req.Tier)
	if req.Markup != nil {
		markup = *req.Markup
	}

	session, err := h.Sessions.UpdateTier(c.Request().Context(), sessionID, req.Tier, markup)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "session not found")
		}
		return serverError(c)
	}

	h.publishUpdate(session, "tier")
	return c.JSON(http.StatusOK, buildSessionDetailResponse(session))
}

// Services возвращает прайс-лист услуг для сессии.
func (h *SessionHandler) Services(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	session, err := h.Sessions.GetByID(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "session not found")
		}
		return serverError(c)
	}

	detail := buildSessionDetailResponse(session)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"services":         detail.Breakdown.Services,
		"custom_services":  detail.Breakdown.CustomServices,
		"physical_pricing": detail.Breakdown.Physical,
		"content_pricing":  detail.Breakdown.Content,
	})
}

// AddCustomService добавляет кастомную услугу.
func (h *SessionHandler) AddCustomService(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var req CustomServiceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return badRequest(c, "service name is required")
	}
	if req.DeliveryHours+req.PrepHours <= 0 {
		return badRequest(c, "service hours must be greater than 0")
	}

	service := models.CustomService{
		ID:            uuid.New(),
		Name:          name,
		DeliveryHours: req.DeliveryHours,
		PrepHours:     req.PrepHours,
	}

	session, err := h.Sessions.AddCustomService(c.Request().Context(), sessionID, service)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "session not found")
		}
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "service already exists")
		}
		return serverError(c)
	}

	h.publishUpdate(session, "custom_services")
	return c.JSON(http.StatusCreated, buildSessionDetailResponse(session))
}

// RemoveCustomService удаляет кастомную услугу.
func (h *SessionHandler) RemoveCustomService(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	session, err := h.Sessions.RemoveCustomService(c.Request().Context(), sessionID, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "service not found")
		}
		return serverError(c)
	}

	h.publishUpdate(session, "custom_services")
	return c.JSON(http.StatusOK, buildSessionDetailResponse(session))
}
