package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/creator-rates/backend/internal/models"
	"example.com/creator-rates/backend/internal/repository"
)

const (
	exportTypeServices = "services"
	exportTypeExpenses = "expenses"
)

const maxImportBytes = 1 << 20

// SessionExportDocument повторяет формат обмена данными калькулятора.
type SessionExportDocument struct {
	Title            string                 `json:"title"`
	Expenses         []models.Expense       `json:"expenses"`
	IncomeSettings   models.IncomeSettings  `json:"incomeSettings"`
	CreatorData      models.CreatorProfile  `json:"creatorData"`
	SelectedRateTier models.RateTier        `json:"selectedRateTier"`
	Markup           float64                `json:"markup"`
	CustomServices   []models.CustomService `json:"customServices"`
	ExportDate       time.Time              `json:"exportDate"`
	Version          string                 `json:"version"`
}

func toExportDocument(session models.PricingSession, exportDate time.Time) SessionExportDocument {
	return SessionExportDocument{
		Title:            session.Title,
		Expenses:         session.Expenses,
		IncomeSettings:   session.IncomeSettings,
		CreatorData:      session.Creator,
		SelectedRateTier: session.RateTier,
		Markup:           session.Markup,
		CustomServices:   session.CustomServices,
		ExportDate:       exportDate,
		Version:          models.DataVersion,
	}
}

// ExportJSON выгружает сессию в файл формата обмена.
func (h *SessionHandler) ExportJSON(c echo.Context) error {
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

	filename := "session-" + session.ID.String() + ".json"
	c.Response().Header().Set(echo.HeaderContentType, "application/json")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.JSON(http.StatusOK, toExportDocument(session, time.Now().UTC()))
}

// ExportCSV выгружает расчетную выкладку сессии в CSV.
func (h *SessionHandler) ExportCSV(c echo.Context) error {
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

	exportType := strings.ToLower(strings.TrimSpace(c.QueryParam("type")))
	if exportType == "" {
		exportType = exportTypeServices
	}

	detail := buildSessionDetailResponse(session)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	switch exportType {
	case exportTypeServices:
		if err := writeServicesCSV(writer, detail); err != nil {
			return serverError(c)
		}
	case exportTypeExpenses:
		if err := writeExpensesCSV(writer, detail); err != nil {
			return serverError(c)
		}
	default:
		return badRequest(c, "invalid export type")
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "session-" + session.ID.String() + "-" + exportType + ".csv"
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func sessionFromImport(body []byte) (models.PricingSession, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.PricingSession{}, fmt.Errorf("decode import payload: %w", repository.ErrInvalid)
	}

	for _, key := range []string{"expenses", "incomeSettings", "creatorData"} {
		if _, ok := raw[key]; !ok {
			return models.PricingSession{}, fmt.Errorf("missing %s: %w", key, repository.ErrInvalid)
		}
	}

	defaults := models.DefaultPricingSession(defaultSessionTitle)
	doc := toExportDocument(defaults, time.Time{})
	if err := json.Unmarshal(body, &doc); err != nil {
		return models.PricingSession{}, fmt.Errorf("decode import payload: %w", repository.ErrInvalid)
	}

	switch doc.CreatorData.Type {
	case models.CreatorTypeDigital, models.CreatorTypePhysical, models.CreatorTypeContent:
	default:
		return models.PricingSession{}, fmt.Errorf("creator type %q: %w", doc.CreatorData.Type, repository.ErrInvalid)
	}

	if doc.SelectedRateTier != models.TierBase && doc.SelectedRateTier != models.TierRecommended {
		doc.SelectedRateTier = models.TierRecommended
	}

	session := models.PricingSession{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(doc.Title),
		Expenses:       doc.Expenses,
		IncomeSettings: doc.IncomeSettings,
		Creator:        doc.CreatorData,
		RateTier:       doc.SelectedRateTier,
		Markup:         doc.Markup,
		CustomServices: doc.CustomServices,
	}
	if session.Title == "" {
		session.Title = defaultSessionTitle
	}
	if session.CustomServices == nil {
		session.CustomServices = []models.CustomService{}
	}

	return session, nil
}

// Import создает сессию из файла формата обмена.
func (h *SessionHandler) Import(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportBytes))
	if err != nil {
		return badRequest(c, "invalid payload")
	}

	session, err := sessionFromImport(body)
	if err != nil {
		return badRequest(c, "invalid session data format")
	}

	created, err := h.Sessions.Create(c.Request().Context(), session)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, buildSessionDetailResponse(created))
}

func writeServicesCSV(writer *csv.Writer, detail SessionDetailResponse) error {
	header := []string{
		"session_id",
		"session_title",
		"service_id",
		"service_name",
		"hours",
		"base_price",
		"recommended_price",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, service := range detail.Breakdown.Services {
		record := []string{
			detail.Session.ID.String(),
			detail.Session.Title,
			service.ID,
			service.Name,
			formatFloat(service.Hours),
			formatFloat(service.BasePrice),
			formatFloat(service.RecommendedPrice),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	for _, service := range detail.Breakdown.CustomServices {
		record := []string{
			detail.Session.ID.String(),
			detail.Session.Title,
			service.ID.String(),
			service.Name,
			formatFloat(service.DeliveryHours + service.PrepHours),
			formatFloat(service.BasePrice),
			formatFloat(service.RecommendedPrice),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writeExpensesCSV(writer *csv.Writer, detail SessionDetailResponse) error {
	header := []string{
		"session_id",
		"session_title",
		"expense_id",
		"category",
		"monthly_cost",
		"annual_cost",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, expense := range detail.Session.Expenses {
		record := []string{
			detail.Session.ID.String(),
			detail.Session.Title,
			expense.ID.String(),
			expense.Category,
			formatFloat(expense.MonthlyCost),
			formatFloat(expense.MonthlyCost * 12),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
