package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"example.com/creator-rates/backend/internal/models"
	"example.com/creator-rates/backend/internal/notifications"
	"example.com/creator-rates/backend/internal/repository"
)

type ContractHandler struct {
	Contracts *repository.ContractRepository
	Notifier  *notifications.Hub
	sanitizer *bluemonday.Policy
}

// NewContractHandler создает обработчик договоров.
func NewContractHandler(contracts *repository.ContractRepository, notifier *notifications.Hub) *ContractHandler {
	return &ContractHandler{
		Contracts: contracts,
		Notifier:  notifier,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

type CreateContractRequest struct {
	ContractType models.ContractType `json:"contract_type" validate:"omitempty,oneof=digital physical content"`
}

type ClauseRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required,max=20000"`
}

type ContractResponse struct {
	ID        uuid.UUID           `json:"id"`
	Data      models.ContractData `json:"data"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func toContractResponse(contract models.Contract) ContractResponse {
	return ContractResponse{
		ID:        contract.ID,
		Data:      contract.Data,
		CreatedAt: contract.CreatedAt,
		UpdatedAt: contract.UpdatedAt,
	}
}

func (h *ContractHandler) publishUpdate(contractID uuid.UUID, eventType, reason string) {
	if h.Notifier == nil {
		return
	}

	h.Notifier.Publish(contractID, notifications.Event{
		Type: eventType,
		Data: map[string]interface{}{
			"contract_id": contractID.String(),
			"reason":      reason,
		},
	})
}

func validContractType(contractType models.ContractType) bool {
	switch contractType {
	case models.ContractTypeDigital, models.ContractTypePhysical, models.ContractTypeContent:
		return true
	default:
		return false
	}
}

func (h *ContractHandler) sanitizeClauses(clauses []models.CustomClause) []models.CustomClause {
	cleaned := make([]models.CustomClause, 0, len(clauses))
	for _, clause := range clauses {
		title := strings.TrimSpace(h.sanitizer.Sanitize(clause.Title))
		content := strings.TrimSpace(h.sanitizer.Sanitize(clause.Content))
		if title == "" || content == "" {
			continue
		}
		if clause.ID == uuid.Nil {
			clause.ID = uuid.New()
		}
		cleaned = append(cleaned, models.CustomClause{ID: clause.ID, Title: title, Content: content})
	}
	return cleaned
}

// List возвращает список договоров.
func (h *ContractHandler) List(c echo.Context) error {
	contracts, err := h.Contracts.List(c.Request().Context())
	if err != nil {
		return serverError(c)
	}

	response := make([]ContractResponse, 0, len(contracts))
	for _, contract := range contracts {
		response = append(response, toContractResponse(contract))
	}

	return c.JSON(http.StatusOK, map[string][]ContractResponse{"contracts": response})
}

// Create создает договор с дефолтными данными.
func (h *ContractHandler) Create(c echo.Context) error {
	var req CreateContractRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	data := models.DefaultContractData()
	if req.ContractType != "" {
		data.ContractType = req.ContractType
	}

	contract, err := h.Contracts.Create(c.Request().Context(), models.Contract{
		ID:   uuid.New(),
		Data: data,
	})
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, toContractResponse(contract))
}

// Get возвращает договор по идентификатору.
func (h *ContractHandler) Get(c echo.Context) error {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid contract id")
	}

	contract, err := h.Contracts.GetByID(c.Request().Context(), contractID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toContractResponse(contract))
}

// Update заменяет данные договора.
func (h *ContractHandler) Update(c echo.Context) error {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid contract id")
	}

	var data models.ContractData
	if err := c.Bind(&data); err != nil {
		return badRequest(c, "invalid payload")
	}

	if !validContractType(data.ContractType) {
		return badRequest(c, "invalid contract type")
	}

	if data.Version == "" {
		data.Version = models.DataVersion
	}
	data.CustomClauses = h.sanitizeClauses(data.CustomClauses)

	contract, err := h.Contracts.Update(c.Request().Context(), contractID, data)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	h.publishUpdate(contract.ID, notifications.EventContractUpdated, "data")
	return c.JSON(http.StatusOK, toContractResponse(contract))
}

// Delete удаляет договор.
func (h *ContractHandler) Delete(c echo.Context) error {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid contract id")
	}

	if err := h.Contracts.Delete(c.Request().Context(), contractID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddClause добавляет кастомную клаузу в договор.
func (h *ContractHandler) AddClause(c echo.Context) error {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid contract id")
	}

	var req ClauseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	title := strings.TrimSpace(h.sanitizer.Sanitize(req.Title))
	content := strings.TrimSpace(h.sanitizer.Sanitize(req.Content))
	if title == "" || content == "" {
		return badRequest(c, "clause title and content are required")
	}

	contract, err := h.Contracts.GetByID(c.Request().Context(), contractID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	data := contract.Data
	data.CustomClauses = append(data.CustomClauses, models.CustomClause{
		ID:      uuid.New(),
		Title:   title,
		Content: content,
	})

	contract, err = h.Contracts.Update(c.Request().Context(), contractID, data)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	h.publishUpdate(contract.ID, notifications.EventContractUpdated, "clause_added")
	return c.JSON(http.StatusCreated, toContractResponse(contract))
}

// RemoveClause удаляет кастомную клаузу из договора.
func (h *ContractHandler) RemoveClause(c echo.Context) error {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid contract id")
	}

	clauseID, err := uuid.Parse(c.Param("clauseId"))
	if err != nil {
		return badRequest(c, "invalid clause id")
	}

	contract, err := h.Contracts.GetByID(c.Request().Context(), contractID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	data := contract.Data
	kept := make([]models.CustomClause, 0, len(data.CustomClauses))
	for _, clause := range data.CustomClauses {
		if clause.ID != clauseID {
			kept = append(kept, clause)
		}
	}

	if len(kept) == len(data.CustomClauses) {
		return notFound(c, "clause not found")
	}
	data.CustomClauses = kept

	contract, err = h.Contracts.Update(c.Request().Context(), contractID, data)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	h.publishUpdate(contract.ID, notifications.EventContractUpdated, "clause_removed")
	return c.JSON(http.StatusOK, toContractResponse(contract))
}
