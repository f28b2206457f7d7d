package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/creator-rates/backend/internal/contract"
	"example.com/creator-rates/backend/internal/models"
	"example.com/creator-rates/backend/internal/notifications"
	"example.com/creator-rates/backend/internal/repository"
)

// ContractExportDocument повторяет формат обмена данными конструктора договоров.
type ContractExportDocument struct {
	models.ContractData
	ExportDate time.Time `json:"exportDate"`
}

// Preview возвращает текстовый предпросмотр договора.
func (h *ContractHandler) Preview(c echo.Context) error {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid contract id")
	}

	stored, err := h.Contracts.GetByID(c.Request().Context(), contractID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	doc := contract.Assemble(stored.Data, time.Now())
	return c.String(http.StatusOK, contract.RenderText(doc))
}

// ExportJSON выгружает договор в файл формата обмена.
func (h *ContractHandler) ExportJSON(c echo.Context) error {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid contract id")
	}

	stored, err := h.Contracts.GetByID(c.Request().Context(), contractID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	h.publishUpdate(stored.ID, notifications.EventContractExported, "json")

	filename := "contract-" + stored.ID.String() + ".json"
	c.Response().Header().Set(echo.HeaderContentType, "application/json")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.JSON(http.StatusOK, ContractExportDocument{
		ContractData: stored.Data,
		ExportDate:   time.Now().UTC(),
	})
}

// ExportMarkdown выгружает договор в Markdown-файл.
func (h *ContractHandler) ExportMarkdown(c echo.Context) error {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid contract id")
	}

	stored, err := h.Contracts.GetByID(c.Request().Context(), contractID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	doc := contract.Assemble(stored.Data, time.Now())
	markdown := contract.RenderMarkdown(doc)

	h.publishUpdate(stored.ID, notifications.EventContractExported, "markdown")

	filename := "contract-" + stored.ID.String() + ".md"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}

// ExportPDF выгружает договор в PDF-файл.
func (h *ContractHandler) ExportPDF(c echo.Context) error {
	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid contract id")
	}

	stored, err := h.Contracts.GetByID(c.Request().Context(), contractID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "contract not found")
		}
		return serverError(c)
	}

	doc := contract.Assemble(stored.Data, time.Now())

	var buf bytes.Buffer
	if err := contract.RenderPDF(doc, &buf); err != nil {
		return serverError(c)
	}

	h.publishUpdate(stored.ID, notifications.EventContractExported, "pdf")

	filename := "contract-" + stored.ID.String() + ".pdf"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

func contractDataFromImport(body []byte) (models.ContractData, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.ContractData{}, fmt.Errorf("decode import payload: %w", repository.ErrInvalid)
	}

	if _, ok := raw["contractType"]; !ok {
		return models.ContractData{}, fmt.Errorf("missing contractType: %w", repository.ErrInvalid)
	}

	data := models.DefaultContractData()
	if err := json.Unmarshal(body, &data); err != nil {
		return models.ContractData{}, fmt.Errorf("decode import payload: %w", repository.ErrInvalid)
	}

	if !validContractType(data.ContractType) {
		return models.ContractData{}, fmt.Errorf("contract type %q: %w", data.ContractType, repository.ErrInvalid)
	}

	if data.Version == "" {
		data.Version = models.DataVersion
	}

	return data, nil
}

// Import создает договор из файла формата обмена.
func (h *ContractHandler) Import(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportBytes))
	if err != nil {
		return badRequest(c, "invalid payload")
	}

	data, err := contractDataFromImport(body)
	if err != nil {
		return badRequest(c, "invalid contract data format")
	}

	data.CustomClauses = h.sanitizeClauses(data.CustomClauses)

	created, err := h.Contracts.Create(c.Request().Context(), models.Contract{
		ID:   uuid.New(),
		Data: data,
	})
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, toContractResponse(created))
}
