package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/creator-rates/backend/internal/models"
	"example.com/creator-rates/backend/internal/repository"
)

func jsonRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// TestHealth проверяет ответ health-эндпоинта.
func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	if err := Health(e.NewContext(req, rec)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

// TestSessionImportMissingKeys проверяет отказ при неполном файле обмена.
func TestSessionImportMissingKeys(t *testing.T) {
	h := NewSessionHandler(nil, nil)

	c, rec := jsonRequest(t, `{"title":"Imported"}`)
	if err := h.Import(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid session data format") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

// TestSessionImportInvalidJSON проверяет отказ при битом JSON.
func TestSessionImportInvalidJSON(t *testing.T) {
	h := NewSessionHandler(nil, nil)

	c, rec := jsonRequest(t, `{"title":`)
	if err := h.Import(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

// TestSessionImportInvalidCreatorType проверяет отказ при неизвестном типе креатора.
func TestSessionImportInvalidCreatorType(t *testing.T) {
	h := NewSessionHandler(nil, nil)

	body := `{"expenses":[],"incomeSettings":{},"creatorData":{"type":"alien"}}`
	c, rec := jsonRequest(t, body)
	if err := h.Import(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid session data format") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

// TestSessionFromImportInvalid проверяет, что битые файлы обмена дают ErrInvalid.
func TestSessionFromImportInvalid(t *testing.T) {
	payloads := []string{
		`{"title":`,
		`{"title":"Imported"}`,
		`{"expenses":[],"incomeSettings":{},"creatorData":{"type":"alien"}}`,
	}

	for _, payload := range payloads {
		if _, err := sessionFromImport([]byte(payload)); !errors.Is(err, repository.ErrInvalid) {
			t.Fatalf("payload %s: expected ErrInvalid, got %v", payload, err)
		}
	}
}

// TestSessionFromImportDefaults проверяет слияние файла обмена с дефолтами.
func TestSessionFromImportDefaults(t *testing.T) {
	payload := `{"expenses":[],"incomeSettings":{},"creatorData":{"type":"digital"},"selectedRateTier":"vip"}`

	session, err := sessionFromImport([]byte(payload))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.ID == uuid.Nil {
		t.Fatal("imported session must get a fresh id")
	}
	if session.Title != defaultSessionTitle {
		t.Fatalf("unexpected title: %q", session.Title)
	}
	if session.RateTier != models.TierRecommended {
		t.Fatalf("unknown tier must normalize to recommended, got %q", session.RateTier)
	}
}

// TestContractDataFromImportInvalid проверяет, что битые файлы договора дают ErrInvalid.
func TestContractDataFromImportInvalid(t *testing.T) {
	payloads := []string{
		`{"clientName":`,
		`{"clientName":"Acme"}`,
		`{"contractType":"retainer"}`,
	}

	for _, payload := range payloads {
		if _, err := contractDataFromImport([]byte(payload)); !errors.Is(err, repository.ErrInvalid) {
			t.Fatalf("payload %s: expected ErrInvalid, got %v", payload, err)
		}
	}
}

// TestContractDataFromImportDefaults проверяет слияние файла договора с дефолтами.
func TestContractDataFromImportDefaults(t *testing.T) {
	data, err := contractDataFromImport([]byte(`{"contractType":"physical"}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if data.ContractType != models.ContractTypePhysical {
		t.Fatalf("unexpected contract type: %q", data.ContractType)
	}
	if data.Version != models.DataVersion {
		t.Fatalf("unexpected version: %q", data.Version)
	}
	if data.Currency != "USD" {
		t.Fatalf("defaults must survive the merge, got currency %q", data.Currency)
	}
}

// TestContractImportMissingType проверяет отказ при файле без типа договора.
func TestContractImportMissingType(t *testing.T) {
	h := NewContractHandler(nil, nil)

	c, rec := jsonRequest(t, `{"clientName":"Acme"}`)
	if err := h.Import(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid contract data format") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

// TestContractImportInvalidType проверяет отказ при неизвестном типе договора.
func TestContractImportInvalidType(t *testing.T) {
	h := NewContractHandler(nil, nil)

	c, rec := jsonRequest(t, `{"contractType":"retainer"}`)
	if err := h.Import(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
