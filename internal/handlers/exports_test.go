package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"example.com/creator-rates/backend/internal/models"
)

// TestToExportDocument проверяет сборку документа обмена из сессии.
func TestToExportDocument(t *testing.T) {
	session := models.DefaultPricingSession("Export Test")
	session.ID = uuid.New()
	session.Markup = 15

	exportDate := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	doc := toExportDocument(session, exportDate)

	if doc.Title != "Export Test" {
		t.Fatalf("unexpected title: %s", doc.Title)
	}
	if doc.Version != models.DataVersion {
		t.Fatalf("unexpected version: %s", doc.Version)
	}
	if doc.SelectedRateTier != models.TierRecommended {
		t.Fatalf("unexpected tier: %s", doc.SelectedRateTier)
	}
	if doc.Markup != 15 {
		t.Fatalf("unexpected markup: %f", doc.Markup)
	}
	if len(doc.Expenses) != len(session.Expenses) {
		t.Fatalf("expected %d expenses, got %d", len(session.Expenses), len(doc.Expenses))
	}
	if !doc.ExportDate.Equal(exportDate) {
		t.Fatalf("unexpected export date: %s", doc.ExportDate)
	}
}

// TestFormatFloat проверяет формат чисел в CSV.
func TestFormatFloat(t *testing.T) {
	if got := formatFloat(66.666666); got != "66.67" {
		t.Fatalf("unexpected format: %s", got)
	}
	if got := formatFloat(0); got != "0.00" {
		t.Fatalf("unexpected format: %s", got)
	}
}
