package handlers

import (
	"testing"

	"github.com/google/uuid"

	"example.com/creator-rates/backend/internal/models"
)

// TestValidContractType проверяет допустимые типы договора.
func TestValidContractType(t *testing.T) {
	for _, contractType := range []models.ContractType{
		models.ContractTypeDigital,
		models.ContractTypePhysical,
		models.ContractTypeContent,
	} {
		if !validContractType(contractType) {
			t.Fatalf("expected %s to be valid", contractType)
		}
	}

	if validContractType("retainer") {
		t.Fatal("expected invalid contract type")
	}
}

// TestSanitizeClauses проверяет очистку пользовательских пунктов от разметки.
func TestSanitizeClauses(t *testing.T) {
	h := NewContractHandler(nil, nil)

	existingID := uuid.New()
	clauses := h.sanitizeClauses([]models.CustomClause{
		{ID: existingID, Title: "<b>Equipment</b>", Content: "Client provides <script>alert(1)</script>studio access."},
		{Title: "  ", Content: "orphan content"},
		{Title: "No Content", Content: "<img src=x onerror=alert(1)>"},
		{Title: "Travel", Content: "Travel billed at cost."},
	})

	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(clauses))
	}

	if clauses[0].ID != existingID {
		t.Fatal("existing clause id must be preserved")
	}
	if clauses[0].Title != "Equipment" {
		t.Fatalf("unexpected title: %q", clauses[0].Title)
	}
	if clauses[0].Content != "Client provides studio access." {
		t.Fatalf("unexpected content: %q", clauses[0].Content)
	}

	if clauses[1].ID == uuid.Nil {
		t.Fatal("new clause must get an id")
	}
	if clauses[1].Title != "Travel" {
		t.Fatalf("unexpected title: %q", clauses[1].Title)
	}
}
