package alerts

import (
	"testing"

	"github.com/google/uuid"

	"github.com/warefront/warefront-backend/pkg/db/models"
	"github.com/warefront/warefront-backend/pkg/enums"
)

func stockItem(name string, stock int) models.InventoryItem {
	return models.InventoryItem{
		ID:    uuid.New(),
		Name:  name,
		Stock: stock,
	}
}

func TestEvaluateLowStockThresholds(t *testing.T) {
	critical := stockItem("widget", 3)
	low := stockItem("gadget", 14)
	healthy := stockItem("anvil", 15)

	fresh := Evaluate([]models.InventoryItem{critical, low, healthy}, nil, nil, nil)

	if len(fresh) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(fresh))
	}

	byID := map[string]models.Alert{}
	for _, a := range fresh {
		byID[a.ID] = a
	}

	crit, ok := byID[StockAlertID(critical.ID.String())]
	if !ok {
		t.Fatalf("missing critical alert")
	}
	if crit.Severity != enums.AlertSeverityCritical {
		t.Fatalf("expected critical severity, got %s", crit.Severity)
	}
	if crit.Check != "Critical Low Stock" {
		t.Fatalf("expected Critical Low Stock check, got %q", crit.Check)
	}
	if crit.Stock == nil || *crit.Stock != 3 {
		t.Fatalf("expected stock 3 on alert, got %v", crit.Stock)
	}

	lowAlert, ok := byID[StockAlertID(low.ID.String())]
	if !ok {
		t.Fatalf("missing low stock alert")
	}
	if lowAlert.Severity != enums.AlertSeverityLow {
		t.Fatalf("expected low severity, got %s", lowAlert.Severity)
	}
	if lowAlert.Check != "Low Stock" {
		t.Fatalf("expected Low Stock check, got %q", lowAlert.Check)
	}
}

func TestEvaluateBoundaryAtCriticalThreshold(t *testing.T) {
	boundary := stockItem("edge", CriticalStockThreshold)

	fresh := Evaluate([]models.InventoryItem{boundary}, nil, nil, nil)

	if len(fresh) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(fresh))
	}
	if fresh[0].Severity != enums.AlertSeverityCritical {
		t.Fatalf("stock at threshold should be critical, got %s", fresh[0].Severity)
	}
}

func TestEvaluateSkipsExistingIDs(t *testing.T) {
	item := stockItem("widget", 2)
	existing := map[string]struct{}{
		StockAlertID(item.ID.String()): {},
	}

	fresh := Evaluate([]models.InventoryItem{item}, nil, nil, existing)

	if len(fresh) != 0 {
		t.Fatalf("expected no new alerts for already-known id, got %d", len(fresh))
	}
}

func TestEvaluateIsAdditiveOnly(t *testing.T) {
	item := stockItem("widget", 2)

	first := Evaluate([]models.InventoryItem{item}, nil, nil, nil)
	if len(first) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(first))
	}

	existing := map[string]struct{}{first[0].ID: {}}

	// Stock recovered; the prior alert must still not be touched or recreated.
	item.Stock = 50
	second := Evaluate([]models.InventoryItem{item}, nil, nil, existing)
	if len(second) != 0 {
		t.Fatalf("expected no alerts after recovery, got %d", len(second))
	}
}

func TestEvaluateWarehouseIssue(t *testing.T) {
	issue := "roof leak"
	warehouses := []models.Warehouse{
		{ID: uuid.New(), Name: "WH-A", Location: "L1", Issue: &issue},
		{ID: uuid.New(), Name: "WH-B", Location: "L2"},
	}

	fresh := Evaluate(nil, warehouses, nil, nil)

	if len(fresh) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(fresh))
	}
	alert := fresh[0]
	if alert.ID != WarehouseAlertID(warehouses[0].ID.String()) {
		t.Fatalf("unexpected alert id %s", alert.ID)
	}
	if alert.Kind != enums.AlertKindWarehouse {
		t.Fatalf("expected warehouse kind, got %s", alert.Kind)
	}
	if alert.Check != "Warehouse Issue" {
		t.Fatalf("expected Warehouse Issue check, got %q", alert.Check)
	}
	if alert.Name != "L1" {
		t.Fatalf("expected alert named after the location, got %q", alert.Name)
	}
	if alert.Issue == nil || *alert.Issue != issue {
		t.Fatalf("expected issue %q on alert, got %v", issue, alert.Issue)
	}
}

func TestEvaluateMismatchRequiresMissing(t *testing.T) {
	mismatches := []models.StockMismatch{
		{ID: uuid.New(), Item: "bolts", Missing: 4},
		{ID: uuid.New(), Item: "nuts", Missing: 0},
	}

	fresh := Evaluate(nil, nil, mismatches, nil)

	if len(fresh) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(fresh))
	}
	alert := fresh[0]
	if alert.ID != MismatchAlertID(mismatches[0].ID.String()) {
		t.Fatalf("unexpected alert id %s", alert.ID)
	}
	if alert.Kind != enums.AlertKindMismatch {
		t.Fatalf("expected mismatch kind, got %s", alert.Kind)
	}
	if alert.Check != "Stock Mismatch" {
		t.Fatalf("expected Stock Mismatch check, got %q", alert.Check)
	}
	if alert.Missing == nil || *alert.Missing != 4 {
		t.Fatalf("expected missing 4 on alert, got %v", alert.Missing)
	}
}
