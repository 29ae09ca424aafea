package alerts

import (
	"fmt"

	"github.com/warefront/warefront-backend/pkg/db/models"
	"github.com/warefront/warefront-backend/pkg/enums"
)

const (
	// LowStockThreshold is the stock level below which an item raises an alert.
	LowStockThreshold = 15
	// CriticalStockThreshold marks the point where a low stock alert becomes critical.
	CriticalStockThreshold = 5
)

const (
	checkCriticalLowStock = "Critical Low Stock"
	checkLowStock         = "Low Stock"
	checkWarehouseIssue   = "Warehouse Issue"
	checkStockMismatch    = "Stock Mismatch"
)

// StockAlertID returns the composite id for a low stock alert.
func StockAlertID(itemID string) string {
	return fmt.Sprintf("stock-%s", itemID)
}

// WarehouseAlertID returns the composite id for a warehouse issue alert.
func WarehouseAlertID(warehouseID string) string {
	return fmt.Sprintf("warehouse-%s", warehouseID)
}

// MismatchAlertID returns the composite id for a stock mismatch alert.
func MismatchAlertID(mismatchID string) string {
	return fmt.Sprintf("report-%s", mismatchID)
}

// Evaluate runs all alert rules over the current data and returns only the
// alerts whose ids are not already present. Evaluation is strictly additive:
// existing alerts are never mutated or removed, and re-running over the same
// data yields nothing new.
func Evaluate(
	items []models.InventoryItem,
	warehouses []models.Warehouse,
	mismatches []models.StockMismatch,
	existing map[string]struct{},
) []models.Alert {
	if existing == nil {
		existing = map[string]struct{}{}
	}

	fresh := []models.Alert{}
	seen := make(map[string]struct{}, len(existing))
	for id := range existing {
		seen[id] = struct{}{}
	}

	appendAlert := func(alert models.Alert) {
		if _, ok := seen[alert.ID]; ok {
			return
		}
		seen[alert.ID] = struct{}{}
		fresh = append(fresh, alert)
	}

	for _, item := range items {
		if item.Stock >= LowStockThreshold {
			continue
		}
		severity := enums.AlertSeverityLow
		check := checkLowStock
		if item.Stock <= CriticalStockThreshold {
			severity = enums.AlertSeverityCritical
			check = checkCriticalLowStock
		}
		stock := item.Stock
		appendAlert(models.Alert{
			ID:       StockAlertID(item.ID.String()),
			Kind:     enums.AlertKindStock,
			Severity: severity,
			Check:    check,
			Name:     item.Name,
			Stock:    &stock,
		})
	}

	for _, warehouse := range warehouses {
		if warehouse.Issue == nil || *warehouse.Issue == "" {
			continue
		}
		issue := *warehouse.Issue
		// The alert is named after the site's location, not the warehouse name.
		appendAlert(models.Alert{
			ID:       WarehouseAlertID(warehouse.ID.String()),
			Kind:     enums.AlertKindWarehouse,
			Severity: enums.AlertSeverityWarning,
			Check:    checkWarehouseIssue,
			Name:     warehouse.Location,
			Issue:    &issue,
		})
	}

	for _, mismatch := range mismatches {
		if mismatch.Missing <= 0 {
			continue
		}
		missing := mismatch.Missing
		appendAlert(models.Alert{
			ID:       MismatchAlertID(mismatch.ID.String()),
			Kind:     enums.AlertKindMismatch,
			Severity: enums.AlertSeverityWarning,
			Check:    checkStockMismatch,
			Name:     mismatch.Item,
			Missing:  &missing,
		})
	}

	return fresh
}
