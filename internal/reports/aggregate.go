package reports

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warefront/warefront-backend/pkg/db/models"
)

// UnknownCategory buckets items whose warehouse name matches no registered
// warehouse, including items orphaned by a warehouse deletion.
const UnknownCategory = "Unknown"

// ReportProduct is one member item as it appears inside a report line.
type ReportProduct struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Stock     int             `json:"stock"`
	Warehouse string          `json:"warehouse"`
	Price     decimal.Decimal `json:"price"`
}

// CategorySummary aggregates the items grouped under one warehouse location.
// Warehouse is the warehouse name of the first member seen for the group, and
// Products retains every member item.
type CategorySummary struct {
	Category   string          `json:"category"`
	TotalItems int             `json:"totalItems"`
	TotalStock int             `json:"totalStock"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Warehouse  string          `json:"warehouse"`
	PriceRange *PriceRange     `json:"priceRange,omitempty"`
	Products   []ReportProduct `json:"products"`
}

// PriceRange is the min/max item price across the entire inventory. Report
// lines carry this same global range, not one scoped to their group;
// narrowing it per group would change the report contract clients already
// consume.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Report is the derived inventory overview.
type Report struct {
	Categories []CategorySummary `json:"categories"`
	PriceRange *PriceRange       `json:"priceRange,omitempty"`
	TotalItems int               `json:"totalItems"`
	TotalStock int               `json:"totalStock"`
	TotalValue decimal.Decimal   `json:"totalValue"`
}

// Aggregate builds the report from the current inventory and warehouse sets.
// It is a pure function: same inputs always produce the same report, and the
// category order follows the first appearance of each location in the item
// list.
func Aggregate(items []models.InventoryItem, warehouses []models.Warehouse) Report {
	locationByName := make(map[string]string, len(warehouses))
	for _, w := range warehouses {
		locationByName[w.Name] = w.Location
	}

	summaries := make(map[string]*CategorySummary)
	order := make([]string, 0)

	report := Report{
		Categories: []CategorySummary{},
		TotalValue: decimal.Zero,
	}

	var minPrice, maxPrice decimal.Decimal
	havePrice := false

	for _, item := range items {
		category, ok := locationByName[item.Warehouse]
		if !ok || category == "" {
			category = UnknownCategory
		}

		summary, ok := summaries[category]
		if !ok {
			summary = &CategorySummary{
				Category:   category,
				TotalValue: decimal.Zero,
				Warehouse:  item.Warehouse,
				Products:   []ReportProduct{},
			}
			summaries[category] = summary
			order = append(order, category)
		}

		value := item.Price.Mul(decimal.NewFromInt(int64(item.Stock)))

		summary.TotalItems++
		summary.TotalStock += item.Stock
		summary.TotalValue = summary.TotalValue.Add(value)
		summary.Products = append(summary.Products, ReportProduct{
			ID:        item.ID,
			Name:      item.Name,
			Stock:     item.Stock,
			Warehouse: item.Warehouse,
			Price:     item.Price,
		})

		report.TotalItems++
		report.TotalStock += item.Stock
		report.TotalValue = report.TotalValue.Add(value)

		if !havePrice {
			minPrice, maxPrice = item.Price, item.Price
			havePrice = true
			continue
		}
		if item.Price.LessThan(minPrice) {
			minPrice = item.Price
		}
		if item.Price.GreaterThan(maxPrice) {
			maxPrice = item.Price
		}
	}

	for _, category := range order {
		summary := summaries[category]
		if havePrice {
			summary.PriceRange = &PriceRange{Min: minPrice, Max: maxPrice}
		}
		report.Categories = append(report.Categories, *summary)
	}
	if havePrice {
		report.PriceRange = &PriceRange{Min: minPrice, Max: maxPrice}
	}
	return report
}
