package models

import (
	"time"

	"github.com/warefront/warefront-backend/pkg/enums"
)

// Alert is a threshold breach notification. The primary key is the composite
// id produced by evaluation (stock-<itemID>, warehouse-<warehouseID>,
// report-<mismatchID>), which makes inserts naturally idempotent: an id is
// appended at most once and never re-evaluated.
type Alert struct {
	ID         string              `gorm:"column:id;primaryKey"`
	Kind       enums.AlertKind     `gorm:"column:kind;not null"`
	Severity   enums.AlertSeverity `gorm:"column:severity;not null"`
	Check      string              `gorm:"column:check_label;not null"`
	Name       string              `gorm:"column:name;not null"`
	Stock      *int                `gorm:"column:stock"`
	Issue      *string             `gorm:"column:issue"`
	Missing    *int                `gorm:"column:missing"`
	ResolvedAt *time.Time          `gorm:"column:resolved_at"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime"`
}
