package models

import (
	"time"

	"github.com/google/uuid"
)

// Warehouse is a physical storage site. Issue carries the current operational
// problem, if any; a non-nil value feeds the warehouse alert rule.
type Warehouse struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null;uniqueIndex"`
	Location  string    `gorm:"column:location;not null"`
	Issue     *string   `gorm:"column:issue"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
