package models

import (
	"time"

	"github.com/google/uuid"
)

// StockMismatch records a reported discrepancy between expected and counted
// stock for an item. A positive Missing count feeds the mismatch alert rule.
type StockMismatch struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Item      string    `gorm:"column:item;not null"`
	Missing   int       `gorm:"column:missing;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
