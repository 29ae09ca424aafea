package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warefront/warefront-backend/pkg/db/models"
)

// ItemDTO is the transport shape for a stocked item.
type ItemDTO struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Stock     int             `json:"stock"`
	Warehouse string          `json:"warehouse"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateItemInput is the payload for adding a new item.
type CreateItemInput struct {
	Name      string          `json:"name" validate:"required"`
	Stock     int             `json:"stock" validate:"gte=0"`
	Warehouse string          `json:"warehouse" validate:"required"`
	Price     decimal.Decimal `json:"price"`
}

// UpdateItemInput captures the mutable item fields. Nil fields are untouched.
type UpdateItemInput struct {
	Name      *string          `json:"name,omitempty"`
	Stock     *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Warehouse *string          `json:"warehouse,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

// ListResult pairs a page of items with the cursor for the next page.
type ListResult struct {
	Items      []ItemDTO `json:"items"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

func FromModel(m *models.InventoryItem) *ItemDTO {
	if m == nil {
		return nil
	}
	return &ItemDTO{
		ID:        m.ID,
		Name:      m.Name,
		Stock:     m.Stock,
		Warehouse: m.Warehouse,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
