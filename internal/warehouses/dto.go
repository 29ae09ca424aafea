package warehouses

import (
	"time"

	"github.com/google/uuid"

	"github.com/warefront/warefront-backend/pkg/db/models"
)

// WarehouseDTO is the transport shape for a storage site.
type WarehouseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Issue     *string   `json:"issue,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateWarehouseInput is the payload for registering a new warehouse.
type CreateWarehouseInput struct {
	Name     string  `json:"name" validate:"required"`
	Location string  `json:"location" validate:"required"`
	Issue    *string `json:"issue,omitempty"`
}

// UpdateWarehouseInput captures the mutable warehouse fields. ClearIssue
// removes a resolved problem; Issue, when set, replaces it.
type UpdateWarehouseInput struct {
	Name       *string `json:"name,omitempty"`
	Location   *string `json:"location,omitempty"`
	Issue      *string `json:"issue,omitempty"`
	ClearIssue bool    `json:"clear_issue,omitempty"`
}

func FromModel(m *models.Warehouse) *WarehouseDTO {
	if m == nil {
		return nil
	}
	return &WarehouseDTO{
		ID:        m.ID,
		Name:      m.Name,
		Location:  m.Location,
		Issue:     m.Issue,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
