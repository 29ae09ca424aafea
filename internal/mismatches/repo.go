package mismatches

import (
	"context"

	"gorm.io/gorm"

	"github.com/warefront/warefront-backend/pkg/db/models"
)

// Repository exposes stock mismatch persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a mismatch repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new stock mismatch report.
func (r *Repository) Create(ctx context.Context, mismatch *models.StockMismatch) error {
	return r.db.WithContext(ctx).Create(mismatch).Error
}

// ListAll returns every mismatch in stable creation order.
func (r *Repository) ListAll(ctx context.Context) ([]models.StockMismatch, error) {
	var mismatches []models.StockMismatch
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&mismatches).Error; err != nil {
		return nil, err
	}
	return mismatches, nil
}
