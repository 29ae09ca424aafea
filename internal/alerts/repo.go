package alerts

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warefront/warefront-backend/pkg/db/models"
)

// Repository exposes alert persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an alerts repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBatch inserts the provided alerts, skipping any whose id already
// exists. The composite primary key makes concurrent evaluations safe.
func (r *Repository) CreateBatch(ctx context.Context, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&alerts).Error
}

// ListAll returns every alert in stable creation order.
func (r *Repository) ListAll(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListIDs returns the set of alert ids currently persisted.
func (r *Repository) ListIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&models.Alert{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// FindByID loads a single alert by its composite id.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Alert, error) {
	var alert models.Alert
	if err := r.db.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

// MarkResolved stamps resolved_at on the alert. Returns gorm.ErrRecordNotFound
// when no row matched.
func (r *Repository) MarkResolved(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("id = ? AND resolved_at IS NULL", id).
		UpdateColumn("resolved_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
