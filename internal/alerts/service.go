package alerts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/warefront/warefront-backend/pkg/db/models"
	"github.com/warefront/warefront-backend/pkg/enums"
	pkgerrors "github.com/warefront/warefront-backend/pkg/errors"
)

type alertRepository interface {
	CreateBatch(ctx context.Context, alerts []models.Alert) error
	ListAll(ctx context.Context) ([]models.Alert, error)
	ListIDs(ctx context.Context) (map[string]struct{}, error)
	FindByID(ctx context.Context, id string) (*models.Alert, error)
	MarkResolved(ctx context.Context, id string, at time.Time) error
}

type itemLister interface {
	ListAll(ctx context.Context) ([]models.InventoryItem, error)
}

type warehouseLister interface {
	ListAll(ctx context.Context) ([]models.Warehouse, error)
}

type mismatchLister interface {
	ListAll(ctx context.Context) ([]models.StockMismatch, error)
}

// Service exposes alert evaluation and lifecycle operations.
type Service interface {
	Evaluate(ctx context.Context) (*EvaluationResult, error)
	List(ctx context.Context) ([]AlertDTO, error)
	Summarize(ctx context.Context) (*Summary, error)
	Resolve(ctx context.Context, id string) (*AlertDTO, error)
}

// ServiceParams bundles the dependencies required to build an alert service.
type ServiceParams struct {
	AlertRepo     alertRepository
	ItemRepo      itemLister
	WarehouseRepo warehouseLister
	MismatchRepo  mismatchLister
}

type service struct {
	alerts     alertRepository
	items      itemLister
	warehouses warehouseLister
	mismatches mismatchLister
}

// NewService constructs an alert service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.AlertRepo == nil {
		return nil, fmt.Errorf("alert repository is required")
	}
	if params.ItemRepo == nil {
		return nil, fmt.Errorf("inventory repository is required")
	}
	if params.WarehouseRepo == nil {
		return nil, fmt.Errorf("warehouse repository is required")
	}
	if params.MismatchRepo == nil {
		return nil, fmt.Errorf("mismatch repository is required")
	}
	return &service{
		alerts:     params.AlertRepo,
		items:      params.ItemRepo,
		warehouses: params.WarehouseRepo,
		mismatches: params.MismatchRepo,
	}, nil
}

// Evaluate runs the alert rules over current data and persists only the
// alerts that do not exist yet.
func (s *service) Evaluate(ctx context.Context) (*EvaluationResult, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}
	warehouses, err := s.warehouses.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list warehouses")
	}
	mismatches, err := s.mismatches.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list mismatches")
	}
	existing, err := s.alerts.ListIDs(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list alert ids")
	}

	fresh := Evaluate(items, warehouses, mismatches, existing)
	if err := s.alerts.CreateBatch(ctx, fresh); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist alerts")
	}

	created := make([]AlertDTO, 0, len(fresh))
	for i := range fresh {
		created = append(created, *FromModel(&fresh[i]))
	}
	return &EvaluationResult{
		Created: created,
		Total:   len(existing) + len(created),
	}, nil
}

func (s *service) List(ctx context.Context) ([]AlertDTO, error) {
	rows, err := s.alerts.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list alerts")
	}
	alerts := make([]AlertDTO, 0, len(rows))
	for i := range rows {
		alerts = append(alerts, *FromModel(&rows[i]))
	}
	return alerts, nil
}

func (s *service) Summarize(ctx context.Context) (*Summary, error) {
	rows, err := s.alerts.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list alerts")
	}

	summary := &Summary{Total: len(rows)}
	for _, alert := range rows {
		if alert.ResolvedAt != nil {
			summary.Resolved++
			continue
		}
		summary.Active++
		if alert.Severity == enums.AlertSeverityCritical {
			summary.Critical++
		}
	}
	return summary, nil
}

// Resolve stamps the alert as handled. Resolution is terminal: a resolved
// alert keeps its id, so evaluation will not recreate it.
func (s *service) Resolve(ctx context.Context, id string) (*AlertDTO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "alert id is required")
	}

	if err := s.alerts.MarkResolved(ctx, id, time.Now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "alert not found or already resolved")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve alert")
	}

	alert, err := s.alerts.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load alert")
	}
	return FromModel(alert), nil
}
