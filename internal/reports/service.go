package reports

import (
	"context"
	"fmt"

	"github.com/warefront/warefront-backend/pkg/db/models"
	pkgerrors "github.com/warefront/warefront-backend/pkg/errors"
)

type itemLister interface {
	ListAll(ctx context.Context) ([]models.InventoryItem, error)
}

type warehouseLister interface {
	ListAll(ctx context.Context) ([]models.Warehouse, error)
}

// Service derives inventory reports on demand. Reports are never stored; the
// same data always yields the same report.
type Service interface {
	Build(ctx context.Context) (*Report, error)
}

type service struct {
	items      itemLister
	warehouses warehouseLister
}

// NewService builds a report service over the inventory and warehouse repos.
func NewService(items itemLister, warehouses warehouseLister) (Service, error) {
	if items == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if warehouses == nil {
		return nil, fmt.Errorf("warehouse repository required")
	}
	return &service{items: items, warehouses: warehouses}, nil
}

func (s *service) Build(ctx context.Context) (*Report, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}
	warehouses, err := s.warehouses.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list warehouses")
	}

	report := Aggregate(items, warehouses)
	return &report, nil
}
