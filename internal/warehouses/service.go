package warehouses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warefront/warefront-backend/pkg/db"
	"github.com/warefront/warefront-backend/pkg/db/models"
	pkgerrors "github.com/warefront/warefront-backend/pkg/errors"
)

type warehouseRepository interface {
	Create(ctx context.Context, warehouse *models.Warehouse) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
	ListAll(ctx context.Context) ([]models.Warehouse, error)
	Update(ctx context.Context, warehouse *models.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes warehouse operations.
type Service interface {
	Create(ctx context.Context, input CreateWarehouseInput) (*WarehouseDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*WarehouseDTO, error)
	List(ctx context.Context) ([]WarehouseDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateWarehouseInput) (*WarehouseDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo warehouseRepository
}

// NewService builds a warehouse service with the provided repository.
func NewService(repo warehouseRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("warehouse repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateWarehouseInput) (*WarehouseDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location is required")
	}

	warehouse := &models.Warehouse{
		Name:     name,
		Location: location,
		Issue:    input.Issue,
	}
	if err := s.repo.Create(ctx, warehouse); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "warehouse name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create warehouse")
	}
	return FromModel(warehouse), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*WarehouseDTO, error) {
	warehouse, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "warehouse not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load warehouse")
	}
	return FromModel(warehouse), nil
}

func (s *service) List(ctx context.Context) ([]WarehouseDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list warehouses")
	}
	warehouses := make([]WarehouseDTO, 0, len(rows))
	for i := range rows {
		warehouses = append(warehouses, *FromModel(&rows[i]))
	}
	return warehouses, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateWarehouseInput) (*WarehouseDTO, error) {
	warehouse, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "warehouse not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load warehouse")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		warehouse.Name = name
	}
	if input.Location != nil {
		location := strings.TrimSpace(*input.Location)
		if location == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "location cannot be empty")
		}
		warehouse.Location = location
	}
	if input.ClearIssue {
		warehouse.Issue = nil
	} else if input.Issue != nil {
		warehouse.Issue = input.Issue
	}

	if err := s.repo.Update(ctx, warehouse); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "warehouse name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update warehouse")
	}
	return FromModel(warehouse), nil
}

// Delete removes the warehouse record. Items that reference it by name are
// deliberately not cascaded; they surface under "Unknown" in reports.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "warehouse not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete warehouse")
	}
	return nil
}
