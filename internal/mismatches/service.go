package mismatches

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warefront/warefront-backend/pkg/db/models"
	pkgerrors "github.com/warefront/warefront-backend/pkg/errors"
)

// MismatchDTO is the transport shape for a reported stock discrepancy.
type MismatchDTO struct {
	ID        uuid.UUID `json:"id"`
	Item      string    `json:"item"`
	Missing   int       `json:"missing"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMismatchInput is the payload for reporting a discrepancy.
type CreateMismatchInput struct {
	Item    string `json:"item" validate:"required"`
	Missing int    `json:"missing" validate:"gte=0"`
}

type mismatchRepository interface {
	Create(ctx context.Context, mismatch *models.StockMismatch) error
	ListAll(ctx context.Context) ([]models.StockMismatch, error)
}

// Service exposes mismatch reporting operations.
type Service interface {
	Create(ctx context.Context, input CreateMismatchInput) (*MismatchDTO, error)
	List(ctx context.Context) ([]MismatchDTO, error)
}

type service struct {
	repo mismatchRepository
}

// NewService builds a mismatch service with the provided repository.
func NewService(repo mismatchRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("mismatch repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateMismatchInput) (*MismatchDTO, error) {
	item := strings.TrimSpace(input.Item)
	if item == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item is required")
	}
	if input.Missing < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing cannot be negative")
	}

	mismatch := &models.StockMismatch{
		Item:    item,
		Missing: input.Missing,
	}
	if err := s.repo.Create(ctx, mismatch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create mismatch")
	}
	return fromModel(mismatch), nil
}

func (s *service) List(ctx context.Context) ([]MismatchDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list mismatches")
	}
	mismatches := make([]MismatchDTO, 0, len(rows))
	for i := range rows {
		mismatches = append(mismatches, *fromModel(&rows[i]))
	}
	return mismatches, nil
}

func fromModel(m *models.StockMismatch) *MismatchDTO {
	return &MismatchDTO{
		ID:        m.ID,
		Item:      m.Item,
		Missing:   m.Missing,
		CreatedAt: m.CreatedAt,
	}
}
