package alerts

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/warefront/warefront-backend/pkg/db/models"
	"github.com/warefront/warefront-backend/pkg/enums"
	pkgerrors "github.com/warefront/warefront-backend/pkg/errors"
)

func buildAlertService(t *testing.T, repo *stubAlertRepo, items []models.InventoryItem, warehouses []models.Warehouse, mismatches []models.StockMismatch) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		AlertRepo:     repo,
		ItemRepo:      stubItemLister{items: items},
		WarehouseRepo: stubWarehouseLister{warehouses: warehouses},
		MismatchRepo:  stubMismatchLister{mismatches: mismatches},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestServiceEvaluatePersistsOnlyFreshAlerts(t *testing.T) {
	known := stockItem("widget", 2)
	unknown := stockItem("gadget", 3)
	repo := &stubAlertRepo{
		ids: map[string]struct{}{
			StockAlertID(known.ID.String()): {},
		},
	}
	svc := buildAlertService(t, repo, []models.InventoryItem{known, unknown}, nil, nil)

	result, err := svc.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if len(result.Created) != 1 {
		t.Fatalf("expected 1 created alert, got %d", len(result.Created))
	}
	if result.Created[0].ID != StockAlertID(unknown.ID.String()) {
		t.Fatalf("unexpected created alert id %s", result.Created[0].ID)
	}
	if result.Total != 2 {
		t.Fatalf("expected total 2, got %d", result.Total)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 alert persisted, got %d", len(repo.created))
	}
}

func TestServiceEvaluateNoFindingsPersistsNothing(t *testing.T) {
	repo := &stubAlertRepo{}
	svc := buildAlertService(t, repo, []models.InventoryItem{stockItem("anvil", 100)}, nil, nil)

	result, err := svc.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(result.Created) != 0 || result.Total != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestServiceSummarizeCounts(t *testing.T) {
	resolvedAt := time.Now().UTC()
	repo := &stubAlertRepo{
		alerts: []models.Alert{
			{ID: "stock-1", Kind: enums.AlertKindStock, Severity: enums.AlertSeverityCritical},
			{ID: "stock-2", Kind: enums.AlertKindStock, Severity: enums.AlertSeverityLow},
			{ID: "stock-3", Kind: enums.AlertKindStock, Severity: enums.AlertSeverityCritical, ResolvedAt: &resolvedAt},
			{ID: "warehouse-1", Kind: enums.AlertKindWarehouse, Severity: enums.AlertSeverityWarning},
		},
	}
	svc := buildAlertService(t, repo, nil, nil, nil)

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Total != 4 {
		t.Fatalf("expected total 4, got %d", summary.Total)
	}
	if summary.Active != 3 {
		t.Fatalf("expected 3 active, got %d", summary.Active)
	}
	if summary.Resolved != 1 {
		t.Fatalf("expected 1 resolved, got %d", summary.Resolved)
	}
	// Resolved critical alerts no longer count against the critical tally.
	if summary.Critical != 1 {
		t.Fatalf("expected 1 critical, got %d", summary.Critical)
	}
}

func TestServiceResolveMarksAlert(t *testing.T) {
	repo := &stubAlertRepo{
		alerts: []models.Alert{
			{ID: "stock-1", Kind: enums.AlertKindStock, Severity: enums.AlertSeverityLow},
		},
	}
	svc := buildAlertService(t, repo, nil, nil, nil)

	dto, err := svc.Resolve(context.Background(), "stock-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dto.ResolvedAt == nil {
		t.Fatalf("expected resolved timestamp on dto")
	}
	if repo.resolvedID != "stock-1" {
		t.Fatalf("expected stock-1 resolved, got %q", repo.resolvedID)
	}
}

func TestServiceResolveNotFound(t *testing.T) {
	repo := &stubAlertRepo{resolveErr: gorm.ErrRecordNotFound}
	svc := buildAlertService(t, repo, nil, nil, nil)

	_, err := svc.Resolve(context.Background(), "stock-missing")
	if err == nil {
		t.Fatalf("expected not found error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestServiceResolveRequiresID(t *testing.T) {
	svc := buildAlertService(t, &stubAlertRepo{}, nil, nil, nil)

	_, err := svc.Resolve(context.Background(), "   ")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

type stubAlertRepo struct {
	alerts     []models.Alert
	ids        map[string]struct{}
	created    []models.Alert
	resolvedID string
	resolveErr error
}

func (s *stubAlertRepo) CreateBatch(ctx context.Context, alerts []models.Alert) error {
	s.created = append(s.created, alerts...)
	return nil
}

func (s *stubAlertRepo) ListAll(ctx context.Context) ([]models.Alert, error) {
	return s.alerts, nil
}

func (s *stubAlertRepo) ListIDs(ctx context.Context) (map[string]struct{}, error) {
	if s.ids == nil {
		return map[string]struct{}{}, nil
	}
	return s.ids, nil
}

func (s *stubAlertRepo) FindByID(ctx context.Context, id string) (*models.Alert, error) {
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			return &s.alerts[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAlertRepo) MarkResolved(ctx context.Context, id string, at time.Time) error {
	if s.resolveErr != nil {
		return s.resolveErr
	}
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].ResolvedAt = &at
			s.resolvedID = id
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type stubItemLister struct {
	items []models.InventoryItem
}

func (s stubItemLister) ListAll(ctx context.Context) ([]models.InventoryItem, error) {
	return s.items, nil
}

type stubWarehouseLister struct {
	warehouses []models.Warehouse
}

func (s stubWarehouseLister) ListAll(ctx context.Context) ([]models.Warehouse, error) {
	return s.warehouses, nil
}

type stubMismatchLister struct {
	mismatches []models.StockMismatch
}

func (s stubMismatchLister) ListAll(ctx context.Context) ([]models.StockMismatch, error) {
	return s.mismatches, nil
}
