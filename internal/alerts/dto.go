package alerts

import (
	"time"

	"github.com/warefront/warefront-backend/pkg/db/models"
	"github.com/warefront/warefront-backend/pkg/enums"
)

// AlertDTO is the transport shape for a threshold alert. Optional fields are
// populated per kind: Stock for low stock alerts, Issue for warehouse alerts,
// Missing for mismatch alerts.
type AlertDTO struct {
	ID         string              `json:"id"`
	Kind       enums.AlertKind     `json:"kind"`
	Severity   enums.AlertSeverity `json:"severity"`
	Check      string              `json:"check"`
	Name       string              `json:"name"`
	Stock      *int                `json:"stock,omitempty"`
	Issue      *string             `json:"issue,omitempty"`
	Missing    *int                `json:"missing,omitempty"`
	ResolvedAt *time.Time          `json:"resolved_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// Summary counts alerts by state and severity.
type Summary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Resolved int `json:"resolved"`
	Critical int `json:"critical"`
}

// EvaluationResult reports what a manual evaluation run produced.
type EvaluationResult struct {
	Created []AlertDTO `json:"created"`
	Total   int        `json:"total"`
}

func FromModel(m *models.Alert) *AlertDTO {
	if m == nil {
		return nil
	}
	return &AlertDTO{
		ID:         m.ID,
		Kind:       m.Kind,
		Severity:   m.Severity,
		Check:      m.Check,
		Name:       m.Name,
		Stock:      m.Stock,
		Issue:      m.Issue,
		Missing:    m.Missing,
		ResolvedAt: m.ResolvedAt,
		CreatedAt:  m.CreatedAt,
	}
}
