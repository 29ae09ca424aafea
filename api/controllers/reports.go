package controllers

import (
	"net/http"

	"github.com/warefront/warefront-backend/api/responses"
	"github.com/warefront/warefront-backend/internal/reports"
	"github.com/warefront/warefront-backend/pkg/logger"
)

// ReportGet derives the inventory report from the current data set.
func ReportGet(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Build(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}
