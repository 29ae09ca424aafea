package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warefront/warefront-backend/api/responses"
	"github.com/warefront/warefront-backend/internal/alerts"
	"github.com/warefront/warefront-backend/pkg/logger"
)

// AlertList returns every persisted alert.
func AlertList(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AlertSummary returns alert counts by state and severity.
func AlertSummary(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summarize(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// AlertEvaluate runs the alert rules and persists any new alerts.
func AlertEvaluate(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Evaluate(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AlertResolve marks an alert as handled.
func AlertResolve(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alert, err := svc.Resolve(r.Context(), chi.URLParam(r, "alertId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, alert, "alert resolved")
	}
}
