package controllers

import (
	"net/http"

	"github.com/warefront/warefront-backend/api/responses"
	"github.com/warefront/warefront-backend/api/validators"
	"github.com/warefront/warefront-backend/internal/mismatches"
	"github.com/warefront/warefront-backend/pkg/logger"
)

// MismatchList returns all reported stock discrepancies.
func MismatchList(svc mismatches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// MismatchCreate records a stock discrepancy report.
func MismatchCreate(svc mismatches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body mismatches.CreateMismatchInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mismatch, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusCreated, mismatch, "mismatch recorded")
	}
}
