package controllers

import (
	"net/http"

	"github.com/warefront/warefront-backend/api/responses"
	"github.com/warefront/warefront-backend/api/validators"
	"github.com/warefront/warefront-backend/internal/auth"
	pkgerrors "github.com/warefront/warefront-backend/pkg/errors"
	"github.com/warefront/warefront-backend/pkg/logger"
)

// AuthRegister creates a new user account and returns the public profile.
func AuthRegister(svc auth.RegisterService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "register service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessMessage(w, http.StatusCreated, user, "user registered")
	}
}
