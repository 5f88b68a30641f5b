package handlers

import (
	"errors"
	"net/http"

	"lmscl/internal/gateway"
	"lmscl/internal/services"
	helpers "lmscl/internal/utils/helpres"
)

// backendError maps a service error to the JSON envelope. Backend client
// errors keep their status; everything else from the backend is a 502.
func backendError(w http.ResponseWriter, err error, fallback string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.Error(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrEmptyTitle):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, fallback)
	default:
		status := gateway.StatusOf(err)
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		helpers.Error(w, status, gateway.MessageOf(err, fallback))
	}
}

func jsonNotFound(w http.ResponseWriter, _ *http.Request) {
	helpers.Error(w, http.StatusNotFound, "not found")
}

// formMessage is the inline text shown above a rejected form.
func formMessage(err error, fallback string) string {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return gateway.MessageOf(err, fallback)
}
