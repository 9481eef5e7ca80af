package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/restoration-backend/internal/domain"
	"github.com/heartmarshall/restoration-backend/internal/service/restoration"
)

type errorResponse struct {
	Error              string              `json:"error"`
	Code               string              `json:"code,omitempty"`
	Fields             []domain.FieldError `json:"fields,omitempty"`
	AllowedTransitions *[]string           `json:"allowed_transitions,omitempty"`
	Retryable          bool                `json:"retryable,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps service errors onto HTTP responses. Typed errors are
// matched before the sentinels they unwrap to.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		transitionErr   *domain.TransitionError
		preconditionErr *domain.PreconditionError
		validationErr   *domain.ValidationError
	)

	switch {
	case errors.As(err, &transitionErr):
		allowed := make([]string, len(transitionErr.Allowed))
		for i, s := range transitionErr.Allowed {
			allowed[i] = s.String()
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:              transitionErr.Error(),
			Code:               "ILLEGAL_TRANSITION",
			AllowedTransitions: &allowed,
		})
	case errors.As(err, &preconditionErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: preconditionErr.Error(),
			Code:  "PRECONDITION_FAILED",
		})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Code:   "VALIDATION",
			Fields: validationErr.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Code: "VALIDATION"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found", Code: "NOT_FOUND"})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:     "item was changed by someone else, reload and retry",
			Code:      "CONFLICT",
			Retryable: true,
		})
	case errors.Is(err, domain.ErrDataIntegrity):
		log.ErrorContext(r.Context(), "data integrity", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: "DATA_INTEGRITY"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required", Code: "FORBIDDEN"})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Code: "UNAUTHORIZED"})
	case errors.Is(err, restoration.ErrStorageDisabled):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error(), Code: "STORAGE_DISABLED"})
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
