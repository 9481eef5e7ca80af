package lifecycle

import (
	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// Validate decides whether an item at current may move to requested.
//
// An unknown current status is a data-integrity error whatever was
// requested: the stored record must be repaired before it can move. An
// unknown requested status is a validation error on "status". An illegal
// move returns *domain.TransitionError carrying exactly Allowed(current).
func Validate(current, requested domain.RestorationStatus) error {
	if !current.IsValid() {
		return domain.NewDataIntegrityError(current)
	}
	if !requested.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	if !CanTransition(current, requested) {
		return &domain.TransitionError{
			From:    current,
			To:      requested,
			Allowed: Allowed(current),
		}
	}
	return nil
}
