package lifecycle

import (
	"time"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// damageOutcome describes one move out of the damaged branch.
type damageOutcome struct {
	action     domain.DamageAction
	from       domain.RestorationStatus
	to         domain.RestorationStatus
	wasDamaged bool
	clear      []domain.TimestampField
}

// damageOutcomes is evaluated in order; exactly one entry matches any action.
var damageOutcomes = []damageOutcome{
	{
		action:     domain.ActionContinueRepair,
		from:       domain.StatusDamaged,
		to:         domain.StatusDeliveredWarehouse,
		wasDamaged: true,
		clear:      []domain.TimestampField{domain.FieldDamagedAt, domain.FieldResolvedAt},
	},
	{
		action: domain.ActionMarkForTrash,
		from:   domain.StatusDamaged,
		to:     domain.StatusPendingTrash,
	},
	{
		action:     domain.ActionReturnAsIs,
		from:       domain.StatusDamaged,
		to:         domain.StatusReadyToShip,
		wasDamaged: true,
		clear:      []domain.TimestampField{domain.FieldDamagedAt, domain.FieldResolvedAt},
	},
	{
		action: domain.ActionConfirmTrashed,
		from:   domain.StatusPendingTrash,
		to:     domain.StatusTrashed,
	},
}

func outcomeForAction(a domain.DamageAction) (damageOutcome, bool) {
	for _, o := range damageOutcomes {
		if o.action == a {
			return o, true
		}
	}
	return damageOutcome{}, false
}

// EquivalentAction returns the damage action a plain from -> to move
// corresponds to, if any.
func EquivalentAction(from, to domain.RestorationStatus) (domain.DamageAction, bool) {
	for _, o := range damageOutcomes {
		if o.from == from && o.to == to {
			return o.action, true
		}
	}
	return "", false
}

// ActionTarget returns the status an action moves an item to.
func ActionTarget(a domain.DamageAction) (domain.RestorationStatus, bool) {
	o, ok := outcomeForAction(a)
	return o.to, ok
}

// checkAction verifies the action's precondition against the current status.
func checkAction(a domain.DamageAction, current domain.RestorationStatus) (damageOutcome, error) {
	o, ok := outcomeForAction(a)
	if !ok {
		return damageOutcome{}, domain.NewValidationError("action", "unknown action")
	}
	if current != o.from {
		return damageOutcome{}, &domain.PreconditionError{Action: a, Required: o.from, Actual: current}
	}
	return o, nil
}

// apply writes the outcome's side effects onto u. damage_reason is never touched.
func (o damageOutcome) apply(now time.Time, u *domain.RestorationUpdate) {
	for _, f := range o.clear {
		u.ClearTime(f)
	}
	if o.wasDamaged {
		t := true
		u.WasDamaged = &t
	}
	if f, ok := TimestampField(o.to); ok {
		u.SetTime(f, now)
	}
}
