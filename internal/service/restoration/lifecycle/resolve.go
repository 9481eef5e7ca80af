package lifecycle

import (
	"fmt"
	"time"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

// Request is the status part of a mutation, as seen by the lifecycle rules.
type Request struct {
	Current    domain.RestorationStatus
	Transition domain.Transition // nil for fields-only
	// DamageReason is the reason supplied with the request, if any.
	DamageReason *domain.DamageReason
	// StoredReason is the reason already on the item.
	StoredReason *domain.DamageReason
	Now          time.Time
}

// Plan is the resolved outcome of a Request: the target status and the
// status-driven field delta to write.
type Plan struct {
	From     domain.RestorationStatus
	To       domain.RestorationStatus
	Action   domain.DamageAction // set only when the caller asked for an action
	Backward bool
	Update   domain.RestorationUpdate
}

// StatusChanged reports whether the plan moves the item.
func (p Plan) StatusChanged() bool { return p.From != p.To }

// Resolve validates the requested transition and computes its field delta.
// Nothing is written; every rejection happens here, before any storage call.
func Resolve(req Request) (Plan, error) {
	plan := Plan{From: req.Current, To: req.Current}

	switch t := req.Transition.(type) {
	case nil:
		return plan, nil

	case domain.StatusChange:
		if t.To == req.Current && t.To.IsValid() {
			return plan, nil
		}
		if err := Validate(req.Current, t.To); err != nil {
			return Plan{}, err
		}
		if t.To == domain.StatusDamaged {
			reason, err := enteringDamagedReason(req)
			if err != nil {
				return Plan{}, err
			}
			plan.Update.DamageReason = reason
			if req.Current == domain.StatusPendingTrash {
				plan.Update.ClearTime(domain.FieldPendingTrashAt)
			}
		}
		plan.To = t.To
		if a, ok := EquivalentAction(req.Current, t.To); ok {
			o, _ := outcomeForAction(a)
			o.apply(req.Now, &plan.Update)
		} else {
			plan.Backward = Reconcile(req.Current, t.To, req.Now, &plan.Update)
		}

	case domain.DamageAction:
		if !req.Current.IsValid() {
			return Plan{}, domain.NewDataIntegrityError(req.Current)
		}
		o, err := checkAction(t, req.Current)
		if err != nil {
			return Plan{}, err
		}
		plan.To = o.to
		plan.Action = t
		o.apply(req.Now, &plan.Update)

	default:
		return Plan{}, fmt.Errorf("unsupported transition %T", req.Transition)
	}

	to := plan.To
	plan.Update.Status = &to
	return plan, nil
}

// enteringDamagedReason returns the reason to store when an item enters the
// damaged branch. Undoing a disposal mark may reuse the stored reason.
func enteringDamagedReason(req Request) (*domain.DamageReason, error) {
	reason := req.DamageReason
	if reason == nil && req.Current == domain.StatusPendingTrash {
		reason = req.StoredReason
	}
	if reason == nil {
		return nil, domain.NewValidationError("damage_reason", "required when marking an item damaged")
	}
	if !reason.IsValid() {
		return nil, domain.NewValidationError("damage_reason", "unknown damage reason")
	}
	r := *reason
	return &r, nil
}
